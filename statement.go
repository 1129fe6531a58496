package tally

import "fmt"

// Statement is a settlement statement: From must give Amount to To.
type Statement struct {
	From   Participant
	To     Participant
	Amount int64
}

// String renders the statement as "bob must give 1,500 to alice".
func (s Statement) String() string {
	return fmt.Sprintf("%s must give %s to %s", s.From, FormatAmount(s.Amount), s.To)
}
