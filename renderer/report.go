package renderer

import "github.com/etnz/tally"

// Report is the data rendered by Balances.
// Amounts are already formatted.
type Report struct {
	// Name of the group.
	Name string `json:"name"`
	// Participants is the number of participants in the group.
	Participants int `json:"participants"`
	// Expenses is the number of expenses recorded.
	Expenses int `json:"expenses"`
	// Total is the sum of all expenses.
	Total string `json:"total"`
	// Statements is one settlement statement per pair, sorted.
	Statements []string `json:"statements"`
	// Positions is the net position of each participant.
	Positions []ReportPosition `json:"positions"`
	// Settlement is the simplified list of transfers, when requested.
	Settlement []string `json:"settlement,omitempty"`
}

// ReportPosition is the net position of a single participant.
type ReportPosition struct {
	Name string `json:"name"`
	Net  string `json:"net"` // signed: "+" when the others owe this participant
}

// NewReport collects the report of l. The simplified settlement is included
// only if settle is true.
func NewReport(l *tally.Ledger, settle bool) *Report {
	r := &Report{
		Name:       l.Name(),
		Expenses:   l.Len(),
		Total:      tally.FormatAmount(l.Total()),
		Statements: l.Balances(),
	}
	for _, pos := range l.Positions() {
		r.Participants++
		r.Positions = append(r.Positions, ReportPosition{
			Name: pos.Participant.Name(),
			Net:  signedAmount(pos.Net),
		})
	}
	if settle {
		for _, s := range l.Settle() {
			r.Settlement = append(r.Settlement, s.String())
		}
	}
	return r
}

// signedAmount formats amount with an explicit sign, 0 has none.
func signedAmount(amount int64) string {
	if amount > 0 {
		return "+" + tally.FormatAmount(amount)
	}
	return tally.FormatAmount(amount)
}
