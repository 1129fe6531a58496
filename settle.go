package tally

import (
	"cmp"
	"slices"
)

// Position is the net position of a participant in a ledger.
type Position struct {
	Participant Participant
	Net         int64 // positive when the others owe this participant
}

// Positions returns the net position of every participant, in the original
// order of participants.
func (l *Ledger) Positions() []Position {
	positions := make([]Position, 0, len(l.participants))
	for _, p := range l.participants {
		positions = append(positions, Position{Participant: p, Net: l.Net(p)})
	}
	return positions
}

// Settle returns a short list of transfers that brings every net position
// back to zero.
//
// Unlike Balances, it does not state one line per pair: the largest debtor
// pays the largest creditor until one of them is cleared, and so on. Ties
// are broken by name so the result is deterministic. The ledger is not
// modified.
func (l *Ledger) Settle() []Statement {
	var creditors, debtors []Position
	for _, pos := range l.Positions() {
		switch {
		case pos.Net > 0:
			creditors = append(creditors, pos)
		case pos.Net < 0:
			debtors = append(debtors, Position{Participant: pos.Participant, Net: -pos.Net})
		}
	}
	largestFirst := func(a, b Position) int {
		if c := cmp.Compare(b.Net, a.Net); c != 0 {
			return c
		}
		return cmp.Compare(a.Participant.name, b.Participant.name)
	}
	slices.SortFunc(creditors, largestFirst)
	slices.SortFunc(debtors, largestFirst)

	var transfers []Statement
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := min(debtors[i].Net, creditors[j].Net)
		transfers = append(transfers, Statement{
			From:   debtors[i].Participant,
			To:     creditors[j].Participant,
			Amount: amount,
		})
		debtors[i].Net -= amount
		creditors[j].Net -= amount
		if debtors[i].Net == 0 {
			i++
		}
		if creditors[j].Net == 0 {
			j++
		}
	}
	return transfers
}
