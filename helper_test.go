package tally

import "testing"

var (
	mmd   = MustParticipant("mmd")
	ali   = MustParticipant("ali")
	reza  = MustParticipant("reza")
	alice = MustParticipant("alice")
	bob   = MustParticipant("bob")
	carol = MustParticipant("carol")
)

// newTestLedger is a helper for test to create a ledger from const.
func newTestLedger(t *testing.T, participants ...Participant) *Ledger {
	t.Helper()
	l, err := NewLedger("test", participants...)
	if err != nil {
		t.Fatalf("NewLedger() unexpected error: %v", err)
	}
	return l
}

// mustExpense is a helper for test to create a valid expense from const.
func mustExpense(t *testing.T, amount int64, spender Participant, excluded ...Participant) Expense {
	t.Helper()
	e, err := NewExpense(amount, spender, excluded...)
	if err != nil {
		t.Fatalf("NewExpense(%d, %s, %v) unexpected error: %v", amount, spender, excluded, err)
	}
	return e
}
