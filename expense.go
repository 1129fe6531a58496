package tally

import (
	"errors"
	"fmt"
	"slices"
)

// Expense is a single spend event: an amount paid by a spender and shared
// by every participant of the group except the excluded ones.
//
// An Expense is immutable, use NewExpense to create one.
type Expense struct {
	amount   int64         // in the smallest currency unit
	spender  Participant   // who paid
	excluded []Participant // who does not share the cost, without duplicates
	memo     string
}

// NewExpense creates a new Expense of amount paid by spender.
//
// It returns an error with all validation failures if amount is not
// strictly positive or if the spender is excluded. Duplicated exclusions are
// ignored.
func NewExpense(amount int64, spender Participant, excluded ...Participant) (Expense, error) {
	e := Expense{
		amount:  amount,
		spender: spender,
	}
	for _, p := range excluded {
		if !slices.Contains(e.excluded, p) {
			e.excluded = append(e.excluded, p)
		}
	}
	if err := e.validate(); err != nil {
		return Expense{}, err
	}
	return e, nil
}

// WithMemo returns a copy of e with a memo describing the expense.
func (e Expense) WithMemo(memo string) Expense {
	e.memo = memo
	return e
}

// validate checks the intrinsic invariants of the expense, independently of
// any ledger.
func (e Expense) validate() error {
	var errs error
	if e.amount <= 0 {
		errs = errors.Join(errs, fmt.Errorf("%w: %d is not strictly positive", ErrInvalidAmount, e.amount))
	}
	if e.spender.IsZero() {
		errs = errors.Join(errs, fmt.Errorf("%w: spender is missing", ErrInvalidParticipant))
	}
	if !e.spender.IsZero() && e.Excludes(e.spender) {
		errs = errors.Join(errs, fmt.Errorf("%w: %s", ErrInvalidExclusion, e.spender))
	}
	return errs
}

// Amount returns the amount paid, in the smallest currency unit.
func (e Expense) Amount() int64 { return e.amount }

// Spender returns the participant who paid.
func (e Expense) Spender() Participant { return e.spender }

// Excluded returns the participants who do not share this expense.
func (e Expense) Excluded() []Participant { return slices.Clone(e.excluded) }

// Excludes reports whether p does not share this expense.
func (e Expense) Excludes(p Participant) bool { return slices.Contains(e.excluded, p) }

// Memo returns the optional description of the expense.
func (e Expense) Memo() string { return e.memo }

// String returns a one line description of the expense.
func (e Expense) String() string {
	s := fmt.Sprintf("%s paid %s", e.spender, FormatAmount(e.amount))
	if len(e.excluded) > 0 {
		s += fmt.Sprintf(" (excluding %s)", joinNames(e.excluded))
	}
	if e.memo != "" {
		s += ": " + e.memo
	}
	return s
}

// ExpenseState is the processing state of an expense in a Ledger.
type ExpenseState int

const (
	// Pending expenses are recorded but have not yet been applied to the balances.
	Pending ExpenseState = iota
	// Applied expenses have been counted in the balances, exactly once.
	Applied
)

func (s ExpenseState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Applied:
		return "applied"
	default:
		return "unknown"
	}
}
