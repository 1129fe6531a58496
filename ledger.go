package tally

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Ledger records the expenses of a group and maintains the net balance of
// every pair of its participants.
//
// The list of participants is fixed at creation. Expenses are kept in
// insertion order and applied incrementally to the balances as they are
// added.
type Ledger struct {
	name         string
	participants []Participant
	known        map[Participant]bool

	pairs  []*PairBalance // in creation order
	byPair map[pairKey]*PairBalance

	expenses []entry
}

// entry is an expense recorded in the ledger along with its processing state.
type entry struct {
	expense Expense
	state   ExpenseState
}

// NewLedger creates a ledger for the group called name, shared by
// participants.
//
// Participants must be unique and valid. Every pair of participants starts
// settled.
func NewLedger(name string, participants ...Participant) (*Ledger, error) {
	l := &Ledger{
		name:         name,
		participants: make([]Participant, 0, len(participants)),
		known:        make(map[Participant]bool, len(participants)),
		byPair:       make(map[pairKey]*PairBalance),
	}
	for _, p := range participants {
		if p.IsZero() {
			return nil, fmt.Errorf("%w: participant #%d has no name", ErrInvalidParticipant, len(l.participants))
		}
		if l.known[p] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateParticipant, p)
		}
		l.known[p] = true
		l.participants = append(l.participants, p)
	}
	l.generatePairs()
	return l, nil
}

// generatePairs creates one settled PairBalance per unordered pair of
// participants.
//
// Participants are visited in list order: for each pair, the first one met
// holds the creditor role for the lifetime of the ledger.
func (l *Ledger) generatePairs() {
	for _, x := range l.participants {
		for _, y := range l.participants {
			if x == y {
				continue
			}
			key := newPairKey(x, y)
			if _, exists := l.byPair[key]; exists {
				continue
			}
			pair := &PairBalance{creditor: x, debtor: y}
			l.byPair[key] = pair
			l.pairs = append(l.pairs, pair)
		}
	}
}

// Name returns the name of the group.
func (l *Ledger) Name() string { return l.name }

// Participants iterates over the participants in their original order.
func (l *Ledger) Participants() iter.Seq[Participant] {
	return slices.Values(l.participants)
}

// NumParticipants returns the number of participants.
func (l *Ledger) NumParticipants() int { return len(l.participants) }

// Has reports whether p is a participant of this ledger.
func (l *Ledger) Has(p Participant) bool { return l.known[p] }

// Pairs iterates over the pairwise balances in creation order.
func (l *Ledger) Pairs() iter.Seq[PairBalance] {
	return func(yield func(PairBalance) bool) {
		for _, pair := range l.pairs {
			if !yield(*pair) {
				return
			}
		}
	}
}

// Pair returns the balance between x and y, whatever their order.
// It returns false if x and y are not two distinct participants.
func (l *Ledger) Pair(x, y Participant) (PairBalance, bool) {
	pair, ok := l.byPair[newPairKey(x, y)]
	if !ok || x == y {
		return PairBalance{}, false
	}
	return *pair, true
}

// Expenses returns an iterator that yields each expense in insertion order.
func (l *Ledger) Expenses() iter.Seq2[int, Expense] {
	return func(yield func(int, Expense) bool) {
		for i, e := range l.expenses {
			if !yield(i, e.expense) {
				return
			}
		}
	}
}

// Len returns the number of expenses recorded.
func (l *Ledger) Len() int { return len(l.expenses) }

// State returns the processing state of the i-th expense.
func (l *Ledger) State(i int) ExpenseState { return l.expenses[i].state }

// Total returns the sum of all recorded expenses.
func (l *Ledger) Total() int64 {
	var total int64
	for _, e := range l.expenses {
		total += e.expense.amount
	}
	return total
}

// Validate checks that e can be added to this ledger. It returns an error
// with all validation failures.
func (l *Ledger) Validate(e Expense) error {
	errs := e.validate()
	if !e.spender.IsZero() && !l.known[e.spender] {
		errs = errors.Join(errs, fmt.Errorf("%w: spender %s", ErrUnknownParticipant, e.spender))
	}
	for _, p := range e.excluded {
		if !l.known[p] {
			errs = errors.Join(errs, fmt.Errorf("%w: excluded %s", ErrUnknownParticipant, p))
		}
	}
	if n := l.sharers(e); n <= 0 {
		errs = errors.Join(errs, fmt.Errorf("%w: %d participants, %d excluded", ErrNoPayingParticipants, len(l.participants), len(e.excluded)))
	}
	return errs
}

// ValidateExpenses checks every expense independently, so that a batch can
// be rejected as a whole before calling AddExpenses.
func (l *Ledger) ValidateExpenses(expenses ...Expense) error {
	var errs error
	for i, e := range expenses {
		if err := l.Validate(e); err != nil {
			errs = errors.Join(errs, fmt.Errorf("expense #%d: %w", i, err))
		}
	}
	return errs
}

// AddExpense records e and updates the balances accordingly.
//
// An invalid expense is not recorded.
func (l *Ledger) AddExpense(e Expense) error {
	if err := l.Validate(e); err != nil {
		return fmt.Errorf("invalid expense %q: %w", e, err)
	}
	l.expenses = append(l.expenses, entry{expense: e, state: Pending})
	return l.updateBalances()
}

// AddExpenses adds each expense in order.
//
// It stops at the first invalid expense, expenses added before it remain
// in the ledger.
func (l *Ledger) AddExpenses(expenses ...Expense) error {
	for i, e := range expenses {
		if err := l.AddExpense(e); err != nil {
			return fmt.Errorf("expense #%d: %w", i, err)
		}
	}
	return nil
}

// updateBalances applies every pending expense to the pairwise balances.
// Applied expenses are never counted twice.
func (l *Ledger) updateBalances() error {
	for i := range l.expenses {
		e := &l.expenses[i]
		if e.state == Applied {
			continue
		}
		if err := l.apply(e.expense); err != nil {
			return fmt.Errorf("cannot apply expense #%d: %w", i, err)
		}
		e.state = Applied
	}
	return nil
}

// sharers returns the number of participants sharing the cost of e.
func (l *Ledger) sharers(e Expense) int {
	return len(l.participants) - len(e.excluded)
}

// apply splits e equally among its sharers and credits the spender's share
// on every pair between the spender and a sharer.
//
// The split uses integer division: the remainder is not distributed.
func (l *Ledger) apply(e Expense) error {
	n := l.sharers(e)
	if n <= 0 {
		return fmt.Errorf("%w: %d participants, %d excluded", ErrNoPayingParticipants, len(l.participants), len(e.excluded))
	}
	share := e.amount / int64(n)
	for _, pair := range l.pairs {
		if !pair.Involves(e.spender) || slices.ContainsFunc(e.excluded, pair.Involves) {
			continue
		}
		pair.credit(e.spender, share)
	}
	return nil
}

// Net returns the net position of p: positive when the others owe p money,
// negative when p owes them.
func (l *Ledger) Net(p Participant) int64 {
	var net int64
	for _, pair := range l.pairs {
		switch p {
		case pair.creditor:
			net += pair.balance
		case pair.debtor:
			net -= pair.balance
		}
	}
	return net
}

// Statements returns one settlement statement per pair, sorted by their
// text.
func (l *Ledger) Statements() []Statement {
	statements := make([]Statement, 0, len(l.pairs))
	for _, pair := range l.pairs {
		statements = append(statements, pair.Statement())
	}
	slices.SortStableFunc(statements, func(a, b Statement) int {
		return strings.Compare(a.String(), b.String())
	})
	return statements
}

// Balances returns the human-readable settlement statements of every pair,
// in lexicographic order.
func (l *Ledger) Balances() []string {
	statements := l.Statements()
	lines := make([]string, 0, len(statements))
	for _, s := range statements {
		lines = append(lines, s.String())
	}
	return lines
}
