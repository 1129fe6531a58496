package tally

// pairKey identifies an unordered pair of participants.
// Use newPairKey to build it: a and b are sorted by name.
type pairKey struct {
	a, b Participant
}

func newPairKey(x, y Participant) pairKey {
	if y.name < x.name {
		x, y = y, x
	}
	return pairKey{a: x, b: y}
}

// PairBalance is the net balance between two participants.
//
// The creditor and debtor roles are a fixed reference direction assigned
// when the ledger is created, they do not imply who owes whom. The signed
// balance does:
//   - balance > 0: the debtor owes balance to the creditor.
//   - balance < 0: the creditor owes -balance to the debtor.
//   - balance == 0: the pair is settled.
type PairBalance struct {
	creditor Participant
	debtor   Participant
	balance  int64
}

// Creditor returns the participant holding the creditor role.
func (b PairBalance) Creditor() Participant { return b.creditor }

// Debtor returns the participant holding the debtor role.
func (b PairBalance) Debtor() Participant { return b.debtor }

// Balance returns the signed amount the debtor owes the creditor.
func (b PairBalance) Balance() int64 { return b.balance }

// Involves reports whether p is one of the two participants of the pair.
func (b PairBalance) Involves(p Participant) bool {
	return b.creditor == p || b.debtor == p
}

// Statement returns the settlement statement of this pair.
//
// A settled pair is stated as the creditor giving 0 to the debtor.
func (b PairBalance) Statement() Statement {
	if b.balance > 0 {
		return Statement{From: b.debtor, To: b.creditor, Amount: b.balance}
	}
	return Statement{From: b.creditor, To: b.debtor, Amount: -b.balance}
}

// credit records that p advanced share on behalf of the other participant.
func (b *PairBalance) credit(p Participant, share int64) {
	switch p {
	case b.creditor:
		b.balance += share
	case b.debtor:
		b.balance -= share
	}
}
