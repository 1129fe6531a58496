package tally

import (
	"strings"

	"github.com/Rhymond/go-money"
)

// amountFormatter prints integer amounts with thousands separators and no
// currency symbol.
var amountFormatter = money.NewFormatter(0, ".", ",", "", "1")

// FormatAmount returns amount grouped by thousands, e.g. "100,000".
func FormatAmount(amount int64) string {
	return amountFormatter.Format(amount)
}

// joinNames returns participants' names separated by commas.
func joinNames(participants []Participant) string {
	return strings.Join(names(participants), ", ")
}
