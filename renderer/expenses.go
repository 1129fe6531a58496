package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/tally"
)

// ExpensesMarkdown renders the expense log of l as a markdown table.
func ExpensesMarkdown(l *tally.Ledger) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Expenses of %s\n\n", l.Name())
	if l.Len() == 0 {
		fmt.Fprintln(&b, "No expenses recorded.")
		return b.String()
	}
	fmt.Fprintln(&b, "| # | Spender | Amount | Excluded | Memo | State |")
	fmt.Fprintln(&b, "|---:|:---|---:|:---|:---|:---|")
	for i, e := range l.Expenses() {
		var excluded []string
		for _, p := range e.Excluded() {
			excluded = append(excluded, p.Name())
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
			i+1,
			e.Spender(),
			tally.FormatAmount(e.Amount()),
			strings.Join(excluded, ", "),
			e.Memo(),
			l.State(i),
		)
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", tally.FormatAmount(l.Total()))
	return b.String()
}
