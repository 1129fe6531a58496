package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/tally"
	"github.com/google/subcommands"
)

type addCmd struct {
	spender string
	amount  string
	exclude string
	memo    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an expense paid by a participant" }
func (*addCmd) Usage() string {
	return `tly add -spender <participant> -amount <amount> [-exclude <p1,p2>] [-memo <text>]

  Appends an expense to the journal. The amount is an integer in the smallest
  currency unit ("1500" or "1,500"). The expense is shared equally between the
  spender and every participant not excluded.

  The expense is checked against the group before it is written.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.spender, "spender", "", "Participant who paid.")
	f.StringVar(&c.amount, "amount", "", "Amount paid, in the smallest currency unit.")
	f.StringVar(&c.exclude, "exclude", "", "Comma separated list of participants who do not share the expense.")
	f.StringVar(&c.memo, "memo", "", "Optional description of the expense.")
}

// expense builds the expense described by the flags.
func (c *addCmd) expense() (tally.Expense, error) {
	amount, err := tally.ParseAmount(c.amount)
	if err != nil {
		return tally.Expense{}, err
	}
	spender, err := tally.NewParticipant(c.spender)
	if err != nil {
		return tally.Expense{}, fmt.Errorf("invalid spender: %w", err)
	}
	var names []string
	for _, name := range strings.Split(c.exclude, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	excluded, err := tally.ParseParticipants(names...)
	if err != nil {
		return tally.Expense{}, err
	}
	e, err := tally.NewExpense(amount, spender, excluded...)
	if err != nil {
		return tally.Expense{}, err
	}
	return e.WithMemo(c.memo), nil
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := c.expense()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid expense: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.AddExpense(e); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := AppendExpense(e); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing expense: %v\n", err)
		return subcommands.ExitFailure
	}
	Logger.WithField("expense", e.String()).Info("expense recorded")
	fmt.Fprintf(stdout, "Recorded: %s\n", e)
	return subcommands.ExitSuccess
}
