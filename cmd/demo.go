package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tally"
	"github.com/etnz/tally/renderer"
	"github.com/google/subcommands"
)

type demoCmd struct {
	markdown bool
}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "compute the balances of a sample group" }
func (*demoCmd) Usage() string {
	return `tly demo [-md]

  Builds a group of three participants (mmd, ali and reza) in memory, records
  three expenses and prints the balances. No journal is read or written.
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "md", false, "Print a markdown report instead of plain statements.")
}

// demoLedger returns the sample group.
func demoLedger() (*tally.Ledger, error) {
	participants, err := tally.ParseParticipants("mmd", "ali", "reza")
	if err != nil {
		return nil, err
	}
	mmd, ali := participants[0], participants[1]

	ledger, err := tally.NewLedger("demo", participants...)
	if err != nil {
		return nil, err
	}
	var expenses []tally.Expense
	for _, x := range []struct {
		spender tally.Participant
		amount  int64
	}{
		{mmd, 100000},
		{ali, 150000},
		{mmd, 100000},
	} {
		e, err := tally.NewExpense(x.amount, x.spender)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	if err := ledger.AddExpenses(expenses...); err != nil {
		return nil, err
	}
	return ledger, nil
}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := demoLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.markdown {
		printMarkdown(renderer.Balances(renderer.NewReport(ledger, true)))
		return subcommands.ExitSuccess
	}
	printLines(ledger.Balances())
	return subcommands.ExitSuccess
}
