package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tally/renderer"
	"github.com/google/subcommands"
)

type expensesCmd struct{}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "display the expenses in the order they were recorded" }
func (*expensesCmd) Usage() string {
	return `tly expenses

  Prints the expense log of the group.
`
}

func (c *expensesCmd) SetFlags(f *flag.FlagSet) {}

func (c *expensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ExpensesMarkdown(ledger))
	return subcommands.ExitSuccess
}
