package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tally/renderer"
	"github.com/google/subcommands"
)

type balancesCmd struct {
	markdown bool
	settle   bool
}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "display who must give how much to whom" }
func (*balancesCmd) Usage() string {
	return `tly balances [-md] [-settle]

  Prints one settlement statement per pair of participants, sorted
  alphabetically. With -md, prints a report including the net position of
  each participant.
`
}

func (c *balancesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "md", false, "Print a markdown report instead of plain statements.")
	f.BoolVar(&c.settle, "settle", false, "Include the simplified settlement in the markdown report.")
}

func (c *balancesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.markdown {
		printMarkdown(renderer.Balances(renderer.NewReport(ledger, c.settle)))
		return subcommands.ExitSuccess
	}
	printLines(ledger.Balances())
	return subcommands.ExitSuccess
}
