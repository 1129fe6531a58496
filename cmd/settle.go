package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type settleCmd struct{}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "display a short list of transfers that settles the group" }
func (*settleCmd) Usage() string {
	return `tly settle

  Prints the transfers that bring every participant's net position back to
  zero, the largest debts first. See 'tly topic settle'.
`
}

func (c *settleCmd) SetFlags(f *flag.FlagSet) {}

func (c *settleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	transfers := ledger.Settle()
	if len(transfers) == 0 {
		fmt.Fprintln(stdout, "Everybody is settled.")
		return subcommands.ExitSuccess
	}
	for _, s := range transfers {
		fmt.Fprintln(stdout, s)
	}
	return subcommands.ExitSuccess
}
