package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "formats the journal file into a canonical form" }
func (*fmtCmd) Usage() string {
	return `tly fmt

  Replays the journal and writes it back in its canonical form: one line per
  command, fields in a fixed order, empty fields omitted.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeJournal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding journal: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeJournal(ledger, os.O_WRONLY|os.O_TRUNC); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding journal: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(stdout, "Journal %s has been formatted.\n", *journalFile)
	return subcommands.ExitSuccess
}
