package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tally"
	"github.com/google/subcommands"
)

type initCmd struct {
	name string
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a journal for a new group" }
func (*initCmd) Usage() string {
	return `tly init -name <group> <participant>...

  Creates the journal file with the group declaration. Participants are fixed
  for the lifetime of the group. The journal file must not exist yet.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the group.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "a group needs a name and at least two participants")
		return subcommands.ExitUsageError
	}
	participants, err := tally.ParseParticipants(f.Args()...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	ledger, err := tally.NewLedger(c.name, participants...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	if err := EncodeJournal(ledger, os.O_WRONLY|os.O_CREATE|os.O_EXCL); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating journal: %v\n", err)
		return subcommands.ExitFailure
	}
	Logger.WithField("group", c.name).WithField("participants", f.NArg()).Info("journal created")
	fmt.Fprintf(stdout, "Group %q created in %s\n", c.name, *journalFile)
	return subcommands.ExitSuccess
}
