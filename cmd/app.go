// Package cmd implements the tly command-line application.
package cmd

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tally"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(&topicCmd{}, "")

	c.Register(&initCmd{}, "journal")
	c.Register(&addCmd{}, "journal")
	c.Register(&fmtCmd{}, "journal")

	c.Register(&balancesCmd{}, "reports")
	c.Register(&settleCmd{}, "reports")
	c.Register(&expensesCmd{}, "reports")
	c.Register(&demoCmd{}, "reports")
}

// Environment variables used as default values for the global flags.
const (
	EnvJournalFile = "TALLY_JOURNAL_FILE"
	EnvLogLevel    = "TALLY_LOG_LEVEL"
)

const defaultJournalFile = "tally.jsonl"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var journalFile = flag.String("journal", "", "Path to the journal file (JSONL format). Defaults to $"+EnvJournalFile+" or "+defaultJournalFile+".")
var logLevel = flag.String("log-level", "", "Log level (debug, info, warn, error). Defaults to $"+EnvLogLevel+" or warn.")
var verbose = flag.Bool("v", false, "Verbose output, same as -log-level=debug.")

// stdout is where commands print their results.
var stdout io.Writer = os.Stdout

// Configure completes the global flags with the environment, optionally
// loaded from a .env file in the current directory, and sets up the logger.
// It must be called after the flags are parsed.
func Configure() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env file: %w", err)
	}
	if *journalFile == "" {
		*journalFile = os.Getenv(EnvJournalFile)
	}
	if *journalFile == "" {
		*journalFile = defaultJournalFile
	}
	if *logLevel == "" {
		*logLevel = os.Getenv(EnvLogLevel)
	}
	if err := initLogger(*logLevel, *verbose); err != nil {
		return err
	}
	Logger.WithField("journal", *journalFile).Debug("configured")
	return nil
}

// DecodeJournal replays the app journal file into a ledger.
func DecodeJournal() (*tally.Ledger, error) {
	f, err := os.Open(*journalFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open journal: %w", err)
	}
	defer f.Close()

	l, err := tally.DecodeJournal(f)
	if err != nil {
		return nil, fmt.Errorf("invalid journal %q: %w", *journalFile, err)
	}
	Logger.WithField("journal", *journalFile).
		WithField("participants", l.NumParticipants()).
		WithField("expenses", l.Len()).
		Debug("journal replayed")
	return l, nil
}

// EncodeJournal writes the whole ledger journal into the app journal file.
func EncodeJournal(l *tally.Ledger, mode int) error {
	var buf bytes.Buffer
	if err := tally.EncodeJournal(&buf, l); err != nil {
		return err
	}
	f, err := os.OpenFile(*journalFile, mode, 0644)
	if err != nil {
		return fmt.Errorf("cannot open journal for writing: %w", err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("cannot write journal %q: %w", *journalFile, err)
	}
	return f.Close()
}

// AppendExpense appends a single expense to the app journal file.
func AppendExpense(e tally.Expense) error {
	f, err := os.OpenFile(*journalFile, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open journal for writing: %w", err)
	}
	if err := tally.EncodeExpense(f, e); err != nil {
		f.Close()
		return fmt.Errorf("cannot write journal %q: %w", *journalFile, err)
	}
	return f.Close()
}

// printMarkdown renders md for the terminal, or prints it raw if it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	Logger.WithError(err).Debug("cannot render markdown, printing it raw")
	fmt.Fprint(stdout, md)
}

// printLines prints each line on stdout.
func printLines(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(stdout, line)
	}
}
