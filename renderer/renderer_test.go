package renderer

import (
	"embed"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/tally"
	"github.com/google/go-cmp/cmp"
)

//go:embed testdata/*.json testdata/*.md
var testcasesFS embed.FS

var fixGolden = flag.Bool("fix-golden", false, "if true, update failing golden .md files with the received output")

func TestFixGoldenIsOff(t *testing.T) {
	if *fixGolden {
		t.Fatal("-fix-golden is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

// readReport decodes a Report from a json test file.
func readReport(t *testing.T, file string) *Report {
	t.Helper()
	data, err := testcasesFS.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatalf("failed to decode %s: %v", file, err)
	}
	return &r
}

func TestBalances(t *testing.T) {
	testCases := []struct {
		name       string
		structFile string
		goldenFile string
	}{
		{
			name:       "without settlement",
			structFile: "testdata/trip.json",
			goldenFile: "testdata/trip.md",
		},
		{
			name:       "with settlement",
			structFile: "testdata/trip_settlement.json",
			goldenFile: "testdata/trip_settlement.md",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Balances(readReport(t, tc.structFile))

			want, err := testcasesFS.ReadFile(tc.goldenFile)
			if err != nil {
				t.Fatalf("failed to read golden file %s: %v", tc.goldenFile, err)
			}
			if diff := cmp.Diff(string(want), got); diff != "" {
				if *fixGolden {
					if err := os.WriteFile(filepath.FromSlash(tc.goldenFile), []byte(got), 0644); err != nil {
						t.Fatalf("failed to update %s: %v", tc.goldenFile, err)
					}
					return
				}
				t.Errorf("Balances() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// tripLedger returns the ledger described in testdata/trip.json.
func tripLedger(t *testing.T) *tally.Ledger {
	t.Helper()
	participants, err := tally.ParseParticipants("mmd", "ali", "reza")
	if err != nil {
		t.Fatal(err)
	}
	l, err := tally.NewLedger("trip", participants...)
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range []struct {
		spender tally.Participant
		amount  int64
		memo    string
	}{
		{participants[0], 100000, "rent"},
		{participants[1], 150000, ""},
		{participants[0], 100000, ""},
	} {
		e, err := tally.NewExpense(x.amount, x.spender)
		if err != nil {
			t.Fatal(err)
		}
		if err := l.AddExpense(e.WithMemo(x.memo)); err != nil {
			t.Fatal(err)
		}
	}
	return l
}

func TestNewReport(t *testing.T) {
	l := tripLedger(t)

	if diff := cmp.Diff(readReport(t, "testdata/trip.json"), NewReport(l, false)); diff != "" {
		t.Errorf("NewReport(settle=false) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(readReport(t, "testdata/trip_settlement.json"), NewReport(l, true)); diff != "" {
		t.Errorf("NewReport(settle=true) mismatch (-want +got):\n%s", diff)
	}
}

func TestExpensesMarkdown(t *testing.T) {
	got := ExpensesMarkdown(tripLedger(t))
	for _, want := range []string{
		"# Expenses of trip\n",
		"| 1 | mmd | 100,000 |  | rent | applied |\n",
		"| 2 | ali | 150,000 |  |  | applied |\n",
		"Total: 350,000\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ExpensesMarkdown() does not contain %q:\n%s", want, got)
		}
	}

	empty, err := tally.NewLedger("empty", tally.MustParticipant("alice"))
	if err != nil {
		t.Fatal(err)
	}
	if got := ExpensesMarkdown(empty); !strings.Contains(got, "No expenses recorded.") {
		t.Errorf("ExpensesMarkdown() of an empty ledger = %q", got)
	}
}
