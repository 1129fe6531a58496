package tally

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// This file contains the journal format: a JSONL script that declares a
// group and lists its expenses. Decoding a journal replays it into a fresh
// Ledger, only the expenses are written back, never the balances.
//
//	{"command":"group","name":"trip","participants":["mmd","ali","reza"]}
//	{"command":"expense","spender":"mmd","amount":100000,"exclude":["reza"],"memo":"dinner"}

// CommandType identifies the kind of a journal line.
type CommandType string

// Journal commands.
const (
	CmdGroup   CommandType = "group"
	CmdExpense CommandType = "expense"
)

// ErrNoGroup is returned when decoding a journal without a group declaration.
var ErrNoGroup = errors.New("tally: journal does not declare a group")

// jgroup is the json representation of a group declaration.
type jgroup struct {
	Command      CommandType `json:"command"`
	Name         string      `json:"name"`
	Participants []string    `json:"participants"`
}

// jexpense is the json representation of an expense.
type jexpense struct {
	Command CommandType     `json:"command"`
	Spender string          `json:"spender"`
	Amount  decimal.Decimal `json:"amount"`
	Exclude []string        `json:"exclude,omitempty"`
	Memo    string          `json:"memo,omitempty"`
}

// DecodeJournal reads a journal and returns the Ledger obtained by adding
// each expense in order.
//
// The first command must be the group declaration. Errors report the line
// number where they occurred.
func DecodeJournal(r io.Reader) (*Ledger, error) {
	var ledger *Ledger
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Command CommandType `json:"command"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify command in %q: %w", lineno, line, err)
		}

		switch identifier.Command {
		case CmdGroup:
			if ledger != nil {
				return nil, fmt.Errorf("line %d: group %q is already declared", lineno, ledger.Name())
			}
			l, err := decodeGroup(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			ledger = l
		case CmdExpense:
			if ledger == nil {
				return nil, fmt.Errorf("line %d: %w before the first expense", lineno, ErrNoGroup)
			}
			e, err := decodeExpense(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			if err := ledger.AddExpense(e); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
		default:
			return nil, fmt.Errorf("line %d: unknown command %q", lineno, identifier.Command)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read journal: %w", err)
	}
	if ledger == nil {
		return nil, ErrNoGroup
	}
	return ledger, nil
}

func decodeGroup(line []byte) (*Ledger, error) {
	var jg jgroup
	if err := json.Unmarshal(line, &jg); err != nil {
		return nil, fmt.Errorf("invalid group: %w", err)
	}
	participants, err := ParseParticipants(jg.Participants...)
	if err != nil {
		return nil, err
	}
	return NewLedger(jg.Name, participants...)
}

func decodeExpense(line []byte) (Expense, error) {
	var je jexpense
	if err := json.Unmarshal(line, &je); err != nil {
		return Expense{}, fmt.Errorf("invalid expense: %w", err)
	}
	amount, err := amountFromDecimal(je.Amount)
	if err != nil {
		return Expense{}, err
	}
	spender, err := NewParticipant(je.Spender)
	if err != nil {
		return Expense{}, fmt.Errorf("invalid spender: %w", err)
	}
	excluded, err := ParseParticipants(je.Exclude...)
	if err != nil {
		return Expense{}, fmt.Errorf("invalid exclusion: %w", err)
	}
	e, err := NewExpense(amount, spender, excluded...)
	if err != nil {
		return Expense{}, err
	}
	return e.WithMemo(je.Memo), nil
}

// MarshalJSON implements the json.Marshaler interface for Expense, as a
// journal line.
func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", CmdExpense)
	w.Append("spender", e.spender.name)
	w.Append("amount", e.amount)
	w.Optional("exclude", names(e.excluded))
	w.Optional("memo", e.memo)
	return w.MarshalJSON()
}

// marshalGroup returns the group declaration of l.
func marshalGroup(l *Ledger) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", CmdGroup)
	w.Append("name", l.name)
	w.Append("participants", names(l.participants))
	return w.MarshalJSON()
}

// EncodeJournal writes the journal of l: its group declaration followed by
// every expense in insertion order.
func EncodeJournal(w io.Writer, l *Ledger) error {
	group, err := marshalGroup(l)
	if err != nil {
		return fmt.Errorf("could not encode group %q: %w", l.name, err)
	}
	if err := writeLine(w, group); err != nil {
		return err
	}
	for i, e := range l.Expenses() {
		if err := EncodeExpense(w, e); err != nil {
			return fmt.Errorf("expense #%d: %w", i, err)
		}
	}
	return nil
}

// EncodeExpense writes a single expense as a journal line.
func EncodeExpense(w io.Writer, e Expense) error {
	line, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("could not encode expense: %w", err)
	}
	return writeLine(w, line)
}

func writeLine(w io.Writer, line []byte) error {
	if _, err := w.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("could not write journal: %w", err)
	}
	return nil
}

// names returns the names of participants, or nil if there are none.
func names(participants []Participant) []string {
	if len(participants) == 0 {
		return nil
	}
	list := make([]string, 0, len(participants))
	for _, p := range participants {
		list = append(list, p.name)
	}
	return list
}
