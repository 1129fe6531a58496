package tally

import (
	"errors"
	"testing"
)

func TestNewParticipant(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "simple name", input: "alice"},
		{name: "name with spaces", input: "alice smith"},
		{name: "empty name", input: "", wantErr: ErrInvalidParticipant},
		{name: "blank name", input: "   ", wantErr: ErrInvalidParticipant},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewParticipant(tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("NewParticipant(%q) error = %v, want %v", tc.input, err, tc.wantErr)
			}
			if err == nil && p.Name() != tc.input {
				t.Errorf("NewParticipant(%q).Name() = %q", tc.input, p.Name())
			}
		})
	}
}

func TestParticipant_EqualityByName(t *testing.T) {
	a, _ := NewParticipant("alice")
	if a != alice {
		t.Errorf("two participants named alice are different")
	}
	if a == bob {
		t.Errorf("alice and bob are equal")
	}
	if !(Participant{}).IsZero() {
		t.Errorf("zero participant is not zero")
	}
}

func TestParseParticipants(t *testing.T) {
	got, err := ParseParticipants("mmd", "ali", "reza")
	if err != nil {
		t.Fatalf("ParseParticipants() unexpected error: %v", err)
	}
	want := []Participant{mmd, ali, reza}
	if len(got) != len(want) {
		t.Fatalf("ParseParticipants() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParseParticipants()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := ParseParticipants("mmd", ""); !errors.Is(err, ErrInvalidParticipant) {
		t.Errorf("ParseParticipants() with an empty name: error = %v, want %v", err, ErrInvalidParticipant)
	}
}
