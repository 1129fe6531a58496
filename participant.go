package tally

import (
	"fmt"
	"strings"
)

// Participant is a named party in a group.
//
// Participants are values: two participants with the same name are the same
// participant. The zero value is not a valid participant.
type Participant struct {
	name string
}

// NewParticipant returns the participant called name.
func NewParticipant(name string) (Participant, error) {
	if strings.TrimSpace(name) == "" {
		return Participant{}, fmt.Errorf("%w: name is empty", ErrInvalidParticipant)
	}
	return Participant{name: name}, nil
}

// MustParticipant is like NewParticipant but panics if the name is invalid.
func MustParticipant(name string) Participant {
	p, err := NewParticipant(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the participant's name.
func (p Participant) Name() string { return p.name }

// String returns the participant's name.
func (p Participant) String() string { return p.name }

// IsZero reports whether p is the zero value.
func (p Participant) IsZero() bool { return p.name == "" }

// ParseParticipants converts a list of names into participants.
func ParseParticipants(names ...string) ([]Participant, error) {
	participants := make([]Participant, 0, len(names))
	for _, name := range names {
		p, err := NewParticipant(name)
		if err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, nil
}
