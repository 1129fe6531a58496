package tally

import "errors"

// Validation errors returned by the engine. They are usually wrapped with
// some context, use errors.Is to check for them.
var (
	ErrInvalidParticipant   = errors.New("tally: invalid participant")
	ErrDuplicateParticipant = errors.New("tally: duplicate participant")
	ErrUnknownParticipant   = errors.New("tally: unknown participant")
	ErrInvalidAmount        = errors.New("tally: invalid amount")
	ErrInvalidExclusion     = errors.New("tally: spender cannot be excluded")
	ErrNoPayingParticipants = errors.New("tally: no participant left to share the expense")
)
