package ledger

import (
	"errors"
	"fmt"
)

// Caller-fixable validation failures. None of these leave any state applied.
var (
	ErrInvalidType      = errors.New("invalid account type")
	ErrSelfParent       = errors.New("account cannot be its own parent")
	ErrEmptyTransaction = errors.New("transaction must have at least two journal entries")
	ErrInvalidEntry     = errors.New("invalid journal entry")
	ErrUnbalanced       = errors.New("transaction does not balance")
)

// Stale-reference failures, distinct from malformed input.
var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrUnknownParent       = errors.New("parent account not found")
	ErrUnknownAccount      = errors.New("journal entry references unknown account")
)

// Conflicts with existing ledger state.
var (
	ErrDuplicateCode = errors.New("account code already exists")
	ErrHasPostings   = errors.New("account has posted journal entries")
)

// ErrInvariantViolation indicates a post-condition failure inside the engine
// itself. It is a defect, never a user error.
var ErrInvariantViolation = errors.New("ledger invariant violation")

// EntryError reports which journal entry of a transaction request failed
// validation and why. It unwraps to ErrInvalidEntry or ErrUnknownAccount.
type EntryError struct {
	Index  int
	Reason string
	kind   error
}

func newEntryError(index int, kind error, reason string) *EntryError {
	return &EntryError{Index: index, Reason: reason, kind: kind}
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("journal entry %d: %s", e.Index+1, e.Reason)
}

func (e *EntryError) Unwrap() error {
	return e.kind
}
