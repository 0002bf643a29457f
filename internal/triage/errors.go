package triage

import (
	"errors"
	"fmt"
)

// ErrEmptyMessage is returned when the message is blank after trimming.
var ErrEmptyMessage = errors.New("triage: empty message")

// FormatErrorKind distinguishes the two ways a model reply can fail to
// yield a JSON object. Both report identically to the caller.
type FormatErrorKind string

const (
	FormatNoSpan     FormatErrorKind = "no_span"
	FormatUnparsable FormatErrorKind = "unparsable"
)

// FormatError means the model reply carried no parseable JSON object.
// Raw holds the full reply text so the failure can be diagnosed instead
// of vanishing silently.
type FormatError struct {
	Kind FormatErrorKind
	Raw  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("triage: invalid json format (%s)", e.Kind)
}

// UnavailableError wraps an upstream model call failure or timeout.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("triage: model call failed: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}
