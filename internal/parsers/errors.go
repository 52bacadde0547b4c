package parsers

import (
	"errors"
	"fmt"
)

var (
	// ErrEndOfStream is returned when the file ends where more tokens are required.
	ErrEndOfStream = errors.New("unexpected end of stream")

	// ErrMalformedSection is returned when a mandatory keyword or marker is missing.
	ErrMalformedSection = errors.New("malformed section")

	// ErrIndexMismatch is returned when a record's declared index differs from
	// its sequential position.
	ErrIndexMismatch = errors.New("index mismatch")

	// ErrUnsupportedEdgeWeightType is returned for any EDGE_WEIGHT_TYPE other than EUC_2D.
	ErrUnsupportedEdgeWeightType = errors.New("unsupported edge weight type")

	// ErrMultipleDepotsUnsupported is returned when DEPOT_SECTION does not end
	// with -1 right after the single depot id.
	ErrMultipleDepotsUnsupported = errors.New("multiple depots unsupported")

	// ErrInvalidNumber is returned when a numeric field does not parse.
	ErrInvalidNumber = errors.New("invalid number")
)

// ParseError describes where and why a parse aborted.
type ParseError struct {
	Kind     error
	Dialect  Dialect
	State    State
	Pos      int
	Expected string
	Got      string
	Err      error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse %s: %s at token %d: %v", e.Dialect, e.State, e.Pos, e.Kind)
	if e.Expected != "" || e.Got != "" {
		msg += fmt.Sprintf(": expected %s, got %q", e.Expected, e.Got)
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
