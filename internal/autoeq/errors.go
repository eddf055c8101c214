package autoeq

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned when profile text matches neither the
// tabular CSV schema nor the fixed-band line schema.
//
// This is unrecoverable for the given input; callers typically surface
// it as "unrecognized profile format" and let the user pick a different
// profile.
var ErrUnknownFormat = errors.New("unrecognized profile format")

// ErrNoProfiles is returned when an index document contains no profile
// entries.
var ErrNoProfiles = errors.New("no headphone profiles found in index")

// FieldError reports an invalid value in an otherwise recognized profile
// row or line.
//
// Line is 1-based and refers to the physical line (fixed-band schema) or
// record (tabular schema) of the source text. Field names the offending
// column ("type", "frequency", "q", "gain", "preamp") so callers can
// report exactly what was malformed.
type FieldError struct {
	// Line is the 1-based row or line number in the source text.
	Line int

	// Field is the name of the offending field.
	Field string

	// Value is the raw token that failed to parse.
	Value string

	// Reason describes why the value was rejected.
	Reason string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("line %d: invalid %s %q: %s", e.Line, e.Field, e.Value, e.Reason)
}
