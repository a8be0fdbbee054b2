package edgelist

import (
	"errors"
	"fmt"
)

// ErrInvalidEdgeFormat indicates a record is not (vertex, vertex, integer weight).
var ErrInvalidEdgeFormat = errors.New("edgelist: invalid edge format")

// ErrUnknownFormat indicates Load was asked for an input format it does not know.
var ErrUnknownFormat = errors.New("edgelist: unknown input format")

// LineError reports the first malformed line of a text edge list.
type LineError struct {
	Line int    // 1-based line number
	Text string // raw line as read
	Err  error  // cause; wraps ErrInvalidEdgeFormat
}

func (e *LineError) Error() string {
	return fmt.Sprintf("edgelist: line %d: invalid line %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
