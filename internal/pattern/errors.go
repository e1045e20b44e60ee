package pattern

import (
	"errors"
	"fmt"
)

// InvalidPatternError indicates a pattern string that does not match the
// <prefix>[<lower>:<upper>] grammar.
type InvalidPatternError struct {
	Pattern string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: expected <prefix>[<lower>:<upper>], e.g. web[01:99]", e.Pattern)
}

// CapacityError indicates that an allocation would run past the upper
// bound of the pattern's id range.
type CapacityError struct {
	Prefix    string
	Next      int
	Requested int
	Upper     int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("pattern %q exhausted: need %d fresh ids starting at %d, but the range ends at %d",
		e.Prefix, e.Requested, e.Next, e.Upper)
}

// IsInvalidPattern reports whether err is an InvalidPatternError.
func IsInvalidPattern(err error) bool {
	var e *InvalidPatternError
	return errors.As(err, &e)
}

// IsCapacityExceeded reports whether err is a CapacityError.
func IsCapacityExceeded(err error) bool {
	var e *CapacityError
	return errors.As(err, &e)
}
