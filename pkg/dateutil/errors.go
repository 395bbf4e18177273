package dateutil

import "fmt"

// ParseError reports a date string that does not match the expected layout
// or names an impossible calendar date (Feb 30, month 13).
type ParseError struct {
	Input  string // the date string that failed to parse
	Layout string // the Go reference layout it was parsed against
	Err    error  // the underlying time.Parse error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("dateutil: cannot parse %q with layout %q: %v", e.Input, e.Layout, e.Err)
}

// Unwrap returns the underlying time.Parse error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
