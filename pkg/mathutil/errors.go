package mathutil

import "fmt"

// DomainError reports an argument that violates a documented precondition,
// such as a factorial input outside [0, MaxFactorialInput].
type DomainError struct {
	Func    string // operation that rejected the argument, e.g. "Factorial"
	Message string // human-readable reason
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("mathutil: %s: %s", e.Func, e.Message)
}

// newDomainError creates a DomainError for the named operation.
func newDomainError(fn, format string, args ...interface{}) *DomainError {
	return &DomainError{Func: fn, Message: fmt.Sprintf(format, args...)}
}
