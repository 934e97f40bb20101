// Package render produces the final PDF binary for a CV document.
package render

import "fmt"

// BackendError represents a failure inside the render backend (the
// headless browser). Backend errors are treated as transient and retried.
type BackendError struct {
	Message string
	Cause   error
}

func (e *BackendError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render backend error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render backend error: %s", e.Message)
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}

// Error represents a terminal rendering failure surfaced to the caller
// after retries are exhausted.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
