// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jval

import "fmt"

// ParseError is the concrete type of all errors reported by Parse. It
// carries a descriptive message only; no source position is recorded. The
// first error encountered during a parse aborts the parse and is returned
// to the caller unchanged.
type ParseError struct {
	Message string
}

// Error satisfies the error interface.
func (e *ParseError) Error() string { return e.Message }

func failf(msg string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(msg, args...)}
}
