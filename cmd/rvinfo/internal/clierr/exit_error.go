// SPDX-License-Identifier: BSD-2-Clause

// Package clierr carries process exit codes on errors so main can stay dumb:
// commands wrap fatal conditions with the right code, main extracts it.
package clierr

import (
	"errors"
	"fmt"
)

// Exit codes for the fatal error taxonomy. Non-fatal conditions are printed
// to stderr and leave the exit code at zero.
const (
	CodeFailure = 1 // unclassified failure
	CodeCatalog = 2 // catalog definition missing or malformed
	CodeSource  = 3 // processor attribute source unavailable
	CodeProfile = 4 // requested profile not in the catalog
)

type ExitCoder interface {
	error
	ExitCode() int
}

// ExitError is an error with an explicit process exit code. It supports
// wrapping via Unwrap so errors.Is/As traverse the cause.
type ExitError struct {
	code  int
	msg   string
	cause error
}

func (e *ExitError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *ExitError) ExitCode() int { return e.code }

func (e *ExitError) Unwrap() error { return e.cause }

// New creates an ExitError with a message.
func New(code int, msg string) error {
	return &ExitError{code: normalize(code), msg: msg}
}

// Wrap creates an ExitError around an underlying cause.
func Wrap(code int, msg string, cause error) error {
	if cause == nil {
		return New(code, msg)
	}
	return &ExitError{code: normalize(code), msg: msg, cause: cause}
}

// ExitCodeOf extracts an exit code from any error, defaulting to 1.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return CodeFailure
}

func normalize(code int) int {
	// Exit code 0 means success; errors never carry it.
	if code <= 0 {
		return CodeFailure
	}
	return code
}
