// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package errcheck

import "fmt"

var _ error = (*CheckerError)(nil)

// CheckerError collects errors from a check run.
type CheckerError struct {
	errs []error
}

// NewCheckerError creates an empty CheckerError.
func NewCheckerError() *CheckerError {
	return &CheckerError{
		errs: make([]error, 0),
	}
}

// Add appends an error to the collection. Nil errors are ignored.
func (v *CheckerError) Add(err error) {
	if err == nil {
		return
	}
	v.errs = append(v.errs, err)
}

// HasErrors reports whether any errors were collected.
func (v *CheckerError) HasErrors() bool {
	return len(v.errs) > 0
}

// Error implements the error interface.
// It panics if no errors were collected, check HasErrors first.
func (v *CheckerError) Error() string {
	if len(v.errs) == 0 {
		panic("no errors")
	}
	return fmt.Sprintf("The following errors occurred: %v", v.errs)
}
