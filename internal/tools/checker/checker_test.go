// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package checker_test

import (
	"errors"
	"testing"

	"github.com/Azure/cosmoslib/internal/tools/checker"
)

func TestValidator_Validate(t *testing.T) {
	pass := checker.NewValidatorCheck("passing", func() error { return nil })
	fail := checker.NewValidatorCheck("failing", func() error { return errors.New("boom") })

	if err := checker.NewValidatorQuiet(pass).Validate(); err != nil {
		t.Errorf("Expected no error, but got %v", err)
	}

	if err := checker.NewValidatorQuiet(pass, fail).Validate(); err == nil {
		t.Errorf("Expected an error, but got nil")
	}
}

func TestValidator_AddChecks(t *testing.T) {
	called := 0
	count := checker.NewValidatorCheck("counting", func() error {
		called++
		return nil
	})

	v := checker.NewValidatorQuiet(count).AddChecks(count, count)
	if err := v.Validate(); err != nil {
		t.Errorf("Expected no error, but got %v", err)
	}
	if called != 3 {
		t.Errorf("Expected 3 checks to run, got %d", called)
	}
}
