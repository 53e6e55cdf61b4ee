// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package auth

import (
	"os"
	"testing"
)

func TestGetFirstSetEnvVar_NoVarsSet_ReturnsEmpty(t *testing.T) {
	// Ensure none of the vars are set
	_ = os.Unsetenv("TEST_AUTH_VAR_1")
	_ = os.Unsetenv("TEST_AUTH_VAR_2")

	if got := getFirstSetEnvVar("TEST_AUTH_VAR_1", "TEST_AUTH_VAR_2"); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestGetFirstSetEnvVar_FirstSetReturnsValue(t *testing.T) {
	t.Setenv("TEST_AUTH_VAR_1", "first")
	t.Setenv("TEST_AUTH_VAR_2", "second")

	if got := getFirstSetEnvVar("TEST_AUTH_VAR_1", "TEST_AUTH_VAR_2"); got != "first" {
		t.Fatalf("expected 'first', got %q", got)
	}
}

func TestGetFirstSetEnvVar_SecondUsedWhenFirstEmpty(t *testing.T) {
	_ = os.Unsetenv("TEST_AUTH_VAR_1")
	t.Setenv("TEST_AUTH_VAR_2", "second")

	if got := getFirstSetEnvVar("TEST_AUTH_VAR_1", "TEST_AUTH_VAR_2"); got != "second" {
		t.Fatalf("expected 'second', got %q", got)
	}
}

func TestGetFirstSetEnvVar_SetButEmptyIsSkipped(t *testing.T) {
	t.Setenv("TEST_AUTH_VAR_1", "")
	t.Setenv("TEST_AUTH_VAR_2", "second")

	if got := getFirstSetEnvVar("TEST_AUTH_VAR_1", "TEST_AUTH_VAR_2"); got != "second" {
		t.Fatalf("expected 'second', got %q", got)
	}
}
