// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package errcheck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckerErrorCollectsErrors(t *testing.T) {
	t.Parallel()
	ce := NewCheckerError()
	assert.False(t, ce.HasErrors())

	ce.Add(nil)
	assert.False(t, ce.HasErrors())

	ce.Add(errors.New("first"))
	ce.Add(errors.New("second"))
	require.True(t, ce.HasErrors())
	assert.Equal(t, "The following errors occurred: [first second]", ce.Error())
}

func TestCheckerErrorPanicsWhenEmpty(t *testing.T) {
	t.Parallel()
	ce := NewCheckerError()
	assert.Panics(t, func() { _ = ce.Error() })
}
