// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package assets

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cosmos/armcosmos/v2"
	"github.com/Azure/cosmoslib/to"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabaseAccount(t *testing.T) {
	t.Parallel()

	tags := map[string]*string{
		"env": to.Ptr("dev"),
	}
	acc, err := NewDatabaseAccount("snippets-cosmos", "westeurope", tags, armcosmos.PublicNetworkAccessEnabled)
	require.NoError(t, err)

	assert.Equal(t, "snippets-cosmos", acc.AccountName())
	assert.Equal(t, "westeurope", acc.LocationName())
	assert.Equal(t, armcosmos.DatabaseAccountKindGlobalDocumentDB, *acc.Kind)
	assert.Equal(t, "Standard", *acc.Properties.DatabaseAccountOfferType)
	assert.Equal(t, armcosmos.DefaultConsistencyLevelSession, *acc.Properties.ConsistencyPolicy.DefaultConsistencyLevel)
	assert.Equal(t, armcosmos.PublicNetworkAccessEnabled, *acc.Properties.PublicNetworkAccess)
	assert.True(t, acc.IsServerless())
	require.Len(t, acc.Properties.Locations, 1)
	assert.Equal(t, "westeurope", *acc.Properties.Locations[0].LocationName)
	assert.Equal(t, tags, acc.Tags)
}

func TestNewDatabaseAccountInvalidPublicNetworkAccess(t *testing.T) {
	t.Parallel()

	_, err := NewDatabaseAccount("snippets-cosmos", "westeurope", nil, "SecuredByPerimeter")
	require.Error(t, err)
	target := new(ErrPropertyNotInAllowedValues)
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "publicNetworkAccess", target.PropertyName)
}

func TestNewDatabaseAccountInvalidPublicNetworkAccessRejectedFirst(t *testing.T) {
	t.Parallel()

	// name and location are also invalid here, but the enum violation must win
	_, err := NewDatabaseAccount("", "", nil, "Maybe")
	require.Error(t, err)
	target := new(ErrPropertyNotInAllowedValues)
	require.ErrorAs(t, err, &target)
}

func TestNewDatabaseAccountEmptyName(t *testing.T) {
	t.Parallel()

	_, err := NewDatabaseAccount("", "westeurope", nil, armcosmos.PublicNetworkAccessEnabled)
	require.Error(t, err)
	target := new(ErrPropertyMustNotBeEmpty)
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "name", target.PropertyName)
}

func TestNewDatabaseAccountNameLength(t *testing.T) {
	t.Parallel()

	_, err := NewDatabaseAccount("ab", "westeurope", nil, armcosmos.PublicNetworkAccessEnabled)
	require.Error(t, err)
	target := new(ErrPropertyLength)
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 2, target.ActualLength)
}

func TestNewDatabaseAccountEmptyLocation(t *testing.T) {
	t.Parallel()

	_, err := NewDatabaseAccount("snippets-cosmos", "", nil, armcosmos.PublicNetworkAccessEnabled)
	require.Error(t, err)
	target := new(ErrPropertyMustNotBeEmpty)
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "location", target.PropertyName)
}

func TestPublicNetworkAccessValue(t *testing.T) {
	t.Parallel()

	v, err := PublicNetworkAccessValue("")
	require.NoError(t, err)
	assert.Equal(t, armcosmos.PublicNetworkAccessEnabled, v)

	v, err = PublicNetworkAccessValue("Disabled")
	require.NoError(t, err)
	assert.Equal(t, armcosmos.PublicNetworkAccessDisabled, v)

	_, err = PublicNetworkAccessValue("enabled") // case sensitive
	assert.Error(t, err)
}

func TestDatabaseAccountCopy(t *testing.T) {
	t.Parallel()

	acc, err := NewDatabaseAccount("snippets-cosmos", "westeurope", nil, armcosmos.PublicNetworkAccessEnabled)
	require.NoError(t, err)

	cpy, err := acc.Copy()
	require.NoError(t, err)
	assert.Equal(t, acc.AccountName(), cpy.AccountName())

	*cpy.Location = "northeurope"
	assert.Equal(t, "westeurope", acc.LocationName())
}
