// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package checks_test

import (
	"testing"

	"github.com/Azure/cosmoslib/internal/tools/checker"
	"github.com/Azure/cosmoslib/internal/tools/checks"
	"github.com/Azure/cosmoslib/pkg/processor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validResult() *processor.Result {
	return &processor.Result{
		Accounts: map[string]*processor.LibAccount{
			"snippets-cosmos": {
				Name:                "snippets-cosmos",
				Location:            "westeurope",
				PublicNetworkAccess: "Enabled",
			},
		},
		Databases: map[string]*processor.LibDatabase{
			processor.DatabaseKey("snippets-cosmos", "SnippetsDB"): {
				Name:        "SnippetsDB",
				AccountName: "snippets-cosmos",
				Containers: []processor.LibContainer{
					{Name: "snippets", PartitionKey: "/id"},
				},
			},
		},
		Metadata: &processor.LibMetadata{Name: "snippets"},
	}
}

func TestChecksValidLibrary(t *testing.T) {
	res := validResult()
	v := checker.NewValidatorQuiet(
		checks.CheckAllDatabasesReferenceDeclaredAccounts(res),
		checks.CheckAllContainersHavePartitionKeys(res),
		checks.CheckAllAccountsHaveValidPublicNetworkAccess(res),
		checks.CheckLibraryMetadataIsValid(res),
	)
	assert.NoError(t, v.Validate())
}

func TestCheckDatabaseReferencesUndeclaredAccount(t *testing.T) {
	res := validResult()
	res.Databases[processor.DatabaseKey("missing", "OtherDB")] = &processor.LibDatabase{
		Name:        "OtherDB",
		AccountName: "missing",
	}

	err := checker.NewValidatorQuiet(checks.CheckAllDatabasesReferenceDeclaredAccounts(res)).Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "undeclared account missing")
}

func TestCheckExternalAccountIsNotRequiredToBeDeclared(t *testing.T) {
	res := validResult()
	res.Databases[processor.DatabaseKey("shared", "SharedDB")] = &processor.LibDatabase{
		Name:              "SharedDB",
		AccountName:       "shared",
		AccountIsExternal: true,
	}

	assert.NoError(t, checker.NewValidatorQuiet(checks.CheckAllDatabasesReferenceDeclaredAccounts(res)).Validate())
}

func TestCheckContainerWithoutPartitionKey(t *testing.T) {
	res := validResult()
	db := res.Databases[processor.DatabaseKey("snippets-cosmos", "SnippetsDB")]
	db.Containers = append(db.Containers, processor.LibContainer{Name: "logs"})

	err := checker.NewValidatorQuiet(checks.CheckAllContainersHavePartitionKeys(res)).Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "container logs has no partition key")
}

func TestCheckInvalidPublicNetworkAccess(t *testing.T) {
	res := validResult()
	res.Accounts["snippets-cosmos"].PublicNetworkAccess = "SecuredByPerimeter"

	err := checker.NewValidatorQuiet(checks.CheckAllAccountsHaveValidPublicNetworkAccess(res)).Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "publicNetworkAccess")
}

func TestCheckMetadata(t *testing.T) {
	res := validResult()
	res.Metadata = nil
	err := checker.NewValidatorQuiet(checks.CheckLibraryMetadataIsValid(res)).Validate()
	assert.ErrorContains(t, err, "no metadata file")

	res.Metadata = &processor.LibMetadata{}
	err = checker.NewValidatorQuiet(checks.CheckLibraryMetadataIsValid(res)).Validate()
	assert.ErrorContains(t, err, "no name")
}
