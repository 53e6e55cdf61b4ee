// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package processor

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullLibrary.
func TestFullLibrary(t *testing.T) {
	t.Parallel()
	fs := os.DirFS("./testdata")
	pc := NewProcessorClient(fs)
	res := new(Result)
	require.NoError(t, pc.Process(res))
	assert.Len(t, res.Accounts, 1)
	assert.Len(t, res.Databases, 1)
	require.NotNil(t, res.Metadata)
	assert.Equal(t, "snippets", res.Metadata.Name)

	acc := res.Accounts["snippets-cosmos"]
	require.NotNil(t, acc)
	assert.Equal(t, "westeurope", acc.Location)
	assert.Equal(t, "Enabled", acc.PublicNetworkAccess)

	db := res.Databases[DatabaseKey("snippets-cosmos", "SnippetsDB")]
	require.NotNil(t, db)
	require.Len(t, db.Containers, 2)
	assert.Equal(t, "snippets", db.Containers[0].Name)
	assert.Equal(t, "/id", db.Containers[0].PartitionKey)
	assert.Equal(t, "logs", db.Containers[1].Name)
	assert.Equal(t, "/tenantId", db.Containers[1].PartitionKey)
}

func TestMetadataOnly(t *testing.T) {
	t.Parallel()
	fs := os.DirFS("./testdata")
	pc := NewProcessorClient(fs)
	meta, err := pc.Metadata()
	require.NoError(t, err)
	assert.Equal(t, "snippets", meta.Name)
	assert.Equal(t, "Snippets Cosmos DB library", meta.DisplayName)
}

// TestProcessAccountValid tests the processing of a valid account declaration.
func TestProcessAccountValid(t *testing.T) {
	t.Parallel()
	sampleData := getSampleAccount()
	res := &Result{
		Accounts: make(map[string]*LibAccount),
	}

	assert.NoError(t, processAccount(res, sampleData))
	assert.Len(t, res.Accounts, 1)
	assert.Equal(t, "snippets-cosmos", res.Accounts["snippets-cosmos"].Name)
	assert.Equal(t, "Disabled", res.Accounts["snippets-cosmos"].PublicNetworkAccess)
}

// TestProcessAccountNoName tests that an account declaration with a
// missing name field throws the correct error.
func TestProcessAccountNoName(t *testing.T) {
	t.Parallel()
	sampleData := newUnmarshaler([]byte(`{"location": "westeurope"}`), ".json")
	res := &Result{
		Accounts: make(map[string]*LibAccount),
	}

	assert.ErrorContains(t, processAccount(res, sampleData), "account name is empty")
}

func TestProcessAccountDuplicate(t *testing.T) {
	t.Parallel()
	res := &Result{
		Accounts: make(map[string]*LibAccount),
	}

	require.NoError(t, processAccount(res, getSampleAccount()))
	assert.ErrorContains(t, processAccount(res, getSampleAccount()), "already exists")
}

func TestProcessAccountInvalidJson(t *testing.T) {
	t.Parallel()
	sampleData := newUnmarshaler([]byte(`{"name": ["not", "a", "string"]}`), ".json")
	res := &Result{
		Accounts: make(map[string]*LibAccount),
	}

	assert.Error(t, processAccount(res, sampleData))
}

// TestProcessDatabaseValid tests the processing of a valid database declaration.
func TestProcessDatabaseValid(t *testing.T) {
	t.Parallel()
	sampleData := getSampleDatabase()
	res := &Result{
		Databases: make(map[string]*LibDatabase),
	}

	assert.NoError(t, processDatabase(res, sampleData))
	assert.Len(t, res.Databases, 1)
	db := res.Databases["snippets-cosmos/SnippetsDB"]
	require.NotNil(t, db)
	assert.Equal(t, "SnippetsDB", db.Name)
	require.Len(t, db.Containers, 1)
	assert.Equal(t, "snippets", db.Containers[0].Name)
}

func TestProcessDatabaseNoAccountName(t *testing.T) {
	t.Parallel()
	sampleData := newUnmarshaler([]byte(`{"name": "SnippetsDB"}`), ".json")
	res := &Result{
		Databases: make(map[string]*LibDatabase),
	}

	assert.ErrorContains(t, processDatabase(res, sampleData), "account name is empty")
}

// TestProcessDatabaseEmptyContainers tests that a database declaration with an
// empty container list is valid and yields zero containers.
func TestProcessDatabaseEmptyContainers(t *testing.T) {
	t.Parallel()
	sampleData := newUnmarshaler([]byte(`{"name": "SnippetsDB", "account_name": "snippets-cosmos"}`), ".json")
	res := &Result{
		Databases: make(map[string]*LibDatabase),
	}

	require.NoError(t, processDatabase(res, sampleData))
	assert.Empty(t, res.Databases["snippets-cosmos/SnippetsDB"].Containers)
}

func TestProcessMetadataDuplicate(t *testing.T) {
	t.Parallel()
	res := new(Result)

	require.NoError(t, processMetadata(res, getSampleMetadata()))
	assert.ErrorContains(t, processMetadata(res, getSampleMetadata()), "more than one metadata file")
}

func TestProcessYamlDatabase(t *testing.T) {
	t.Parallel()
	y := `
name: SnippetsDB
account_name: snippets-cosmos
containers:
  - name: snippets
    partition_key: /id
`
	res := &Result{
		Databases: make(map[string]*LibDatabase),
	}

	require.NoError(t, processDatabase(res, newUnmarshaler([]byte(y), ".yaml")))
	db := res.Databases["snippets-cosmos/SnippetsDB"]
	require.NotNil(t, db)
	assert.Equal(t, "/id", db.Containers[0].PartitionKey)
}

func getSampleAccount() unmarshaler {
	j := `{
	"name": "snippets-cosmos",
	"location": "westeurope",
	"tags": {
		"env": "dev"
	},
	"public_network_access": "Disabled"
}`
	return newUnmarshaler([]byte(j), ".json")
}

func getSampleDatabase() unmarshaler {
	j := `{
	"name": "SnippetsDB",
	"account_name": "snippets-cosmos",
	"containers": [
		{
			"name": "snippets",
			"partition_key": "/id"
		}
	]
}`
	return newUnmarshaler([]byte(j), ".json")
}

func getSampleMetadata() unmarshaler {
	j := `{
	"name": "snippets",
	"display_name": "Snippets Cosmos DB library",
	"description": "Cosmos DB account, database and containers for the snippets service."
}`
	return newUnmarshaler([]byte(j), ".json")
}
