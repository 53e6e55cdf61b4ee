// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package deployment

import (
	"context"
	"os"
	"testing"

	"github.com/Azure/cosmoslib/pkg/processor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSWriterRoundTrip(t *testing.T) {
	t.Parallel()
	d := NewDeployment(nil)
	require.NoError(t, d.AddAccount(AccountAddRequest{
		Name:     "snippets-cosmos",
		Location: "westeurope",
		Tags:     map[string]*string{"service": ptr("snippets")},
	}))
	require.NoError(t, d.AddDatabase(DatabaseAddRequest{
		AccountName: "snippets-cosmos",
		Name:        "SnippetsDB",
		Containers: []ContainerSpec{
			{Name: "snippets", PartitionKey: "/id"},
			{Name: "logs", PartitionKey: "/tenantId"},
		},
	}))
	require.NoError(t, d.AddDatabase(DatabaseAddRequest{
		AccountName:       "existing-account",
		Name:              "SharedDB",
		AccountIsExternal: true,
	}))

	outDir := t.TempDir()
	require.NoError(t, NewFSWriter().Write(context.Background(), d, outDir))

	pc := processor.NewProcessorClient(os.DirFS(outDir))
	res := new(processor.Result)
	require.NoError(t, pc.Process(res))

	require.Len(t, res.Accounts, 1)
	acc := res.Accounts["snippets-cosmos"]
	assert.Equal(t, "westeurope", acc.Location)
	assert.Equal(t, "snippets", acc.Tags["service"])
	assert.Equal(t, "Enabled", acc.PublicNetworkAccess)

	require.Len(t, res.Databases, 2)
	db := res.Databases[processor.DatabaseKey("snippets-cosmos", "SnippetsDB")]
	require.NotNil(t, db)
	assert.False(t, db.AccountIsExternal)
	require.Len(t, db.Containers, 2)
	assert.Equal(t, "snippets", db.Containers[0].Name)
	assert.Equal(t, "/id", db.Containers[0].PartitionKey)
	assert.Equal(t, "logs", db.Containers[1].Name)
	assert.Equal(t, "/tenantId", db.Containers[1].PartitionKey)

	shared := res.Databases[processor.DatabaseKey("existing-account", "SharedDB")]
	require.NotNil(t, shared)
	assert.True(t, shared.AccountIsExternal)
	assert.Empty(t, shared.Containers)
}

func TestFSWriterNilDeployment(t *testing.T) {
	t.Parallel()
	err := NewFSWriter().Write(context.Background(), nil, t.TempDir())
	assert.ErrorContains(t, err, "deployment is nil")
}

func TestFSWriterEmptyOutDir(t *testing.T) {
	t.Parallel()
	err := NewFSWriter().Write(context.Background(), NewDeployment(nil), "  ")
	assert.ErrorContains(t, err, "outDir is empty")
}

func TestFSWriterCancelledContext(t *testing.T) {
	t.Parallel()
	d := NewDeployment(nil)
	require.NoError(t, d.AddAccount(AccountAddRequest{Name: "snippets-cosmos", Location: "westeurope"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewFSWriter().Write(ctx, d, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"":                  "unnamed",
		"  ":                "unnamed",
		"snippets-cosmos":   "snippets-cosmos",
		"a/b\\c:d":          "a_b_c_d",
		"name*with?chars|x": "name_with_chars_x",
		"tab\there":         "tab_here",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizeFilename(in), "input %q", in)
	}
}

func ptr[T any](v T) *T { return &v }
