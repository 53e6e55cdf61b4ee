// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package assets

import (
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cosmos/armcosmos/v2"
	"github.com/Azure/cosmoslib/to"
	"github.com/brunoga/deep"
)

// SQLContainerResourceType is the ARM resource type of a Cosmos DB SQL container.
const SQLContainerResourceType = "Microsoft.DocumentDB/databaseAccounts/sqlDatabases/containers"

// SQLContainer is a wrapper around armcosmos.SQLContainerCreateUpdateParameters.
type SQLContainer struct {
	armcosmos.SQLContainerCreateUpdateParameters
}

// NewSQLContainer creates a new SQL container declaration with a single-path
// Hash partition key on the supplied path.
// The partition key path must be non-empty; its syntax is not validated here,
// a malformed path is rejected by the provider at apply time.
func NewSQLContainer(name, partitionKey string) (*SQLContainer, error) {
	if name == "" {
		return nil, NewErrPropertyMustNotBeEmpty("name")
	}
	if partitionKey == "" {
		return nil, NewErrPropertyMustNotBeEmpty("partitionKey")
	}

	return &SQLContainer{
		armcosmos.SQLContainerCreateUpdateParameters{
			Name: to.Ptr(name),
			Type: to.Ptr(SQLContainerResourceType),
			Properties: &armcosmos.SQLContainerCreateUpdateProperties{
				Resource: &armcosmos.SQLContainerResource{
					ID: to.Ptr(name),
					PartitionKey: &armcosmos.ContainerPartitionKey{
						Paths: to.SliceOfPtrs(partitionKey),
						Kind:  to.Ptr(armcosmos.PartitionKindHash),
					},
				},
			},
		},
	}, nil
}

// ContainerName returns the name of the SQL container.
func (c *SQLContainer) ContainerName() string {
	return to.ValOrZero(c.Name)
}

// PartitionKeyPaths returns the partition key paths of the container.
func (c *SQLContainer) PartitionKeyPaths() []string {
	if c.Properties == nil || c.Properties.Resource == nil || c.Properties.Resource.PartitionKey == nil {
		return nil
	}
	paths := make([]string, 0, len(c.Properties.Resource.PartitionKey.Paths))
	for _, p := range c.Properties.Resource.PartitionKey.Paths {
		paths = append(paths, to.ValOrZero(p))
	}
	return paths
}

// PartitionKind returns the partition kind of the container.
func (c *SQLContainer) PartitionKind() armcosmos.PartitionKind {
	if c.Properties == nil || c.Properties.Resource == nil || c.Properties.Resource.PartitionKey == nil {
		return ""
	}
	return to.ValOrZero(c.Properties.Resource.PartitionKey.Kind)
}

// Copy returns a deep copy of the SQL container declaration.
func (c *SQLContainer) Copy() (*SQLContainer, error) {
	return deep.Copy(c)
}
