// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package assets

import (
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cosmos/armcosmos/v2"
	"github.com/Azure/cosmoslib/to"
	"github.com/brunoga/deep"
)

// SQLDatabaseResourceType is the ARM resource type of a Cosmos DB SQL database.
const SQLDatabaseResourceType = "Microsoft.DocumentDB/databaseAccounts/sqlDatabases"

// SQLDatabase is a wrapper around armcosmos.SQLDatabaseCreateUpdateParameters
// that records the owning account reference alongside the declaration.
type SQLDatabase struct {
	armcosmos.SQLDatabaseCreateUpdateParameters

	accountName string
}

// NewSQLDatabase creates a new SQL database declaration beneath the named account.
// The account is referenced by name only, it is not created here.
// No throughput options are set: serverless accounts consume capacity on demand.
func NewSQLDatabase(accountName, name string) (*SQLDatabase, error) {
	if accountName == "" {
		return nil, NewErrPropertyMustNotBeEmpty("accountName")
	}
	if name == "" {
		return nil, NewErrPropertyMustNotBeEmpty("name")
	}

	return &SQLDatabase{
		SQLDatabaseCreateUpdateParameters: armcosmos.SQLDatabaseCreateUpdateParameters{
			Name: to.Ptr(name),
			Type: to.Ptr(SQLDatabaseResourceType),
			Properties: &armcosmos.SQLDatabaseCreateUpdateProperties{
				Resource: &armcosmos.SQLDatabaseResource{
					ID: to.Ptr(name),
				},
			},
		},
		accountName: accountName,
	}, nil
}

// AccountName returns the name of the account the database belongs to.
func (d *SQLDatabase) AccountName() string {
	return d.accountName
}

// DatabaseName returns the name of the SQL database.
func (d *SQLDatabase) DatabaseName() string {
	return to.ValOrZero(d.Name)
}

// Copy returns a deep copy of the SQL database declaration.
func (d *SQLDatabase) Copy() (*SQLDatabase, error) {
	return deep.Copy(d)
}
