// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package processor

// LibDatabase represents an SQL database declaration file.
// The account is referenced by name; whether it is declared in the same
// library or already exists in Azure is decided at deployment time.
type LibDatabase struct {
	Name              string         `json:"name" yaml:"name"`                               // The name of the SQL database
	AccountName       string         `json:"account_name" yaml:"account_name"`               // The name of the owning database account
	AccountIsExternal bool           `json:"account_is_external" yaml:"account_is_external"` // True if the account is not declared in this library
	Containers        []LibContainer `json:"containers" yaml:"containers"`                   // The containers to create in the database, in declaration order
}

// LibContainer represents one container entry of a database declaration.
type LibContainer struct {
	Name         string `json:"name" yaml:"name"`                   // The name of the container
	PartitionKey string `json:"partition_key" yaml:"partition_key"` // The partition key path, e.g. /id
}
