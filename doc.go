// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package cosmoslib provides the data structures needed to declare Azure
// Cosmos DB resources: a database account, the SQL databases beneath it and
// their containers.
//
// Declarations are loaded from library files (JSON or YAML) or constructed
// programmatically, and are stored in memory as Azure SDK types. The
// pkg/deployment package turns them into a desired-state deployment and hands
// it to Azure Resource Manager, which performs the diff against actual cloud
// state and issues the provider API calls.
package cosmoslib
