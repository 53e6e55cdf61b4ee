// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package deployment contains the desired-state representation of a Cosmos DB
// deployment: a set of database accounts, the SQL databases attached to them
// and the containers expanded from caller-supplied container lists.
//
// The declared dependency chain is account, then database, then containers.
// Apply walks the chain in that order and hands each declaration to Azure
// Resource Manager, which performs the diff against actual state.
package deployment
