// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package assets contains the types for the Cosmos DB resources that are
// declared by cosmoslib. Each type wraps the corresponding Azure SDK
// (armcosmos) type and adds construction and validation methods.
package assets
