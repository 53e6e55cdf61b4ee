// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package processor

// LibAccount represents a database account declaration file.
// PublicNetworkAccess may be left empty, in which case it defaults to Enabled.
// Location may be left empty, in which case the deployment scope's default
// location is used at deployment time.
type LibAccount struct {
	Name                string            `json:"name" yaml:"name"`                                   // The globally unique name of the database account
	Location            string            `json:"location" yaml:"location"`                           // The Azure region of the account
	Tags                map[string]string `json:"tags" yaml:"tags"`                                   // Opaque resource tags
	PublicNetworkAccess string            `json:"public_network_access" yaml:"public_network_access"` // Enabled or Disabled
}
