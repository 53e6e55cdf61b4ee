// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package assets

import (
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cosmos/armcosmos/v2"
	"github.com/Azure/cosmoslib/to"
	"github.com/brunoga/deep"
)

// DatabaseAccountResourceType is the ARM resource type of a Cosmos DB database account.
const DatabaseAccountResourceType = "Microsoft.DocumentDB/databaseAccounts"

const (
	accountNameMinLength = 3
	accountNameMaxLength = 44
)

// serverlessCapability is the account capability that selects on-demand billing.
const serverlessCapability = "EnableServerless"

// DatabaseAccount is a wrapper around armcosmos.DatabaseAccountCreateUpdateParameters
// that provides additional methods to work with database account declarations.
type DatabaseAccount struct {
	armcosmos.DatabaseAccountCreateUpdateParameters
}

// NewDatabaseAccount creates a new serverless SQL database account declaration.
// The account shape is fixed: kind GlobalDocumentDB, offer type Standard,
// Session consistency and the EnableServerless capability, with a single
// write location.
//
// The publicNetworkAccess value is validated first: anything other than
// Enabled or Disabled is rejected before any other processing.
func NewDatabaseAccount(name, location string, tags map[string]*string, publicNetworkAccess armcosmos.PublicNetworkAccess) (*DatabaseAccount, error) {
	pna, err := PublicNetworkAccessValue(string(publicNetworkAccess))
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, NewErrPropertyMustNotBeEmpty("name")
	}
	if len(name) < accountNameMinLength || len(name) > accountNameMaxLength {
		return nil, NewErrPropertyLength("name", accountNameMinLength, accountNameMaxLength, len(name))
	}
	if location == "" {
		return nil, NewErrPropertyMustNotBeEmpty("location")
	}

	return &DatabaseAccount{
		armcosmos.DatabaseAccountCreateUpdateParameters{
			Name:     to.Ptr(name),
			Type:     to.Ptr(DatabaseAccountResourceType),
			Kind:     to.Ptr(armcosmos.DatabaseAccountKindGlobalDocumentDB),
			Location: to.Ptr(location),
			Tags:     tags,
			Properties: &armcosmos.DatabaseAccountCreateUpdateProperties{
				DatabaseAccountOfferType: to.Ptr("Standard"),
				ConsistencyPolicy: &armcosmos.ConsistencyPolicy{
					DefaultConsistencyLevel: to.Ptr(armcosmos.DefaultConsistencyLevelSession),
				},
				Capabilities: []*armcosmos.Capability{
					{
						Name: to.Ptr(serverlessCapability),
					},
				},
				Locations: []*armcosmos.Location{
					{
						LocationName:     to.Ptr(location),
						FailoverPriority: to.Ptr(int32(0)),
						IsZoneRedundant:  to.Ptr(false),
					},
				},
				PublicNetworkAccess: to.Ptr(pna),
			},
		},
	}, nil
}

// PublicNetworkAccessValue converts a string to an armcosmos.PublicNetworkAccess.
// Only Enabled and Disabled are accepted. An empty string defaults to Enabled.
func PublicNetworkAccessValue(s string) (armcosmos.PublicNetworkAccess, error) {
	switch armcosmos.PublicNetworkAccess(s) {
	case "":
		return armcosmos.PublicNetworkAccessEnabled, nil
	case armcosmos.PublicNetworkAccessEnabled:
		return armcosmos.PublicNetworkAccessEnabled, nil
	case armcosmos.PublicNetworkAccessDisabled:
		return armcosmos.PublicNetworkAccessDisabled, nil
	}
	return "", NewErrPropertyNotInAllowedValues("publicNetworkAccess", s,
		string(armcosmos.PublicNetworkAccessEnabled), string(armcosmos.PublicNetworkAccessDisabled))
}

// AccountName returns the name of the database account.
func (a *DatabaseAccount) AccountName() string {
	return to.ValOrZero(a.Name)
}

// LocationName returns the location of the database account.
func (a *DatabaseAccount) LocationName() string {
	return to.ValOrZero(a.Location)
}

// Copy returns a deep copy of the database account declaration.
func (a *DatabaseAccount) Copy() (*DatabaseAccount, error) {
	return deep.Copy(a)
}

// IsServerless returns true if the account declares the EnableServerless capability.
func (a *DatabaseAccount) IsServerless() bool {
	if a.Properties == nil {
		return false
	}
	for _, c := range a.Properties.Capabilities {
		if to.ValOrZero(c.Name) == serverlessCapability {
			return true
		}
	}
	return false
}
