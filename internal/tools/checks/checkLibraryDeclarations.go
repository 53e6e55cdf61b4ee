// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package checks

import (
	"fmt"

	"github.com/Azure/cosmoslib/assets"
	"github.com/Azure/cosmoslib/internal/tools/checker"
	"github.com/Azure/cosmoslib/internal/tools/errcheck"
	"github.com/Azure/cosmoslib/pkg/processor"
)

// CheckAllDatabasesReferenceDeclaredAccounts verifies that every database not
// marked external references an account declared in the same library.
func CheckAllDatabasesReferenceDeclaredAccounts(res *processor.Result) checker.ValidatorCheck {
	return checker.NewValidatorCheck(
		"All databases reference declared accounts",
		func() error {
			errs := errcheck.NewCheckerError()
			for key, db := range res.Databases {
				if db.AccountIsExternal {
					continue
				}
				if _, ok := res.Accounts[db.AccountName]; !ok {
					errs.Add(fmt.Errorf("database %s references undeclared account %s", key, db.AccountName))
				}
			}
			if errs.HasErrors() {
				return errs
			}
			return nil
		},
	)
}

// CheckAllContainersHavePartitionKeys verifies that every container list entry
// declares a partition key.
func CheckAllContainersHavePartitionKeys(res *processor.Result) checker.ValidatorCheck {
	return checker.NewValidatorCheck(
		"All containers have partition keys",
		func() error {
			errs := errcheck.NewCheckerError()
			for key, db := range res.Databases {
				for _, c := range db.Containers {
					if c.PartitionKey == "" {
						errs.Add(fmt.Errorf("database %s container %s has no partition key", key, c.Name))
					}
				}
			}
			if errs.HasErrors() {
				return errs
			}
			return nil
		},
	)
}

// CheckAllAccountsHaveValidPublicNetworkAccess verifies that every account
// declares a public network access value of Enabled, Disabled or empty.
func CheckAllAccountsHaveValidPublicNetworkAccess(res *processor.Result) checker.ValidatorCheck {
	return checker.NewValidatorCheck(
		"All accounts have a valid publicNetworkAccess value",
		func() error {
			errs := errcheck.NewCheckerError()
			for name, acc := range res.Accounts {
				if _, err := assets.PublicNetworkAccessValue(acc.PublicNetworkAccess); err != nil {
					errs.Add(fmt.Errorf("account %s: %w", name, err))
				}
			}
			if errs.HasErrors() {
				return errs
			}
			return nil
		},
	)
}

// CheckLibraryMetadataIsValid verifies that the library has metadata with a name.
func CheckLibraryMetadataIsValid(res *processor.Result) checker.ValidatorCheck {
	return checker.NewValidatorCheck(
		"Library metadata is valid",
		func() error {
			if res.Metadata == nil {
				return fmt.Errorf("library has no metadata file")
			}
			if res.Metadata.Name == "" {
				return fmt.Errorf("library metadata has no name")
			}
			return nil
		},
	)
}
