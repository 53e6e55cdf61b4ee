// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package deployment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Azure/cosmoslib/internal/environment"
	"github.com/Azure/cosmoslib/to"
	"golang.org/x/sync/errgroup"
)

const defaultApplyParallelism = 10

// ApplyOptions are options for Deployment.Apply.
type ApplyOptions struct {
	ResourceGroup string // ResourceGroup is the resource group to deploy into. Defaults to the AZURE_DEFAULTS_GROUP environment variable.
	Parallelism   int    // Parallelism is the number of parallel container creation requests per database. Defaults to the library's Parallelism option.
}

// Result holds the outputs of an applied deployment.
// Endpoints are the provider-computed document endpoints of the accounts,
// keyed by account name. They are never synthesized locally.
type Result struct {
	DeploymentID     string
	AccountEndpoints map[string]string
	DatabasesApplied []string
}

// Apply hands the deployment to Azure Resource Manager: accounts first, then
// databases, then containers. Accounts referenced as external are resolved
// with a Get; a resolution failure means the referenced account does not
// exist and aborts the apply.
//
// There is no retry or partial-failure compensation here: the first error
// aborts the remaining operations and is returned.
func (d *Deployment) Apply(ctx context.Context, opts ApplyOptions) (*Result, error) {
	if d.lib == nil || d.lib.CosmosClient() == nil {
		return nil, errors.New("Deployment.Apply: cosmos client not set")
	}
	rg := opts.ResourceGroup
	if rg == "" {
		rg = environment.DefaultResourceGroup()
	}
	if rg == "" {
		return nil, errors.New("Deployment.Apply: resource group not set")
	}
	parallelism := d.applyParallelism(opts.Parallelism)

	res := &Result{
		DeploymentID:     d.ID().String(),
		AccountEndpoints: make(map[string]string),
	}

	accClient := d.lib.CosmosClient().NewDatabaseAccountsClient()

	// Declared accounts.
	for _, name := range d.AccountNames() {
		acc, err := d.Account(name)
		if err != nil {
			return nil, err
		}
		poller, err := accClient.BeginCreateOrUpdate(ctx, rg, name, acc.DatabaseAccountCreateUpdateParameters, nil)
		if err != nil {
			return nil, fmt.Errorf("Deployment.Apply: creating account %s: %w", name, err)
		}
		resp, err := poller.PollUntilDone(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("Deployment.Apply: creating account %s: %w", name, err)
		}
		if resp.Properties != nil {
			res.AccountEndpoints[name] = to.ValOrZero(resp.Properties.DocumentEndpoint)
		}
	}

	// External account references.
	for _, name := range d.ExternalAccountNames() {
		resp, err := accClient.Get(ctx, rg, name, nil)
		if err != nil {
			return nil, fmt.Errorf("Deployment.Apply: referenced account %s could not be resolved: %w", name, err)
		}
		if resp.Properties != nil {
			res.AccountEndpoints[name] = to.ValOrZero(resp.Properties.DocumentEndpoint)
		}
	}

	// Databases, then their containers.
	sqlClient := d.lib.CosmosClient().NewSQLResourcesClient()
	for _, key := range d.DatabaseKeys() {
		db, err := d.Database(key)
		if err != nil {
			return nil, err
		}
		accountName := db.AccountName()
		dbName := db.DatabaseName()

		dbPoller, err := sqlClient.BeginCreateUpdateSQLDatabase(ctx, rg, accountName, dbName, db.SQLDatabaseCreateUpdateParameters, nil)
		if err != nil {
			return nil, fmt.Errorf("Deployment.Apply: creating database %s: %w", key, err)
		}
		if _, err := dbPoller.PollUntilDone(ctx, nil); err != nil {
			return nil, fmt.Errorf("Deployment.Apply: creating database %s: %w", key, err)
		}
		res.DatabasesApplied = append(res.DatabasesApplied, key)

		containers, err := d.Containers(key)
		if err != nil {
			return nil, err
		}
		grp, ctxErrGroup := errgroup.WithContext(ctx)
		grp.SetLimit(parallelism)
		for _, container := range containers {
			container := container
			grp.Go(func() error {
				cPoller, err := sqlClient.BeginCreateUpdateSQLContainer(ctxErrGroup, rg, accountName, dbName, container.ContainerName(), container.SQLContainerCreateUpdateParameters, nil)
				if err != nil {
					return fmt.Errorf("creating container %s: %w", container.ContainerName(), err)
				}
				if _, err := cPoller.PollUntilDone(ctxErrGroup, nil); err != nil {
					return fmt.Errorf("creating container %s: %w", container.ContainerName(), err)
				}
				return nil
			})
		}
		if err := grp.Wait(); err != nil {
			return nil, fmt.Errorf("Deployment.Apply: database %s: %w", key, err)
		}
	}

	return res, nil
}

// applyParallelism resolves the container creation parallelism: an explicit
// request wins, then the library's Parallelism option, then the default.
func (d *Deployment) applyParallelism(requested int) int {
	if requested != 0 {
		return requested
	}
	if d.lib != nil && d.lib.Options != nil && d.lib.Options.Parallelism != 0 {
		return d.lib.Options.Parallelism
	}
	return defaultApplyParallelism
}

// ConnectionStrings lists the connection strings of an applied account.
// The descriptions returned by the provider are used as map keys.
func (d *Deployment) ConnectionStrings(ctx context.Context, resourceGroup, accountName string) (map[string]string, error) {
	if d.lib == nil || d.lib.CosmosClient() == nil {
		return nil, errors.New("Deployment.ConnectionStrings: cosmos client not set")
	}
	if resourceGroup == "" {
		resourceGroup = environment.DefaultResourceGroup()
	}
	client := d.lib.CosmosClient().NewDatabaseAccountsClient()
	resp, err := client.ListConnectionStrings(ctx, resourceGroup, accountName, nil)
	if err != nil {
		return nil, fmt.Errorf("Deployment.ConnectionStrings: listing connection strings for %s: %w", accountName, err)
	}
	result := make(map[string]string, len(resp.ConnectionStrings))
	for _, cs := range resp.ConnectionStrings {
		key := strings.ToLower(to.ValOrZero(cs.Description))
		result[key] = to.ValOrZero(cs.ConnectionString)
	}
	return result, nil
}
