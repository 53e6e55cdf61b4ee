// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package deployment

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cosmos/armcosmos/v2"
	"github.com/Azure/cosmoslib"
	"github.com/Azure/cosmoslib/assets"
	"github.com/Azure/cosmoslib/internal/environment"
	"github.com/Azure/cosmoslib/pkg/processor"
	"github.com/Azure/cosmoslib/to"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

const (
	DatabaseAccountIdFmt = "/subscriptions/%s/resourceGroups/%s/providers/Microsoft.DocumentDB/databaseAccounts/%s"
	SQLDatabaseIdFmt     = "/subscriptions/%s/resourceGroups/%s/providers/Microsoft.DocumentDB/databaseAccounts/%s/sqlDatabases/%s"
	SQLContainerIdFmt    = "/subscriptions/%s/resourceGroups/%s/providers/Microsoft.DocumentDB/databaseAccounts/%s/sqlDatabases/%s/containers/%s"
)

// SnippetsDatabaseName is the database name used by the snippets deployment.
const SnippetsDatabaseName = "SnippetsDB"

// defaultSnippetsContainers is the container list used by AddSnippets when the
// request does not supply one.
var defaultSnippetsContainers = []ContainerSpec{
	{Name: "snippets", PartitionKey: "/id"},
}

// Deployment represents a desired-state deployment of Cosmos DB resources.
// Do not create this struct directly, use NewDeployment instead.
type Deployment struct {
	accounts         map[string]*assets.DatabaseAccount
	externalAccounts mapset.Set[string]
	databases        map[string]*DeploymentDatabase
	lib              *cosmoslib.CosmosLib
	mu               *sync.RWMutex
}

// DeploymentDatabase is a SQL database declaration together with the
// containers expanded from its container list.
// Note: this is not thread safe, and should not be used concurrently without an external mutex.
type DeploymentDatabase struct {
	database   *assets.SQLDatabase
	containers []*assets.SQLContainer
	external   bool
}

// ContainerSpec is one entry of a caller-supplied container list.
type ContainerSpec struct {
	Name         string
	PartitionKey string
}

// AccountAddRequest represents the request to add a database account to the deployment.
type AccountAddRequest struct {
	Name                string
	Location            string // defaults to the deployment scope's region, see environment.DefaultLocation
	Tags                map[string]*string
	PublicNetworkAccess armcosmos.PublicNetworkAccess // defaults to Enabled
}

// DatabaseAddRequest represents the request to add a SQL database to the deployment.
// If AccountIsExternal is false the account must already have been added to
// this deployment; if true the account is resolved in Azure at apply time.
type DatabaseAddRequest struct {
	AccountName       string
	Name              string
	Containers        []ContainerSpec
	AccountIsExternal bool
}

// SnippetsAddRequest represents the request to add the snippets account and
// database in one call. Containers defaults to a single container named
// "snippets" partitioned on /id.
type SnippetsAddRequest struct {
	AccountName         string
	Location            string
	Tags                map[string]*string
	PublicNetworkAccess armcosmos.PublicNetworkAccess
	Containers          []ContainerSpec
}

// NewDeployment creates a new Deployment with the given CosmosLib.
// The lib may be nil if declarations are only added programmatically and
// Apply is never called.
func NewDeployment(lib *cosmoslib.CosmosLib) *Deployment {
	return &Deployment{
		accounts:         make(map[string]*assets.DatabaseAccount),
		externalAccounts: mapset.NewThreadUnsafeSet[string](),
		databases:        make(map[string]*DeploymentDatabase),
		lib:              lib,
		mu:               new(sync.RWMutex),
	}
}

// AddAccount adds a database account to the deployment.
// The publicNetworkAccess value is validated before any other processing.
func (d *Deployment) AddAccount(req AccountAddRequest) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	location := req.Location
	if location == "" {
		location = environment.DefaultLocation()
	}
	acc, err := assets.NewDatabaseAccount(req.Name, location, req.Tags, req.PublicNetworkAccess)
	if err != nil {
		return fmt.Errorf("Deployment.AddAccount: %w", err)
	}
	if _, exists := d.accounts[req.Name]; exists {
		return fmt.Errorf("Deployment.AddAccount: account %s already exists", req.Name)
	}
	d.accounts[req.Name] = acc
	return nil
}

// AddDatabase adds a SQL database and its containers to the deployment.
// Each entry of the container list yields exactly one container declaration,
// in list order. An empty list yields zero containers and is not an error.
// Duplicate container names are passed through, the outcome is provider-defined.
func (d *Deployment) AddDatabase(req DatabaseAddRequest) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.accounts[req.AccountName]; !exists && !req.AccountIsExternal {
		return fmt.Errorf("Deployment.AddDatabase: account %s does not exist in the deployment, mark it external if it already exists in Azure", req.AccountName)
	}
	key := processor.DatabaseKey(req.AccountName, req.Name)
	if _, exists := d.databases[key]; exists {
		return fmt.Errorf("Deployment.AddDatabase: database %s already exists", key)
	}

	db, err := assets.NewSQLDatabase(req.AccountName, req.Name)
	if err != nil {
		return fmt.Errorf("Deployment.AddDatabase: %w", err)
	}
	containers := make([]*assets.SQLContainer, 0, len(req.Containers))
	for _, spec := range req.Containers {
		c, err := assets.NewSQLContainer(spec.Name, spec.PartitionKey)
		if err != nil {
			return fmt.Errorf("Deployment.AddDatabase: container %s: %w", spec.Name, err)
		}
		containers = append(containers, c)
	}

	if req.AccountIsExternal {
		d.externalAccounts.Add(req.AccountName)
	}
	d.databases[key] = &DeploymentDatabase{
		database:   db,
		containers: containers,
		external:   req.AccountIsExternal,
	}
	return nil
}

// AddSnippets adds the snippets account and the SnippetsDB database to the
// deployment in one call, supplying default values where the request omits
// them. It composes AddAccount and AddDatabase rather than duplicating them.
func (d *Deployment) AddSnippets(req SnippetsAddRequest) error {
	if err := d.AddAccount(AccountAddRequest{
		Name:                req.AccountName,
		Location:            req.Location,
		Tags:                req.Tags,
		PublicNetworkAccess: req.PublicNetworkAccess,
	}); err != nil {
		return err
	}
	containers := req.Containers
	if containers == nil {
		containers = defaultSnippetsContainers
	}
	return d.AddDatabase(DatabaseAddRequest{
		AccountName: req.AccountName,
		Name:        SnippetsDatabaseName,
		Containers:  containers,
	})
}

// AddLibraryDeclarations adds all account and database declarations from the
// CosmosLib supplied at construction time, accounts first.
func (d *Deployment) AddLibraryDeclarations() error {
	if d.lib == nil {
		return fmt.Errorf("Deployment.AddLibraryDeclarations: no library set")
	}

	accNames := d.lib.Accounts()
	slices.Sort(accNames)
	for _, name := range accNames {
		acc, err := d.lib.Account(name)
		if err != nil {
			return fmt.Errorf("Deployment.AddLibraryDeclarations: %w", err)
		}
		pna, err := assets.PublicNetworkAccessValue(acc.PublicNetworkAccess)
		if err != nil {
			return fmt.Errorf("Deployment.AddLibraryDeclarations: account %s: %w", name, err)
		}
		tags := make(map[string]*string, len(acc.Tags))
		for k, v := range acc.Tags {
			tags[k] = to.Ptr(v)
		}
		if err := d.AddAccount(AccountAddRequest{
			Name:                acc.Name,
			Location:            acc.Location,
			Tags:                tags,
			PublicNetworkAccess: pna,
		}); err != nil {
			return err
		}
	}

	dbKeys := d.lib.Databases()
	slices.Sort(dbKeys)
	for _, key := range dbKeys {
		db, err := d.lib.Database(key)
		if err != nil {
			return fmt.Errorf("Deployment.AddLibraryDeclarations: %w", err)
		}
		containers := make([]ContainerSpec, len(db.Containers))
		for i, c := range db.Containers {
			containers[i] = ContainerSpec{Name: c.Name, PartitionKey: c.PartitionKey}
		}
		if err := d.AddDatabase(DatabaseAddRequest{
			AccountName:       db.AccountName,
			Name:              db.Name,
			Containers:        containers,
			AccountIsExternal: db.AccountIsExternal,
		}); err != nil {
			return err
		}
	}
	return nil
}

// AccountNames returns the declared account names as a sorted slice of string.
// External accounts referenced by databases are not included.
func (d *Deployment) AccountNames() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	res := make([]string, 0, len(d.accounts))
	for name := range d.accounts {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

// ExternalAccountNames returns the names of accounts referenced by databases
// but not declared in this deployment, as a sorted slice of string.
func (d *Deployment) ExternalAccountNames() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	res := d.externalAccounts.ToSlice()
	slices.Sort(res)
	return res
}

// DatabaseKeys returns the declared database keys ("accountName/databaseName")
// as a sorted slice of string.
func (d *Deployment) DatabaseKeys() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	res := make([]string, 0, len(d.databases))
	for key := range d.databases {
		res = append(res, key)
	}
	slices.Sort(res)
	return res
}

// Account returns a copy of the declared account with the given name.
func (d *Deployment) Account(name string) (*assets.DatabaseAccount, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	acc, ok := d.accounts[name]
	if !ok {
		return nil, fmt.Errorf("Deployment.Account: account %s not found", name)
	}
	return acc.Copy()
}

// Database returns a copy of the declared database with the given key.
func (d *Deployment) Database(key string) (*assets.SQLDatabase, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	db, ok := d.databases[key]
	if !ok {
		return nil, fmt.Errorf("Deployment.Database: database %s not found", key)
	}
	return db.database.Copy()
}

// Containers returns copies of the container declarations of the database
// with the given key, in declaration order.
func (d *Deployment) Containers(key string) ([]*assets.SQLContainer, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	db, ok := d.databases[key]
	if !ok {
		return nil, fmt.Errorf("Deployment.Containers: database %s not found", key)
	}
	res := make([]*assets.SQLContainer, len(db.containers))
	for i, c := range db.containers {
		cpy, err := c.Copy()
		if err != nil {
			return nil, fmt.Errorf("Deployment.Containers: %w", err)
		}
		res[i] = cpy
	}
	return res, nil
}

// ContainerNames returns the names of the container declarations of the
// database with the given key, in declaration order.
func (d *Deployment) ContainerNames(key string) ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	db, ok := d.databases[key]
	if !ok {
		return nil, fmt.Errorf("Deployment.ContainerNames: database %s not found", key)
	}
	res := make([]string, len(db.containers))
	for i, c := range db.containers {
		res[i] = c.ContainerName()
	}
	return res, nil
}

// ResourceIds returns the ARM resource ids of the resources Apply would
// create in the given scope: accounts first, then each database followed by
// its containers. External accounts are not included, Apply does not create
// them.
func (d *Deployment) ResourceIds(subscriptionId, resourceGroup string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	accNames := make([]string, 0, len(d.accounts))
	for name := range d.accounts {
		accNames = append(accNames, name)
	}
	slices.Sort(accNames)
	keys := make([]string, 0, len(d.databases))
	for key := range d.databases {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	ids := make([]string, 0, len(accNames)+len(keys))
	for _, name := range accNames {
		ids = append(ids, fmt.Sprintf(DatabaseAccountIdFmt, subscriptionId, resourceGroup, name))
	}
	for _, key := range keys {
		db := d.databases[key]
		accName := db.database.AccountName()
		dbName := db.database.DatabaseName()
		ids = append(ids, fmt.Sprintf(SQLDatabaseIdFmt, subscriptionId, resourceGroup, accName, dbName))
		for _, c := range db.containers {
			ids = append(ids, fmt.Sprintf(SQLContainerIdFmt, subscriptionId, resourceGroup, accName, dbName, c.ContainerName()))
		}
	}
	return ids
}

// ID returns a deterministic identifier for the deployment, derived from the
// declared resource names. Two deployments declaring the same resources have
// the same ID.
func (d *Deployment) ID() uuid.UUID {
	names := d.AccountNames()
	for _, key := range d.DatabaseKeys() {
		names = append(names, key)
		cn, _ := d.ContainerNames(key) // nolint: errcheck
		for _, c := range cn {
			names = append(names, key+"/"+c)
		}
	}
	return uuidV5(names...)
}

func uuidV5(s ...string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(strings.Join(s, "")))
}
