// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cosmoslib

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cosmos/armcosmos/v2"
	"github.com/Azure/cosmoslib/pkg/processor"
	"github.com/brunoga/deep"
)

const (
	defaultParallelism = 10 // default number of parallel requests to make to Azure APIs
)

// Embed the Lib dir into the binary.
// It contains the default declarations for the snippets service.
//
//go:embed lib
var Lib embed.FS

// CosmosLib is the structure that gets built from the library files,
// do not create this directly, use NewCosmosLib instead.
type CosmosLib struct {
	Options *CosmosLibOptions

	accounts  map[string]*processor.LibAccount
	databases map[string]*processor.LibDatabase
	metadata  *Metadata
	clients   *azureClients
	mu        sync.RWMutex // mu protects the CosmosLib maps
}

type azureClients struct {
	cosmosClient *armcosmos.ClientFactory
}

// CosmosLibOptions are options for the CosmosLib.
// This is created by NewCosmosLib.
type CosmosLibOptions struct {
	AllowOverwrite bool // AllowOverwrite allows overwriting of existing declarations when processing additional libraries with CosmosLib.Init()
	Parallelism    int  // Parallelism is the number of parallel requests to make to Azure APIs
}

// NewCosmosLib returns a new instance of the cosmoslib library.
// Supply nil options to use the defaults.
func NewCosmosLib(opts *CosmosLibOptions) *CosmosLib {
	if opts == nil {
		opts = getDefaultCosmosLibOptions()
	}
	return &CosmosLib{
		Options:   opts,
		accounts:  make(map[string]*processor.LibAccount),
		databases: make(map[string]*processor.LibDatabase),
		clients:   new(azureClients),
	}
}

func getDefaultCosmosLibOptions() *CosmosLibOptions {
	return &CosmosLibOptions{
		Parallelism:    defaultParallelism,
		AllowOverwrite: false,
	}
}

// AddCosmosClient adds an authenticated *armcosmos.ClientFactory to the CosmosLib struct.
// This is needed to resolve existing accounts in Azure and to apply deployments.
func (cl *CosmosLib) AddCosmosClient(client *armcosmos.ClientFactory) {
	cl.clients.cosmosClient = client
}

// CosmosClient returns the client factory added with AddCosmosClient, or nil.
func (cl *CosmosLib) CosmosClient() *armcosmos.ClientFactory {
	return cl.clients.cosmosClient
}

// Init processes declaration libraries, supplied as fs.FS interfaces.
// These are typically the embed.FS global var `Lib`, or an `os.DirFS`.
// It populates the struct with the results of the processing.
func (cl *CosmosLib) Init(_ context.Context, libs ...fs.FS) error {
	if cl.Options == nil || cl.Options.Parallelism == 0 {
		return errors.New("cosmoslib Options not set or parallelism is 0")
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()

	for _, lib := range libs {
		res := new(processor.Result)
		pc := processor.NewProcessorClient(lib)
		if err := pc.Process(res); err != nil {
			return fmt.Errorf("error processing library %v: %w", lib, err)
		}

		if err := cl.addProcessedResult(res); err != nil {
			return err
		}
	}

	// Every non-external database must reference an account declared in the library.
	for key, db := range cl.databases {
		if db.AccountIsExternal {
			continue
		}
		if _, exists := cl.accounts[db.AccountName]; !exists {
			return fmt.Errorf("database %s references account %s which does not exist in the library", key, db.AccountName)
		}
	}

	return nil
}

// addProcessedResult adds the results of a processed library to the CosmosLib.
func (cl *CosmosLib) addProcessedResult(res *processor.Result) error {
	for k, v := range res.Accounts {
		if _, exists := cl.accounts[k]; exists && !cl.Options.AllowOverwrite {
			return fmt.Errorf("account %s already exists in the library", k)
		}
		cl.accounts[k] = v
	}
	for k, v := range res.Databases {
		if _, exists := cl.databases[k]; exists && !cl.Options.AllowOverwrite {
			return fmt.Errorf("database %s already exists in the library", k)
		}
		cl.databases[k] = v
	}
	if res.Metadata != nil {
		cl.metadata = NewMetadata(res.Metadata)
	}
	return nil
}

// Accounts returns a list of the account declaration names in the CosmosLib struct.
func (cl *CosmosLib) Accounts() []string {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	result := make([]string, 0, len(cl.accounts))
	for k := range cl.accounts {
		result = append(result, k)
	}
	return result
}

// Databases returns a list of the database declaration keys in the CosmosLib struct,
// in the format "accountName/databaseName".
func (cl *CosmosLib) Databases() []string {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	result := make([]string, 0, len(cl.databases))
	for k := range cl.databases {
		result = append(result, k)
	}
	return result
}

// Account returns a copy of the requested account declaration by name.
func (cl *CosmosLib) Account(name string) (*processor.LibAccount, error) {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	acc, ok := cl.accounts[name]
	if !ok {
		return nil, fmt.Errorf("account %s not found", name)
	}
	return deep.Copy(acc)
}

// Database returns a copy of the requested database declaration.
// The key is in the format "accountName/databaseName", see processor.DatabaseKey.
func (cl *CosmosLib) Database(key string) (*processor.LibDatabase, error) {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	db, ok := cl.databases[key]
	if !ok {
		return nil, fmt.Errorf("database %s not found", key)
	}
	return deep.Copy(db)
}

// AccountExists returns true if the account declaration exists in the CosmosLib struct.
func (cl *CosmosLib) AccountExists(name string) bool {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	_, exists := cl.accounts[name]
	return exists
}

// DatabaseExists returns true if the database declaration exists in the CosmosLib struct.
func (cl *CosmosLib) DatabaseExists(key string) bool {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	_, exists := cl.databases[key]
	return exists
}

// Metadata returns the library metadata, or nil if the library has none.
func (cl *CosmosLib) Metadata() *Metadata {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return cl.metadata
}

// AccountNameAvailable checks with Azure whether the account name is still
// available in the global cloud namespace. Account names are globally unique.
func (cl *CosmosLib) AccountNameAvailable(ctx context.Context, name string) (bool, error) {
	if cl.clients.cosmosClient == nil {
		return false, errors.New("cosmos client not set")
	}
	client := cl.clients.cosmosClient.NewDatabaseAccountsClient()
	resp, err := client.CheckNameExists(ctx, name, nil)
	if err != nil {
		return false, fmt.Errorf("CosmosLib.AccountNameAvailable: checking name %s: %w", name, err)
	}
	return !resp.Success, nil
}
