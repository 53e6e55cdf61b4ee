// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package processor reads Cosmos DB declaration files from a library file
// system and builds a Result for consumption by cosmoslib.
package processor

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// These are the file suffixes for the declaration types.
const (
	accountSuffix  = ".+\\.cosmos_account\\.(?i:json|yaml|yml)$"
	databaseSuffix = ".+\\.cosmos_database\\.(?i:json|yaml|yml)$"
	metadataSuffix = ".+\\.cosmos_metadata\\.(?i:json|yaml|yml)$"
)

// File type names used to build export file names.
const (
	AccountFileType  = "cosmos_account"
	DatabaseFileType = "cosmos_database"
	MetadataFileType = "cosmos_metadata"
)

var supportedFileTypes = []string{".json", ".yaml", ".yml"}

var accountRegex = regexp.MustCompile(accountSuffix)
var databaseRegex = regexp.MustCompile(databaseSuffix)
var metadataRegex = regexp.MustCompile(metadataSuffix)

// Result is the structure that gets built by scanning the library files.
// Databases are keyed by "accountName/databaseName" since database names are
// only unique within their account.
type Result struct {
	Accounts  map[string]*LibAccount
	Databases map[string]*LibDatabase
	Metadata  *LibMetadata
}

// DatabaseKey returns the Result.Databases map key for the given account and database names.
func DatabaseKey(accountName, databaseName string) string {
	return accountName + "/" + databaseName
}

// processFunc is the function signature that is used to process different types of lib file.
type processFunc func(result *Result, data unmarshaler) error

// ProcessorClient is the client that is used to process the library files.
type ProcessorClient struct {
	fs fs.FS
}

func NewProcessorClient(fs fs.FS) *ProcessorClient {
	return &ProcessorClient{
		fs: fs,
	}
}

// Metadata reads and returns the library metadata without processing the
// remaining declaration files. If the library contains no metadata file an
// empty LibMetadata is returned.
func (client *ProcessorClient) Metadata() (*LibMetadata, error) {
	res := new(Result)
	res.Metadata = nil
	err := fs.WalkDir(client.fs, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("ProcessorClient.Metadata: error walking directory %s: %w", path, err)
		}
		if d.IsDir() || !metadataRegex.MatchString(strings.ToLower(d.Name())) {
			return nil
		}
		file, err := client.fs.Open(path)
		if err != nil {
			return fmt.Errorf("ProcessorClient.Metadata: error opening file %s: %w", path, err)
		}
		return readAndProcessFile(res, file, d.Name(), processMetadata)
	})
	if err != nil {
		return nil, err
	}
	if res.Metadata == nil {
		return &LibMetadata{}, nil
	}
	return res.Metadata, nil
}

func (client *ProcessorClient) Process(res *Result) error {
	res.Accounts = make(map[string]*LibAccount)
	res.Databases = make(map[string]*LibDatabase)
	res.Metadata = nil

	// Walk the library FS and process files
	if err := fs.WalkDir(client.fs, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("ProcessorClient.Process: error walking directory %s: %w", path, err)
		}
		// Skip directories
		if d.IsDir() {
			return nil
		}
		// Skip files that are not json or yaml
		if !slices.Contains(supportedFileTypes, strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		file, err := client.fs.Open(path)
		if err != nil {
			return fmt.Errorf("ProcessorClient.Process: error opening file %s: %w", path, err)
		}
		return classifyLibFile(res, file, d.Name())
	}); err != nil {
		return err
	}
	return nil
}

// classifyLibFile identifies the supplied file and calls the appropriate processFunc.
func classifyLibFile(res *Result, file fs.File, name string) error {
	err := error(nil)

	// process by file type
	switch n := strings.ToLower(name); {
	// if the file is an account declaration
	case accountRegex.MatchString(n):
		err = readAndProcessFile(res, file, name, processAccount)

	// if the file is a database declaration
	case databaseRegex.MatchString(n):
		err = readAndProcessFile(res, file, name, processDatabase)

	// if the file is the library metadata
	case metadataRegex.MatchString(n):
		err = readAndProcessFile(res, file, name, processMetadata)
	}

	if err != nil {
		err = fmt.Errorf("classifyLibFile: error processing file %s: %w", name, err)
	}

	return err
}

// processAccount is a processFunc that reads the cosmos_account
// bytes, processes, then adds the created LibAccount to the result.
func processAccount(res *Result, unmar unmarshaler) error {
	acc := new(LibAccount)
	if err := unmar.unmarshal(acc); err != nil {
		return fmt.Errorf("processAccount: error unmarshaling: %w", err)
	}
	if acc.Name == "" {
		return fmt.Errorf("processAccount: account name is empty")
	}
	if _, exists := res.Accounts[acc.Name]; exists {
		return fmt.Errorf("processAccount: account with name `%s` already exists", acc.Name)
	}
	res.Accounts[acc.Name] = acc
	return nil
}

// processDatabase is a processFunc that reads the cosmos_database
// bytes, processes, then adds the created LibDatabase to the result.
func processDatabase(res *Result, unmar unmarshaler) error {
	db := new(LibDatabase)
	if err := unmar.unmarshal(db); err != nil {
		return fmt.Errorf("processDatabase: error unmarshaling: %w", err)
	}
	if db.Name == "" {
		return fmt.Errorf("processDatabase: database name is empty")
	}
	if db.AccountName == "" {
		return fmt.Errorf("processDatabase: database `%s` account name is empty", db.Name)
	}
	key := DatabaseKey(db.AccountName, db.Name)
	if _, exists := res.Databases[key]; exists {
		return fmt.Errorf("processDatabase: database with name `%s` already exists", key)
	}
	res.Databases[key] = db
	return nil
}

// processMetadata is a processFunc that reads the cosmos_metadata
// bytes, processes, then sets the LibMetadata on the result.
func processMetadata(res *Result, unmar unmarshaler) error {
	meta := new(LibMetadata)
	if err := unmar.unmarshal(meta); err != nil {
		return fmt.Errorf("processMetadata: error unmarshaling: %w", err)
	}
	if res.Metadata != nil {
		return fmt.Errorf("processMetadata: library has more than one metadata file")
	}
	res.Metadata = meta
	return nil
}

// readAndProcessFile reads the file bytes and processes it using the supplied processFunc.
func readAndProcessFile(res *Result, file fs.File, name string, processFn processFunc) error {
	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("readAndProcessFile: error reading file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("readAndProcessFile: error closing file: %w", err)
	}
	unmar := newUnmarshaler(data, filepath.Ext(name))
	return processFn(res, unmar)
}
