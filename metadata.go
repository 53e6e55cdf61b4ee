// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cosmoslib

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/Azure/cosmoslib/internal/environment"
	"github.com/Azure/cosmoslib/pkg/processor"
)

// Metadata describes a declaration library member.
type Metadata struct {
	name         string
	displayName  string
	description  string
	dependencies LibraryReferences
	path         string
}

// LibraryReference is an interface that represents a dependency of a library member.
// It is fetched from a go-getter URL.
type LibraryReference interface {
	fmt.Stringer
	// Fetch fetches the library member and stores the result for retrieval with FS().
	Fetch(ctx context.Context, destinationDirectory string) (fs.FS, error)
	// FS returns the fetched file system, or nil if the reference has not been fetched.
	FS() fs.FS
}

// LibraryReferences is a slice of LibraryReference.
type LibraryReferences []LibraryReference

// FSs returns the file systems of the fetched library references.
// References that have not been fetched are skipped.
func (m LibraryReferences) FSs() []fs.FS {
	fss := make([]fs.FS, 0, len(m))
	for _, lib := range m {
		if f := lib.FS(); f != nil {
			fss = append(fss, f)
		}
	}
	return fss
}

var _ LibraryReference = (*CustomLibraryReference)(nil)

// CustomLibraryReference is a library member dependency that is fetched from a custom go-getter URL.
type CustomLibraryReference struct {
	url string
	fs  fs.FS
}

func NewCustomLibraryReference(url string) *CustomLibraryReference {
	return &CustomLibraryReference{
		url: url,
	}
}

// Fetch fetches the library member from the custom go-getter URL.
func (m *CustomLibraryReference) Fetch(ctx context.Context, destinationDirectory string) (fs.FS, error) {
	f, err := FetchLibraryByGetterString(ctx, m.url, destinationDirectory)
	if err != nil {
		return nil, err
	}
	m.fs = f
	return f, nil
}

// FS returns the fetched file system of the library member, or nil if it has not been fetched.
func (m *CustomLibraryReference) FS() fs.FS {
	return m.fs
}

// FetchWithDependencies fetches the library member and all of its
// dependencies, in dependency order.
func (m *CustomLibraryReference) FetchWithDependencies(ctx context.Context) (LibraryReferences, error) {
	return FetchAllLibrariesWithDependencies(ctx, environment.CosmosLibDir(), 0, m, make(LibraryReferences, 0, 5))
}

// String returns the URL of the custom go-getter.
func (m *CustomLibraryReference) String() string {
	return m.url
}

func NewMetadata(in *processor.LibMetadata) *Metadata {
	dependencies := make(LibraryReferences, len(in.Dependencies))
	for i, dep := range in.Dependencies {
		dependencies[i] = NewCustomLibraryReference(dep)
	}
	return &Metadata{
		name:         in.Name,
		displayName:  in.DisplayName,
		description:  in.Description,
		dependencies: dependencies,
		path:         in.Path,
	}
}

// Name returns the name of the library member.
func (m *Metadata) Name() string {
	return m.name
}

// DisplayName returns the display name of the library member.
func (m *Metadata) DisplayName() string {
	return m.displayName
}

// Description returns the description of the library member.
func (m *Metadata) Description() string {
	return m.description
}

// Dependencies returns the dependencies of the library member.
func (m *Metadata) Dependencies() LibraryReferences {
	return m.dependencies
}

// Path returns the relative path of the library member.
func (m *Metadata) Path() string {
	return m.path
}
