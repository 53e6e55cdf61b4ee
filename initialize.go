// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cosmoslib

import (
	"context"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/Azure/cosmoslib/pkg/processor"
)

// FetchAllLibrariesWithDependencies takes a library reference, fetches it, and then
// fetches all of its dependencies.
// The references are returned in dependency order, so the supplied library is last.
// A dependency that is referenced more than once is only included once.
// Example usage:
//
//	cl := cosmoslib.NewCosmosLib(nil)
//	thisLib := cosmoslib.NewCustomLibraryReference("path/to/library")
//	libs, err := cosmoslib.FetchAllLibrariesWithDependencies(ctx, ".cosmoslib", 0, thisLib, make(cosmoslib.LibraryReferences, 0, 5))
//	// ... handle error
//	err = cl.Init(ctx, libs.FSs()...)
//	// ... handle error
func FetchAllLibrariesWithDependencies(ctx context.Context, baseDir string, i int, lib LibraryReference, libs LibraryReferences) (LibraryReferences, error) {
	dir := filepath.Join(baseDir, strconv.Itoa(i))
	f, err := lib.Fetch(ctx, dir)
	if err != nil {
		return nil, err
	}
	pscl := processor.NewProcessorClient(f)
	libmeta, err := pscl.Metadata()
	if err != nil {
		return nil, err
	}
	meta := NewMetadata(libmeta)
	// for each dependency, recurse using this function
	for _, dep := range meta.Dependencies() {
		i++
		libs, err = FetchAllLibrariesWithDependencies(ctx, baseDir, i, dep, libs)
		if err != nil {
			return nil, err
		}
	}
	// add the current library reference to the list
	return addLibraryReferenceToSlice(libs, lib), nil
}

// addLibraryReferenceToSlice adds a library reference to a slice if it does not already exist.
func addLibraryReferenceToSlice(libs LibraryReferences, lib LibraryReference) LibraryReferences {
	if exists := slices.ContainsFunc(libs, func(l LibraryReference) bool {
		return l.String() == lib.String()
	}); exists {
		return libs
	}

	return append(libs, lib)
}
