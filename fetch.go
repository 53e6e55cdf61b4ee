// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cosmoslib

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/go-getter/v2"
)

// FetchLibraryByGetterString fetches a library from a go-getter URL string
// and stores it in the destination directory.
// The destination directory is emptied before fetching.
// The returned fs.FS is rooted at the destination directory.
func FetchLibraryByGetterString(ctx context.Context, getterString, destinationDirectory string) (fs.FS, error) {
	if err := os.RemoveAll(destinationDirectory); err != nil {
		return nil, fmt.Errorf("FetchLibraryByGetterString: error cleaning destination directory %s: %w", destinationDirectory, err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("FetchLibraryByGetterString: error getting working directory: %w", err)
	}
	client := getter.Client{}
	req := &getter.Request{
		Src: getterString,
		Dst: destinationDirectory,
		Pwd: wd,
	}
	if _, err := client.Get(ctx, req); err != nil {
		return nil, fmt.Errorf("FetchLibraryByGetterString: error fetching library from %s: %w", getterString, err)
	}
	return os.DirFS(destinationDirectory), nil
}
