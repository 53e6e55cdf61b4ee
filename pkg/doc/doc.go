// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package doc generates markdown documentation for library members.
package doc

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"slices"

	"github.com/Azure/cosmoslib"
	"github.com/nao1215/markdown"
)

// LibraryReadmeMd writes a markdown README for the library member in dirFs.
func LibraryReadmeMd(ctx context.Context, w io.Writer, dirFs fs.FS) error {
	cl := cosmoslib.NewCosmosLib(nil)
	if err := cl.Init(ctx, dirFs); err != nil {
		return fmt.Errorf("doc.LibraryReadmeMd: failed to initialize library: %w", err)
	}

	meta := cl.Metadata()
	if meta == nil {
		return fmt.Errorf("doc.LibraryReadmeMd: library has no metadata")
	}
	deps := make([]string, len(meta.Dependencies()))
	for i, dep := range meta.Dependencies() {
		deps[i] = fmt.Sprint(dep)
	}

	accounts := cl.Accounts()
	slices.Sort(accounts)

	md := markdown.NewMarkdown(w)
	md.H1f("%s (%s)", meta.DisplayName(), meta.Path()).LF().
		PlainText(meta.Description()).LF().
		H2("Dependencies").LF().
		BulletList(deps...).LF().
		H2("Contents").LF().
		H3("Database Accounts").LF().
		BulletList(accounts...).LF().
		H3("SQL Databases").LF()

	keys := cl.Databases()
	slices.Sort(keys)
	for _, key := range keys {
		db, err := cl.Database(key)
		if err != nil {
			return fmt.Errorf("doc.LibraryReadmeMd: %w", err)
		}
		containers := make([]string, len(db.Containers))
		for i, c := range db.Containers {
			containers[i] = fmt.Sprintf("%s (partition key `%s`)", c.Name, c.PartitionKey)
		}
		md.H4(key).LF().
			BulletList(containers...).LF()
	}

	return md.Build()
}
