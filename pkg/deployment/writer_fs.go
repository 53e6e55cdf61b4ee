// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package deployment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Azure/cosmoslib/pkg/processor"
	"github.com/Azure/cosmoslib/to"
)

// DeploymentWriter writes a Deployment to a target location.
// Implementations should produce files that round-trip through pkg/processor.
type DeploymentWriter interface {
	// Write exports the deployment to outDir. Each account and each database
	// becomes a separate JSON file named using the declaration name plus a
	// type-specific suffix.
	Write(ctx context.Context, d *Deployment, outDir string) error
}

// FSWriter writes a Deployment to the local filesystem.
type FSWriter struct{}

// NewFSWriter creates a new filesystem writer.
func NewFSWriter() *FSWriter { return &FSWriter{} }

const (
	fileSuffixAccount  = "." + processor.AccountFileType + ".json"
	fileSuffixDatabase = "." + processor.DatabaseFileType + ".json"
)

const (
	dirPerm          = 0o755
	filePerm         = 0o644
	controlCharLimit = 0x20
)

// Write implements DeploymentWriter.
func (w *FSWriter) Write(ctx context.Context, d *Deployment, outDir string) error {
	if d == nil {
		return errors.New("fswriter.write: deployment is nil")
	}

	if strings.TrimSpace(outDir) == "" {
		return errors.New("fswriter.write: outDir is empty")
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return fmt.Errorf("fswriter.write: creating outDir: %w", err)
	}

	if err := w.writeAccounts(ctx, d, outDir); err != nil {
		return err
	}

	return w.writeDatabases(ctx, d, outDir)
}

func (w *FSWriter) writeAccounts(ctx context.Context, d *Deployment, outDir string) error {
	for _, name := range d.AccountNames() {
		if err := ctxErr(ctx); err != nil {
			return err
		}

		acc, err := d.Account(name)
		if err != nil {
			return fmt.Errorf("fswriter.writeAccounts: %w", err)
		}

		tags := make(map[string]string, len(acc.Tags))
		for k, v := range acc.Tags {
			tags[k] = to.ValOrZero(v)
		}
		lib := processor.LibAccount{
			Name:                acc.AccountName(),
			Location:            acc.LocationName(),
			Tags:                tags,
			PublicNetworkAccess: string(to.ValOrZero(acc.Properties.PublicNetworkAccess)),
		}

		file := filepath.Join(outDir, sanitizeFilename(name)+fileSuffixAccount)
		if err := writeJSONFile(file, lib); err != nil {
			return fmt.Errorf("fswriter.writeAccounts: writing account %q: %w", name, err)
		}
	}

	return nil
}

func (w *FSWriter) writeDatabases(ctx context.Context, d *Deployment, outDir string) error {
	for _, key := range d.DatabaseKeys() {
		if err := ctxErr(ctx); err != nil {
			return err
		}

		db, err := d.Database(key)
		if err != nil {
			return fmt.Errorf("fswriter.writeDatabases: %w", err)
		}
		containers, err := d.Containers(key)
		if err != nil {
			return fmt.Errorf("fswriter.writeDatabases: %w", err)
		}

		lib := processor.LibDatabase{
			Name:              db.DatabaseName(),
			AccountName:       db.AccountName(),
			AccountIsExternal: !d.hasAccount(db.AccountName()),
			Containers:        make([]processor.LibContainer, len(containers)),
		}
		for i, c := range containers {
			paths := c.PartitionKeyPaths()
			pk := ""
			if len(paths) > 0 {
				pk = paths[0]
			}
			lib.Containers[i] = processor.LibContainer{
				Name:         c.ContainerName(),
				PartitionKey: pk,
			}
		}

		name := db.AccountName() + "_" + db.DatabaseName()
		file := filepath.Join(outDir, sanitizeFilename(name)+fileSuffixDatabase)
		if err := writeJSONFile(file, lib); err != nil {
			return fmt.Errorf("fswriter.writeDatabases: writing database %q: %w", key, err)
		}
	}

	return nil
}

func (d *Deployment) hasAccount(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.accounts[name]
	return ok
}

// Helpers

func ctxErr(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func sanitizeFilename(s string) string {
	if s == "" {
		return "unnamed"
	}
	// Replace path separators and common problematic characters; trim spaces.
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_",
	)
	s = replacer.Replace(s)
	s = strings.Map(func(r rune) rune {
		if r < controlCharLimit {
			return '_' // control chars
		}

		return r
	}, s)

	s = strings.TrimSpace(s)
	if s == "" {
		return "unnamed"
	}

	return s
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling json: %w", err)
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, filePerm)
}
