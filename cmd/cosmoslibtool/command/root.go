// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package command

import (
	"context"
	"os"

	"github.com/Azure/cosmoslib/cmd/cosmoslibtool/command/check"
	"github.com/Azure/cosmoslib/cmd/cosmoslibtool/command/deploy"
	"github.com/Azure/cosmoslib/cmd/cosmoslibtool/command/document"
	"github.com/spf13/cobra"
)

var version = "dev"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "cosmoslibtool",
	Version: version,
	Short:   "A cli tool for working with cosmoslib libraries",
	Long: `A cli tool for working with cosmoslib libraries.

This tool can:

- Check the validity of a library member.
- Deploy the accounts, databases and containers declared by a library member.
- Generate documentation for a library member.
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(&check.CheckCmd)
	rootCmd.AddCommand(&deploy.DeployCmd)
	rootCmd.AddCommand(&document.DocumentBaseCmd)
}
