// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package check

import (
	"os"

	"github.com/Azure/cosmoslib/internal/tools/checker"
	"github.com/Azure/cosmoslib/internal/tools/checks"
	"github.com/Azure/cosmoslib/pkg/processor"
	"github.com/spf13/cobra"
)

// libraryCmd represents the library check command.
var libraryCmd = cobra.Command{
	Use:   "library [flags] dir",
	Short: "Check the validity of a library member.",
	Long: `Check the validity of a library member.

The declaration files are processed without contacting Azure, so the checks
can run in CI before any deployment.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pc := processor.NewProcessorClient(os.DirFS(args[0]))
		res := new(processor.Result)
		if err := pc.Process(res); err != nil {
			cmd.PrintErrf("%s library processing error: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}

		chk := checker.NewValidator(
			checks.CheckLibraryMetadataIsValid(res),
			checks.CheckAllAccountsHaveValidPublicNetworkAccess(res),
			checks.CheckAllDatabasesReferenceDeclaredAccounts(res),
			checks.CheckAllContainersHavePartitionKeys(res),
		)
		if err := chk.Validate(); err != nil {
			cmd.PrintErrf("%s library check error: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
	},
}
