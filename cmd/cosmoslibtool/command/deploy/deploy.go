// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package deploy

import (
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cosmos/armcosmos/v2"
	"github.com/Azure/cosmoslib"
	"github.com/Azure/cosmoslib/internal/auth"
	"github.com/Azure/cosmoslib/internal/environment"
	"github.com/Azure/cosmoslib/pkg/deployment"
	"github.com/spf13/cobra"
)

// DeployCmd represents the library deploy command.
var DeployCmd = cobra.Command{
	Use:   "deploy [flags] dir",
	Short: "Deploy the resources declared by a library member.",
	Long: `Deploy the database accounts, SQL databases and containers declared by a
library member, together with its dependencies.

Without --apply, the expanded declarations are written to the --out directory
so they can be reviewed or deployed with a tool of your choosing.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		thisLib := cosmoslib.NewCustomLibraryReference(args[0])
		allLibs, err := thisLib.FetchWithDependencies(cmd.Context())
		if err != nil {
			cmd.PrintErrf("%s could not fetch all libraries with dependencies: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
		cl := cosmoslib.NewCosmosLib(nil)

		apply, _ := cmd.Flags().GetBool("apply")        // nolint: errcheck
		outDir, _ := cmd.Flags().GetString("out")       // nolint: errcheck
		rg, _ := cmd.Flags().GetString("group")         // nolint: errcheck
		sub, _ := cmd.Flags().GetString("subscription") // nolint: errcheck

		if apply {
			if sub == "" {
				sub = environment.SubscriptionId()
			}
			if sub == "" {
				cmd.PrintErrf("%s no subscription id supplied, use --subscription or AZURE_SUBSCRIPTION_ID\n", cmd.ErrPrefix())
				os.Exit(1)
			}
			cred, err := auth.NewToken()
			if err != nil {
				cmd.PrintErrf("%s could not get Azure credential: %v\n", cmd.ErrPrefix(), err)
				os.Exit(1)
			}
			cf, err := armcosmos.NewClientFactory(sub, cred, &arm.ClientOptions{
				ClientOptions: policy.ClientOptions{
					Cloud: auth.GetCloudFromEnv(),
				},
			})
			if err != nil {
				cmd.PrintErrf("%s could not create Azure cosmos client factory: %v\n", cmd.ErrPrefix(), err)
				os.Exit(1)
			}
			cl.AddCosmosClient(cf)
		}

		if err := cl.Init(cmd.Context(), allLibs.FSs()...); err != nil {
			cmd.PrintErrf("%s could not initialize cosmoslib: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}

		d := deployment.NewDeployment(cl)
		if err := d.AddLibraryDeclarations(); err != nil {
			cmd.PrintErrf("%s could not build deployment: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}

		if outDir != "" {
			if err := deployment.NewFSWriter().Write(cmd.Context(), d, outDir); err != nil {
				cmd.PrintErrf("%s could not write deployment: %v\n", cmd.ErrPrefix(), err)
				os.Exit(1)
			}
		}

		if !apply {
			if sub == "" {
				sub = environment.SubscriptionId()
			}
			if sub == "" {
				sub = "00000000-0000-0000-0000-000000000000"
			}
			if rg == "" {
				rg = environment.DefaultResourceGroup()
			}
			cmd.SetOut(os.Stdout)
			for _, id := range d.ResourceIds(sub, rg) {
				cmd.Println(id)
			}
			return
		}

		res, err := d.Apply(cmd.Context(), deployment.ApplyOptions{
			ResourceGroup: rg,
		})
		if err != nil {
			cmd.PrintErrf("%s deployment failed: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
		cmd.SetOut(os.Stdout)
		cmd.Printf("deployment %s complete\n", res.DeploymentID)
		for name, endpoint := range res.AccountEndpoints {
			cmd.Printf("account %s endpoint: %s\n", name, endpoint)
		}
		for _, key := range res.DatabasesApplied {
			cmd.Printf("database %s applied\n", key)
		}
	},
}

func init() {
	DeployCmd.Flags().BoolP("apply", "a", false, "Whether to apply the deployment to Azure.")
	DeployCmd.Flags().StringP("out", "o", "", "Directory to write the expanded declarations to.")
	DeployCmd.Flags().StringP("group", "g", "", "The resource group to deploy into. Defaults to the AZURE_DEFAULTS_GROUP environment variable.")
	DeployCmd.Flags().StringP("subscription", "s", "", "The subscription id to deploy into. Defaults to the AZURE_SUBSCRIPTION_ID environment variable.")
}
