// Package environment contains the types and methods for fetching configuration from the local environment.
package environment

import "os"

const (
	fetchDefaultBaseDir    = ".cosmoslib"               // fetchDefaultBaseDir is the default base directory for fetching libraries.
	fetchDefaultBaseDirEnv = "COSMOSLIB_DIR"            // fetchDefaultBaseDirEnv is the environment variable to override the default base directory.
	defaultLocationEnv     = "AZURE_DEFAULTS_LOCATION"  // defaultLocationEnv is the environment variable holding the deployment scope's default region.
	defaultResourceGrpEnv  = "AZURE_DEFAULTS_GROUP"     // defaultResourceGrpEnv is the environment variable holding the default resource group.
	subscriptionIdEnv      = "AZURE_SUBSCRIPTION_ID"    // subscriptionIdEnv is the environment variable holding the subscription id.
	armSubscriptionIdEnv   = "ARM_SUBSCRIPTION_ID"      // armSubscriptionIdEnv is the Terraform-style equivalent of subscriptionIdEnv.
)

// CosmosLibDir contents of the `COSMOSLIB_DIR` environment variable, or the default which is `.cosmoslib`.
func CosmosLibDir() string {
	dir := fetchDefaultBaseDir
	if d := os.Getenv(fetchDefaultBaseDirEnv); d != "" {
		dir = d
	}
	return dir
}

// DefaultLocation contents of the `AZURE_DEFAULTS_LOCATION` environment variable,
// the region used when an account declaration does not specify one.
func DefaultLocation() string {
	return os.Getenv(defaultLocationEnv)
}

// DefaultResourceGroup contents of the `AZURE_DEFAULTS_GROUP` environment variable.
func DefaultResourceGroup() string {
	return os.Getenv(defaultResourceGrpEnv)
}

// SubscriptionId contents of the `AZURE_SUBSCRIPTION_ID` environment variable,
// or `ARM_SUBSCRIPTION_ID` if the former is not set.
func SubscriptionId() string {
	if s := os.Getenv(subscriptionIdEnv); s != "" {
		return s
	}
	return os.Getenv(armSubscriptionIdEnv)
}
