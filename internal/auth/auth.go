// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package auth

import (
	"fmt"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// environmentToCloud maps environment names to their corresponding cloud configurations.
var environmentToCloud = map[string]cloud.Configuration{
	"public":       cloud.AzurePublic,
	"usgovernment": cloud.AzureGovernment,
	"china":        cloud.AzureChina,
}

// NewToken creates a new Entra token credential.
// It uses well-known Terraform ARM environment variables to configure the
// token acquisition: a client secret wins over a client certificate, which
// wins over a workload identity token file. When none are set the default
// credential chain is used, which includes the Azure CLI.
func NewToken() (azcore.TokenCredential, error) {
	clientOpts := azcore.ClientOptions{
		Cloud: GetCloudFromEnv(),
	}
	tenantId := getFirstSetEnvVar("ARM_TENANT_ID", "AZURE_TENANT_ID")
	clientId := getFirstSetEnvVar("ARM_CLIENT_ID", "AZURE_CLIENT_ID")

	if secret := getFirstSetEnvVar("ARM_CLIENT_SECRET", "AZURE_CLIENT_SECRET"); secret != "" {
		cred, err := azidentity.NewClientSecretCredential(tenantId, clientId, secret, &azidentity.ClientSecretCredentialOptions{
			ClientOptions: clientOpts,
		})
		if err != nil {
			return nil, fmt.Errorf("auth.NewToken: client secret credential: %w", err)
		}

		return cred, nil
	}

	if certPath := getFirstSetEnvVar("ARM_CLIENT_CERTIFICATE_PATH", "AZURE_CLIENT_CERTIFICATE_PATH"); certPath != "" {
		data, err := os.ReadFile(certPath)
		if err != nil {
			return nil, fmt.Errorf("auth.NewToken: reading client certificate: %w", err)
		}
		password := []byte(getFirstSetEnvVar("ARM_CLIENT_CERTIFICATE_PASSWORD"))
		certs, key, err := azidentity.ParseCertificates(data, password)
		if err != nil {
			return nil, fmt.Errorf("auth.NewToken: parsing client certificate: %w", err)
		}
		cred, err := azidentity.NewClientCertificateCredential(tenantId, clientId, certs, key, &azidentity.ClientCertificateCredentialOptions{
			ClientOptions: clientOpts,
		})
		if err != nil {
			return nil, fmt.Errorf("auth.NewToken: client certificate credential: %w", err)
		}

		return cred, nil
	}

	if tokenFile := getFirstSetEnvVar("ARM_OIDC_TOKEN_FILE_PATH", "AZURE_FEDERATED_TOKEN_FILE"); tokenFile != "" {
		cred, err := azidentity.NewWorkloadIdentityCredential(&azidentity.WorkloadIdentityCredentialOptions{
			ClientOptions: clientOpts,
			ClientID:      clientId,
			TenantID:      tenantId,
			TokenFilePath: tokenFile,
		})
		if err != nil {
			return nil, fmt.Errorf("auth.NewToken: workload identity credential: %w", err)
		}

		return cred, nil
	}

	cred, err := azidentity.NewDefaultAzureCredential(&azidentity.DefaultAzureCredentialOptions{
		ClientOptions: clientOpts,
		TenantID:      tenantId,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.NewToken: default credential chain: %w", err)
	}

	return cred, nil
}

// GetCloudFromEnv returns the cloud configuration selected by the
// ARM_ENVIRONMENT or AZURE_ENVIRONMENT environment variables.
// Unknown or unset values select the public cloud.
func GetCloudFromEnv() cloud.Configuration {
	if env := getFirstSetEnvVar("ARM_ENVIRONMENT", "AZURE_ENVIRONMENT"); env != "" {
		if cfg, ok := environmentToCloud[env]; ok {
			return cfg
		}
	}

	return cloud.AzurePublic
}

func getFirstSetEnvVar(vars ...string) string {
	for _, v := range vars {
		if val := os.Getenv(v); val != "" {
			return val
		}
	}

	return ""
}
