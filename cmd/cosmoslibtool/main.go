// Copyright (c) Microsoft Corporation 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import "github.com/Azure/cosmoslib/cmd/cosmoslibtool/command"

func main() {
	command.Execute()
}
