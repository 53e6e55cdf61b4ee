// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package errcheck provides an error collector for library checks that need
// to report every failure rather than stopping at the first.
package errcheck
