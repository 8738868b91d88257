// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package group contains the names of command groups.
package group

// Categories for each top level command in the CLI.
const (
	GettingStarted = "Getting Started"
	Inspect        = "Inspect"
	Release        = "Release"
	Settings       = "Settings"
)
