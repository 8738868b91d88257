// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package templates embeds the static files rendered by the CLI.
package templates

import "embed"

// FS holds the embedded templates. Paths are relative to this directory,
// for example "userdata/admin-userdata.yaml".
//
//go:embed userdata
var FS embed.FS
