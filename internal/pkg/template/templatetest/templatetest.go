// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package templatetest provides test doubles for embedded templates.
package templatetest

import (
	"bytes"

	"github.com/curityio/idsvr-aws/internal/pkg/template"
)

// Stub stubs template.New and simulates successful user data rendering.
type Stub struct{}

// ParseAdminUserData returns a dummy template.Content with "admin" in it.
func (fs Stub) ParseAdminUserData(_ template.AdminUserDataOpts) (*template.Content, error) {
	return &template.Content{
		Buffer: bytes.NewBufferString("admin"),
	}, nil
}

// ParseRuntimeUserData returns a dummy template.Content with "runtime" in it.
func (fs Stub) ParseRuntimeUserData(_ template.RuntimeUserDataOpts) (*template.Content, error) {
	return &template.Content{
		Buffer: bytes.NewBufferString("runtime"),
	}, nil
}
