// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package version holds variables for generating version information
package version

import (
	"fmt"
	"runtime"
)

// Version is this binary's version. Set with linker flags when building idsvr.
var Version string

// Platform returns the OS/architecture pair the binary was built for.
func Platform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
