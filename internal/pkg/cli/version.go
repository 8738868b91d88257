// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/curityio/idsvr-aws/internal/pkg/cli/group"
	"github.com/curityio/idsvr-aws/internal/pkg/term/log"
	"github.com/curityio/idsvr-aws/internal/pkg/version"
)

type versionOpts struct {
	version  string
	platform string
	w        io.Writer
}

// Validate is a no-op.
func (o *versionOpts) Validate() error {
	return nil
}

// Ask is a no-op.
func (o *versionOpts) Ask() error {
	return nil
}

// Execute prints the version and the platform the binary was built for.
func (o *versionOpts) Execute() error {
	fmt.Fprintf(o.w, "version: %s, built for %s\n", o.version, o.platform)
	return nil
}

// BuildVersionCmd builds the command for displaying the version.
func BuildVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number.",
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			return run(&versionOpts{
				version:  version.Version,
				platform: version.Platform(),
				w:        log.OutputWriter,
			})
		}),
	}
	cmd.Annotations = map[string]string{
		"group": group.Settings,
	}
	return cmd
}
