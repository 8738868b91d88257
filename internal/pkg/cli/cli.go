// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cli contains the idsvr subcommands.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// runCmdE wraps one of the run error methods, PreRunE, RunE, of a cobra command so that if a user
// types "help" in the arguments the usage string is printed instead of running the command.
func runCmdE(f func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && args[0] == "help" {
			_ = cmd.Help() // Help always returns nil.
			os.Exit(0)
		}
		return f(cmd, args)
	}
}

// run validates, asks and executes the command options in order.
func run(opts cmd) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if err := opts.Ask(); err != nil {
		return err
	}
	return opts.Execute()
}
