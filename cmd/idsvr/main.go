// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package main contains the root command.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/curityio/idsvr-aws/cmd/idsvr/template"
	"github.com/curityio/idsvr-aws/internal/pkg/cli"
	"github.com/curityio/idsvr-aws/internal/pkg/term/color"
	"github.com/curityio/idsvr-aws/internal/pkg/term/log"
	"github.com/curityio/idsvr-aws/internal/pkg/version"
)

const shortDescription = "Configure and inspect Curity Identity Server deployments on AWS"

type actionRecommender interface {
	RecommendActions() string
}

func init() {
	color.DisableColorBasedOnEnvVar()
	cobra.EnableCommandSorting = false // Maintain the order in which we add commands.
}

func main() {
	cmd := buildRootCmd()
	if err := cmd.Execute(); err != nil {
		var ac actionRecommender
		if errors.As(err, &ac) {
			log.Infoln(ac.RecommendActions())
		}
		log.Errorln(err.Error())
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "idsvr",
		Short: shortDescription,
		Example: `
  Displays the help menu for the "init" command.
  /code $ idsvr init --help`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If we don't set a Run() function the help menu doesn't show up.
			// See https://github.com/spf13/cobra/issues/790
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(log.OutputWriter)
	cmd.SetErr(log.DiagnosticWriter)

	cmd.Version = version.Version
	cmd.SetVersionTemplate("idsvr version: {{.Version}}\n")

	// NOTE: Order for each grouping below is significant in that it affects help menu output ordering.
	// "Getting Started" command group.
	cmd.AddCommand(cli.BuildInitCmd())

	// "Inspect" command group.
	cmd.AddCommand(cli.BuildValidateCmd())
	cmd.AddCommand(cli.BuildTopologyCmd())

	// "Release" command group.
	cmd.AddCommand(cli.BuildAMICmd())
	cmd.AddCommand(cli.BuildUserdataCmd())

	// "Settings" command group.
	cmd.AddCommand(cli.BuildVersionCmd())

	cmd.SetUsageTemplate(template.RootUsage)
	return cmd
}
