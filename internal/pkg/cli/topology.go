// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/curityio/idsvr-aws/internal/pkg/cli/group"
	"github.com/curityio/idsvr-aws/internal/pkg/config"
	"github.com/curityio/idsvr-aws/internal/pkg/term/log"
	"github.com/curityio/idsvr-aws/internal/pkg/topology"
)

type topologyVars struct {
	envFile    string
	outputJSON bool
	outputYAML bool
}

type topologyOpts struct {
	topologyVars

	loader envLoader
	w      io.Writer
}

func newTopologyOpts(vars topologyVars) *topologyOpts {
	return &topologyOpts{
		topologyVars: vars,
		loader:       config.NewLoader(),
		w:            log.OutputWriter,
	}
}

// Validate returns an error if the values passed by flags are invalid.
func (o *topologyOpts) Validate() error {
	if o.outputJSON && o.outputYAML {
		return &errMutuallyExclusiveFlags{flags: []string{jsonFlag, yamlFlag}}
	}
	return nil
}

// Ask is a no-op, the topology is derived from the configuration only.
func (o *topologyOpts) Ask() error {
	return nil
}

// Execute derives the security group rules and listeners and writes them in the requested format.
func (o *topologyOpts) Execute() error {
	cfg, err := o.loader.Load(o.envFile)
	if err != nil {
		return err
	}
	decision := topology.Derive(cfg.TopologyOptions())
	var out string
	switch {
	case o.outputJSON:
		out, err = decision.JSONString()
	case o.outputYAML:
		out, err = decision.YAMLString()
	default:
		out = decision.HumanString()
	}
	if err != nil {
		return err
	}
	fmt.Fprint(o.w, out)
	return nil
}

// BuildTopologyCmd builds the command for showing the derived network topology.
func BuildTopologyCmd() *cobra.Command {
	vars := topologyVars{}
	cmd := &cobra.Command{
		Use:   "topology",
		Short: "Show the security group rules and listeners of the deployment.",
		Long: `Show the security group rules and listeners of the deployment.
The topology depends on whether a certificate is configured and which IP ranges are trusted.`,
		Example: `
  Print the topology as a tree.
  /code $ idsvr topology
  Print the topology as JSON.
  /code $ idsvr topology --json`,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			return run(newTopologyOpts(vars))
		}),
	}
	cmd.Flags().StringVarP(&vars.envFile, envFileFlag, envFileFlagShort, config.DefaultEnvFile, envFileFlagDescription)
	cmd.Flags().BoolVar(&vars.outputJSON, jsonFlag, false, jsonFlagDescription)
	cmd.Flags().BoolVar(&vars.outputYAML, yamlFlag, false, yamlFlagDescription)
	cmd.Annotations = map[string]string{
		"group": group.Inspect,
	}
	return cmd
}
