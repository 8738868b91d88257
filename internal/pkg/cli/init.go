// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/curityio/idsvr-aws/internal/pkg/cli/group"
	"github.com/curityio/idsvr-aws/internal/pkg/config"
	"github.com/curityio/idsvr-aws/internal/pkg/term/color"
	"github.com/curityio/idsvr-aws/internal/pkg/term/log"
	"github.com/curityio/idsvr-aws/internal/pkg/term/prompt"
	"github.com/curityio/idsvr-aws/internal/pkg/topology"
)

const (
	initPasswordPrompt     = "What is the password of the admin user?"
	initPasswordHelpPrompt = "The password is set on the admin node and is never printed."

	initSubnetsTypePrompt     = "Which subnets should the nodes be placed in?"
	initSubnetsTypeHelpPrompt = `PUBLIC subnets give the nodes a public IP address.
PRIVATE subnets require a NAT gateway for outbound traffic.`

	initCloudWatchLogsPrompt     = "Should the nodes send their logs to CloudWatch?"
	initCloudWatchLogsHelpPrompt = "Log groups are created for the admin node and the runtime nodes."

	initValuePrompt     = "What is the value of %s?"
	initValueHelpPrompt = "The value is written to %s."
)

// initPrompt describes how a required key is prompted for.
type initPrompt struct {
	defaultValue string
	validator    prompt.ValidatorFunc
}

var initPrompts = map[string]initPrompt{
	"ADMIN_SERVICE_ROLE":                 {defaultValue: "admin", validator: validateNonEmpty},
	"ADMIN_INSTANCE_TYPE":                {defaultValue: "t3.small", validator: validateNonEmpty},
	"RUNTIME_SERVICE_ROLE":               {defaultValue: "default", validator: validateNonEmpty},
	"RUNTIME_INSTANCE_TYPE":              {defaultValue: "t3.small", validator: validateNonEmpty},
	"RUNTIME_MIN_NODE_COUNT":             {defaultValue: "2", validator: validateNonNegativeInt},
	"RUNTIME_MAX_NODE_COUNT":             {defaultValue: "4", validator: validateNonNegativeInt},
	"RUNTIME_MIN_REQUESTS_PER_NODE":      {defaultValue: "300", validator: validateNonNegativeInt},
	"RUNTIME_MAX_REQUESTS_PER_NODE":      {defaultValue: "600", validator: validateNonNegativeInt},
	"AWS_EC2_KEY_PAIR_NAME":              {validator: validateNonEmpty},
	"METRICS_SCRAPE_INTERVAL_IN_SECONDS": {defaultValue: "30", validator: validatePositiveInt},
}

type initVars struct {
	envFile string
}

type initOpts struct {
	initVars

	fs     afero.Fs
	loader envLoader
	prompt prompter

	vars config.Vars
}

func newInitOpts(vars initVars) *initOpts {
	return &initOpts{
		initVars: vars,
		fs:       afero.NewOsFs(),
		loader:   config.NewLoader(),
		prompt:   prompt.New(),
	}
}

// Validate returns an error if the values passed by flags are invalid.
func (o *initOpts) Validate() error {
	if o.envFile == "" {
		return fmt.Errorf("--%s must not be empty", envFileFlag)
	}
	return nil
}

// Ask prompts for the required keys that are missing from the env file and the environment.
func (o *initOpts) Ask() error {
	vars, err := o.loader.LoadVars(o.envFile)
	if err != nil {
		return err
	}
	for _, key := range config.RequiredKeys() {
		if vars.Get(key) != "" {
			continue
		}
		value, err := o.askValue(key)
		if err != nil {
			return err
		}
		vars.Set(key, value)
	}
	o.vars = vars
	return nil
}

// Execute writes the collected values to the env file.
func (o *initOpts) Execute() error {
	if _, err := config.Parse(o.vars); err != nil {
		return err
	}
	if err := config.Write(o.fs, o.envFile, o.vars); err != nil {
		return err
	}
	log.Successf("Wrote the configuration to %s.\n", color.HighlightResource(o.envFile))
	log.Infof("Run %s to check it against your AWS account.\n", color.HighlightCode("idsvr validate --remote"))
	return nil
}

func (o *initOpts) askValue(key string) (string, error) {
	var value string
	var err error
	switch key {
	case "ADMIN_PASSWORD":
		value, err = o.prompt.GetSecret(initPasswordPrompt, initPasswordHelpPrompt)
	case "AWS_VPC_DEPLOYMENT_SUBNETS_TYPE":
		value, err = o.prompt.SelectOne(initSubnetsTypePrompt, initSubnetsTypeHelpPrompt,
			[]string{string(topology.SubnetTypePublic), string(topology.SubnetTypePrivate)})
	case "ENABLE_CLOUDWATCH_LOGS":
		value, err = o.prompt.SelectOne(initCloudWatchLogsPrompt, initCloudWatchLogsHelpPrompt, []string{"true", "false"})
	default:
		p := initPrompts[key]
		var opts []prompt.Option
		if p.defaultValue != "" {
			opts = append(opts, prompt.WithDefaultInput(p.defaultValue))
		}
		value, err = o.prompt.Get(fmt.Sprintf(initValuePrompt, color.HighlightUserInput(key)),
			fmt.Sprintf(initValueHelpPrompt, o.envFile), p.validator, opts...)
	}
	if err != nil {
		return "", fmt.Errorf("prompt for %s: %w", key, err)
	}
	return value, nil
}

// BuildInitCmd builds the command for writing the deployment configuration.
func BuildInitCmd() *cobra.Command {
	vars := initVars{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the deployment configuration.",
		Long: `Write the deployment configuration.
Prompts for every required value missing from the env file and the environment.`,
		Example: `
  Create or complete the .env file in the current directory.
  /code $ idsvr init
  Write the configuration to a different file.
  /code $ idsvr init --env-file prod.env`,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			return run(newInitOpts(vars))
		}),
	}
	cmd.Flags().StringVarP(&vars.envFile, envFileFlag, envFileFlagShort, config.DefaultEnvFile, envFileFlagDescription)
	cmd.Annotations = map[string]string{
		"group": group.GettingStarted,
	}
	return cmd
}
