// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/curityio/idsvr-aws/internal/pkg/aws/acm"
	"github.com/curityio/idsvr-aws/internal/pkg/aws/ec2"
	"github.com/curityio/idsvr-aws/internal/pkg/aws/profile"
	"github.com/curityio/idsvr-aws/internal/pkg/aws/sessions"
	"github.com/curityio/idsvr-aws/internal/pkg/cli/group"
	"github.com/curityio/idsvr-aws/internal/pkg/config"
	"github.com/curityio/idsvr-aws/internal/pkg/term/color"
	"github.com/curityio/idsvr-aws/internal/pkg/term/log"
	"github.com/curityio/idsvr-aws/internal/pkg/topology"
)

const (
	minCellWidth           = 20
	tabWidth               = 4
	cellPaddingWidth       = 2
	paddingChar            = ' '
	noAdditionalFormatting = 0
)

type validateVars struct {
	envFile string
	remote  bool
	profile string
}

type validateOpts struct {
	validateVars

	loader           envLoader
	sessProvider     sessionProvider
	creds            func(sess *session.Session) (credentials.Value, error)
	newProfiles      func() (profileReader, error)
	newVPCDescriber  func(sess *session.Session) vpcDescriber
	newCertValidator func(sess *session.Session) certValidator
	w                io.Writer
}

func newValidateOpts(vars validateVars) *validateOpts {
	return &validateOpts{
		validateVars: vars,
		loader:       config.NewLoader(),
		sessProvider: sessions.NewProvider(),
		creds:        sessions.Creds,
		newProfiles: func() (profileReader, error) {
			return profile.NewConfig()
		},
		newVPCDescriber: func(sess *session.Session) vpcDescriber {
			return ec2.New(sess)
		},
		newCertValidator: func(sess *session.Session) certValidator {
			return acm.New(sess)
		},
		w: log.OutputWriter,
	}
}

// Validate returns an error if the values passed by flags are invalid.
func (o *validateOpts) Validate() error {
	if o.profile == "" {
		return nil
	}
	if !o.remote {
		return errRemoteFlagMissing
	}
	profiles, err := o.newProfiles()
	if err != nil {
		return err
	}
	if profiles.Has(o.profile) {
		return nil
	}
	return &errProfileNotFound{
		name:     o.profile,
		profiles: profiles.Names(),
	}
}

// Ask is a no-op, every value comes from the env file or the environment.
func (o *validateOpts) Ask() error {
	return nil
}

// Execute loads the configuration, prints it, and checks it against the AWS account if requested.
func (o *validateOpts) Execute() error {
	cfg, err := o.loader.Load(o.envFile)
	if err != nil {
		return err
	}
	o.printEntries(cfg.Vars)
	if o.remote {
		if err := o.checkRemote(cfg); err != nil {
			return err
		}
	}
	log.Successf("The configuration in %s is valid.\n", color.HighlightResource(o.envFile))
	return nil
}

func (o *validateOpts) printEntries(vars config.Vars) {
	writer := tabwriter.NewWriter(o.w, minCellWidth, tabWidth, cellPaddingWidth, paddingChar, noAdditionalFormatting)
	fmt.Fprintf(writer, "%s\t%s\n", "Key", "Value")
	fmt.Fprintf(writer, "%s\t%s\n", "---", "-----")
	for _, e := range vars.Entries() {
		value := e.Value
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(writer, "%s\t%s\n", e.Key, value)
	}
	writer.Flush()
}

func (o *validateOpts) checkRemote(cfg config.Config) error {
	sess, err := o.session()
	if err != nil {
		return err
	}
	if _, err := o.creds(sess); err != nil {
		return err
	}
	var g errgroup.Group
	if cfg.VPCID != "" {
		describer := o.newVPCDescriber(sess)
		g.Go(func() error {
			return checkSubnets(describer, cfg.VPCID, cfg.SubnetsType)
		})
	} else {
		log.Infoln("AWS_VPC_ID is empty, skipping the VPC check.")
	}
	if certs := cfg.Certificates(); len(certs) > 0 {
		validator := o.newCertValidator(sess)
		g.Go(func() error {
			return validator.ValidateIssued(certs)
		})
	}
	return g.Wait()
}

func (o *validateOpts) session() (*session.Session, error) {
	if o.profile != "" {
		return o.sessProvider.FromProfile(o.profile)
	}
	return o.sessProvider.Default()
}

func checkSubnets(describer vpcDescriber, vpcID string, subnetType topology.SubnetType) error {
	if _, err := describer.VPC(vpcID); err != nil {
		return err
	}
	subnets, err := describer.ListVPCSubnets(vpcID)
	if err != nil {
		return fmt.Errorf("list subnets of VPC %s: %w", vpcID, err)
	}
	found := subnets.Public
	if subnetType == topology.SubnetTypePrivate {
		found = subnets.Private
	}
	if len(found) == 0 {
		return &errNoSubnets{
			vpcID:      vpcID,
			subnetType: subnetType,
		}
	}
	return nil
}

// BuildValidateCmd builds the command for validating the deployment configuration.
func BuildValidateCmd() *cobra.Command {
	vars := validateVars{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the deployment configuration.",
		Long: `Check the deployment configuration.
Secret values are masked in the output.`,
		Example: `
  Check the .env file in the current directory.
  /code $ idsvr validate
  Also check that the VPC and certificates exist in your account.
  /code $ idsvr validate --remote --profile prod`,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			return run(newValidateOpts(vars))
		}),
	}
	cmd.Flags().StringVarP(&vars.envFile, envFileFlag, envFileFlagShort, config.DefaultEnvFile, envFileFlagDescription)
	cmd.Flags().BoolVar(&vars.remote, remoteFlag, false, remoteFlagDescription)
	cmd.Flags().StringVar(&vars.profile, profileFlag, "", profileFlagDescription)
	cmd.Annotations = map[string]string{
		"group": group.Inspect,
	}
	return cmd
}
