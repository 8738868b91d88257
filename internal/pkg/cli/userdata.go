// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/curityio/idsvr-aws/internal/pkg/aws/sessions"
	"github.com/curityio/idsvr-aws/internal/pkg/cli/group"
	"github.com/curityio/idsvr-aws/internal/pkg/config"
	"github.com/curityio/idsvr-aws/internal/pkg/naming"
	"github.com/curityio/idsvr-aws/internal/pkg/template"
	"github.com/curityio/idsvr-aws/internal/pkg/term/color"
	"github.com/curityio/idsvr-aws/internal/pkg/term/log"
)

const (
	defaultStackName = "curity-idsvr"

	adminUserDataFile   = "admin-userdata.yaml"
	runtimeUserDataFile = "runtime-userdata.yaml"
)

type userdataVars struct {
	envFile   string
	outputDir string
	stackName string
	region    string
	suffix    string
}

type userdataOpts struct {
	userdataVars

	fs           afero.Fs
	loader       envLoader
	parser       userDataParser
	sessProvider sessionProvider
	randomSuffix naming.SuffixSource

	cfg config.Config
}

func newUserdataOpts(vars userdataVars) *userdataOpts {
	return &userdataOpts{
		userdataVars: vars,
		fs:           afero.NewOsFs(),
		loader:       config.NewLoader(),
		parser:       template.New(),
		sessProvider: sessions.NewProvider(),
		randomSuffix: naming.RandomSuffix,
	}
}

// Validate returns an error if the values passed by flags are invalid.
func (o *userdataOpts) Validate() error {
	if o.outputDir == "" {
		return fmt.Errorf("--%s must not be empty", outputDirFlag)
	}
	if o.stackName == "" {
		return fmt.Errorf("--%s must not be empty", stackNameFlag)
	}
	if o.suffix != "" {
		if err := naming.ValidateSuffix(o.suffix); err != nil {
			return fmt.Errorf("--%s %q %w", suffixFlag, o.suffix, err)
		}
	}
	return nil
}

// Ask loads the configuration and resolves the region from the default profile when --region is not set.
func (o *userdataOpts) Ask() error {
	cfg, err := o.loader.Load(o.envFile)
	if err != nil {
		return err
	}
	o.cfg = cfg
	if o.region != "" {
		return nil
	}
	sess, err := o.sessProvider.Default()
	if err != nil {
		return err
	}
	o.region = aws.StringValue(sess.Config.Region)
	return nil
}

// Execute renders the admin and runtime node user data into the output directory.
func (o *userdataOpts) Execute() error {
	cfg := o.cfg
	namer := naming.New(o.suffixSource(cfg))

	admin, err := o.parser.ParseAdminUserData(template.AdminUserDataOpts{
		BucketName:           namer.ClusterConfigBucket(),
		AdminPassword:        cfg.AdminPassword,
		EFSDNS:               cfg.EFSDNS,
		CloudWatchNamespace:  cfg.CloudWatchNamespace,
		Region:               o.region,
		LogGroup:             namer.AdminLogGroup(),
		ConfigEncryptionKey:  cfg.ConfigEncryptionKey,
		EnableCloudWatchLogs: cfg.EnableCloudWatchLogs,
		MetricsScrapeSeconds: cfg.MetricsScrapeIntervalSeconds,
	})
	if err != nil {
		return fmt.Errorf("render admin node user data: %w", err)
	}
	runtime, err := o.parser.ParseRuntimeUserData(template.RuntimeUserDataOpts{
		BucketName:           namer.ClusterConfigBucket(),
		ServiceRole:          cfg.RuntimeServiceRole,
		StackName:            o.stackName,
		EFSDNS:               cfg.EFSDNS,
		CloudWatchNamespace:  cfg.CloudWatchNamespace,
		Region:               o.region,
		LogGroup:             namer.RuntimeLogGroup(),
		ConfigEncryptionKey:  cfg.ConfigEncryptionKey,
		EnableCloudWatchLogs: cfg.EnableCloudWatchLogs,
	})
	if err != nil {
		return fmt.Errorf("render runtime node user data: %w", err)
	}

	if err := o.fs.MkdirAll(o.outputDir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", o.outputDir, err)
	}
	for _, file := range []struct {
		name    string
		content *template.Content
	}{
		{name: adminUserDataFile, content: admin},
		{name: runtimeUserDataFile, content: runtime},
	} {
		path := filepath.Join(o.outputDir, file.name)
		// The admin user data holds the admin password.
		if err := afero.WriteFile(o.fs, path, file.content.Bytes(), 0600); err != nil {
			return fmt.Errorf("write file %s: %w", path, err)
		}
		log.Successf("Wrote %s.\n", color.HighlightResource(path))
	}
	if o.suffix == "" && cfg.ResourceNameSuffix == "" {
		log.Warningf("RESOURCE_NAME_SUFFIX is empty, resources are named with the random suffix %s. Set it to keep the names on the next run.\n",
			color.HighlightUserInput(namer.Suffix()))
		return nil
	}
	log.Infof("Resources are named with the suffix %s.\n", color.HighlightUserInput(namer.Suffix()))
	return nil
}

// suffixSource prefers --suffix over RESOURCE_NAME_SUFFIX and falls back to a random suffix.
func (o *userdataOpts) suffixSource(cfg config.Config) naming.SuffixSource {
	if o.suffix != "" {
		return naming.FixedSuffix(o.suffix)
	}
	if cfg.ResourceNameSuffix != "" {
		return naming.FixedSuffix(cfg.ResourceNameSuffix)
	}
	return o.randomSuffix
}

// BuildUserdataCmd builds the command for rendering the node user data.
func BuildUserdataCmd() *cobra.Command {
	vars := userdataVars{}
	cmd := &cobra.Command{
		Use:   "userdata",
		Short: "Render the user data of the admin and runtime nodes.",
		Long: `Render the user data of the admin and runtime nodes.
The files contain secrets and are only readable by the current user.`,
		Example: `
  Render the user data into the build directory.
  /code $ idsvr userdata --output-dir build
  Keep the resource names of an existing deployment.
  /code $ idsvr userdata -o build --suffix 4f1c2a9b7d3`,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			return run(newUserdataOpts(vars))
		}),
	}
	cmd.Flags().StringVarP(&vars.envFile, envFileFlag, envFileFlagShort, config.DefaultEnvFile, envFileFlagDescription)
	cmd.Flags().StringVarP(&vars.outputDir, outputDirFlag, outputDirFlagShort, "", outputDirFlagDescription)
	cmd.Flags().StringVar(&vars.stackName, stackNameFlag, defaultStackName, stackNameFlagDescription)
	cmd.Flags().StringVar(&vars.region, regionFlag, "", regionFlagDescription)
	cmd.Flags().StringVar(&vars.suffix, suffixFlag, "", suffixFlagDescription)
	_ = cmd.MarkFlagRequired(outputDirFlag)
	cmd.Annotations = map[string]string{
		"group": group.Release,
	}
	return cmd
}
