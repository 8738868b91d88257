// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/curityio/idsvr-aws/internal/pkg/cli/mocks"
	"github.com/curityio/idsvr-aws/internal/pkg/config"
	"github.com/curityio/idsvr-aws/internal/pkg/naming"
	"github.com/curityio/idsvr-aws/internal/pkg/template"
	"github.com/curityio/idsvr-aws/internal/pkg/template/templatetest"
)

func TestUserdataOpts_Validate(t *testing.T) {
	testCases := map[string]struct {
		inVars userdataVars

		wantedErr string
	}{
		"empty output directory": {
			inVars:    userdataVars{stackName: defaultStackName},
			wantedErr: "--output-dir must not be empty",
		},
		"empty stack name": {
			inVars:    userdataVars{outputDir: "build"},
			wantedErr: "--stack-name must not be empty",
		},
		"suffix would produce an invalid bucket name": {
			inVars:    userdataVars{outputDir: "build", stackName: defaultStackName, suffix: "my_suffix"},
			wantedErr: `--suffix "my_suffix" must contain only letters, digits and hyphens, and start and end with a letter or digit`,
		},
		"valid": {
			inVars: userdataVars{outputDir: "build", stackName: defaultStackName, suffix: "Prod-1"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			opts := &userdataOpts{userdataVars: tc.inVars}

			err := opts.Validate()

			if tc.wantedErr != "" {
				require.EqualError(t, err, tc.wantedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUserdataOpts_Ask(t *testing.T) {
	testCases := map[string]struct {
		inRegion   string
		setupMocks func(loader *mocks.MockenvLoader, sess *mocks.MocksessionProvider)

		wantedRegion string
		wantedErr    string
	}{
		"reports configuration errors before resolving the region": {
			setupMocks: func(loader *mocks.MockenvLoader, sess *mocks.MocksessionProvider) {
				loader.EXPECT().Load(".env").Return(config.Config{}, errors.New("ADMIN_PASSWORD is missing value"))
				sess.EXPECT().Default().Times(0)
			},
			wantedErr: "ADMIN_PASSWORD is missing value",
		},
		"keeps the region flag": {
			inRegion: "eu-north-1",
			setupMocks: func(loader *mocks.MockenvLoader, sess *mocks.MocksessionProvider) {
				loader.EXPECT().Load(".env").Return(config.Config{}, nil)
				sess.EXPECT().Default().Times(0)
			},
			wantedRegion: "eu-north-1",
		},
		"uses the region of the default profile": {
			setupMocks: func(loader *mocks.MockenvLoader, sess *mocks.MocksessionProvider) {
				loader.EXPECT().Load(".env").Return(config.Config{}, nil)
				sess.EXPECT().Default().Return(&session.Session{
					Config: &aws.Config{Region: aws.String("eu-west-1")},
				}, nil)
			},
			wantedRegion: "eu-west-1",
		},
		"returns the session error": {
			setupMocks: func(loader *mocks.MockenvLoader, sess *mocks.MocksessionProvider) {
				loader.EXPECT().Load(".env").Return(config.Config{}, nil)
				sess.EXPECT().Default().Return(nil, errors.New("some error"))
			},
			wantedErr: "some error",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			loader := mocks.NewMockenvLoader(ctrl)
			sess := mocks.NewMocksessionProvider(ctrl)
			tc.setupMocks(loader, sess)
			opts := &userdataOpts{
				userdataVars: userdataVars{envFile: ".env", region: tc.inRegion},
				loader:       loader,
				sessProvider: sess,
			}

			// WHEN
			err := opts.Ask()

			// THEN
			if tc.wantedErr != "" {
				require.EqualError(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantedRegion, opts.region)
		})
	}
}

func TestUserdataOpts_Execute(t *testing.T) {
	configWithSuffix := func(t *testing.T, suffix string) config.Config {
		vars := completeVars()
		vars.ResourceNameSuffix = suffix
		cfg, err := config.Parse(vars)
		require.NoError(t, err)
		return cfg
	}
	testCases := map[string]struct {
		inSuffix     string
		configSuffix string

		wantedBucket string
	}{
		"suffix flag wins over the configuration": {
			inSuffix:     "FromFlag",
			configSuffix: "fromconfig",
			wantedBucket: "cluster-config-bucket-fromflag",
		},
		"suffix from the configuration": {
			configSuffix: "fromconfig",
			wantedBucket: "cluster-config-bucket-fromconfig",
		},
		"random suffix": {
			wantedBucket: "cluster-config-bucket-random",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			parser := mocks.NewMockuserDataParser(ctrl)
			parser.EXPECT().ParseAdminUserData(gomock.Any()).DoAndReturn(
				func(opts template.AdminUserDataOpts) (*template.Content, error) {
					require.Equal(t, tc.wantedBucket, opts.BucketName)
					require.Equal(t, "Password1", opts.AdminPassword)
					require.Equal(t, "eu-west-1", opts.Region)
					require.Equal(t, 30, opts.MetricsScrapeSeconds)
					require.True(t, opts.EnableCloudWatchLogs)
					return templatetest.Stub{}.ParseAdminUserData(opts)
				})
			parser.EXPECT().ParseRuntimeUserData(gomock.Any()).DoAndReturn(
				func(opts template.RuntimeUserDataOpts) (*template.Content, error) {
					require.Equal(t, tc.wantedBucket, opts.BucketName)
					require.Equal(t, "default", opts.ServiceRole)
					require.Equal(t, defaultStackName, opts.StackName)
					return templatetest.Stub{}.ParseRuntimeUserData(opts)
				})
			fs := afero.NewMemMapFs()
			opts := &userdataOpts{
				userdataVars: userdataVars{
					envFile:   ".env",
					outputDir: "build",
					stackName: defaultStackName,
					region:    "eu-west-1",
					suffix:    tc.inSuffix,
				},
				fs:           fs,
				parser:       parser,
				randomSuffix: naming.FixedSuffix("random"),
				cfg:          configWithSuffix(t, tc.configSuffix),
			}

			// WHEN
			err := opts.Execute()

			// THEN
			require.NoError(t, err)
			admin, err := afero.ReadFile(fs, "build/admin-userdata.yaml")
			require.NoError(t, err)
			require.Equal(t, "admin", string(admin))
			runtime, err := afero.ReadFile(fs, "build/runtime-userdata.yaml")
			require.NoError(t, err)
			require.Equal(t, "runtime", string(runtime))
		})
	}
}

func TestUserdataOpts_Execute_Templates(t *testing.T) {
	// GIVEN
	cfg, err := config.Parse(completeVars())
	require.NoError(t, err)
	fs := afero.NewMemMapFs()
	opts := &userdataOpts{
		userdataVars: userdataVars{
			envFile:   ".env",
			outputDir: "build",
			stackName: "my-stack",
			region:    "eu-west-1",
			suffix:    "abc",
		},
		fs:     fs,
		parser: template.New(),
		cfg:    cfg,
	}

	// WHEN
	err = opts.Execute()

	// THEN
	require.NoError(t, err)
	admin, err := afero.ReadFile(fs, "build/admin-userdata.yaml")
	require.NoError(t, err)
	require.Contains(t, string(admin), `CLUSTER_CONFIG_BUCKET="cluster-config-bucket-abc"`)
	runtime, err := afero.ReadFile(fs, "build/runtime-userdata.yaml")
	require.NoError(t, err)
	require.Contains(t, string(runtime), `STACK_NAME="my-stack"`)
}

func TestUserdataOpts_Execute_ParseError(t *testing.T) {
	// GIVEN
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	cfg, err := config.Parse(completeVars())
	require.NoError(t, err)
	parser := mocks.NewMockuserDataParser(ctrl)
	parser.EXPECT().ParseAdminUserData(gomock.Any()).Return(nil, errors.New("some error"))
	fs := afero.NewMemMapFs()
	opts := &userdataOpts{
		userdataVars: userdataVars{envFile: ".env", outputDir: "build", stackName: defaultStackName},
		fs:           fs,
		parser:       parser,
		randomSuffix: naming.FixedSuffix("random"),
		cfg:          cfg,
	}

	// WHEN
	err = opts.Execute()

	// THEN
	require.EqualError(t, err, "render admin node user data: some error")
	exists, err := afero.DirExists(fs, "build")
	require.NoError(t, err)
	require.False(t, exists)
}
