// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/curityio/idsvr-aws/internal/pkg/cli/mocks"
	"github.com/curityio/idsvr-aws/internal/pkg/config"
)

func completeVars() config.Vars {
	return config.Vars{
		AdminPassword:                  "Password1",
		AdminServiceRole:               "admin",
		AdminInstanceType:              "t3.small",
		RuntimeServiceRole:             "default",
		RuntimeInstanceType:            "t3.small",
		RuntimeMinNodeCount:            "2",
		RuntimeMaxNodeCount:            "4",
		RuntimeMinRequestsPerNode:      "300",
		RuntimeMaxRequestsPerNode:      "600",
		VPCDeploymentSubnetsType:       "PUBLIC",
		EC2KeyPairName:                 "my-key",
		EnableCloudWatchLogs:           "true",
		MetricsScrapeIntervalInSeconds: "30",
	}
}

type initMocks struct {
	loader *mocks.MockenvLoader
	prompt *mocks.Mockprompter
}

func TestInitOpts_Validate(t *testing.T) {
	testCases := map[string]struct {
		inEnvFile string

		wantedErr string
	}{
		"empty env file": {
			wantedErr: "--env-file must not be empty",
		},
		"valid env file": {
			inEnvFile: ".env",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			opts := &initOpts{
				initVars: initVars{envFile: tc.inEnvFile},
			}

			err := opts.Validate()

			if tc.wantedErr != "" {
				require.EqualError(t, err, tc.wantedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestInitOpts_Ask(t *testing.T) {
	testCases := map[string]struct {
		setupMocks func(m initMocks)

		wantedVars config.Vars
		wantedErr  string
	}{
		"returns the error from loading the env file": {
			setupMocks: func(m initMocks) {
				m.loader.EXPECT().LoadVars(".env").Return(config.Vars{}, errors.New("some error"))
			},
			wantedErr: "some error",
		},
		"does not prompt when every required key has a value": {
			setupMocks: func(m initMocks) {
				m.loader.EXPECT().LoadVars(".env").Return(completeVars(), nil)
				m.prompt.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				m.prompt.EXPECT().GetSecret(gomock.Any(), gomock.Any()).Times(0)
				m.prompt.EXPECT().SelectOne(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantedVars: completeVars(),
		},
		"prompts for the password as a secret": {
			setupMocks: func(m initMocks) {
				vars := completeVars()
				vars.AdminPassword = ""
				m.loader.EXPECT().LoadVars(".env").Return(vars, nil)
				m.prompt.EXPECT().GetSecret(initPasswordPrompt, initPasswordHelpPrompt).Return("Password1", nil)
			},
			wantedVars: completeVars(),
		},
		"selects the subnets type": {
			setupMocks: func(m initMocks) {
				vars := completeVars()
				vars.VPCDeploymentSubnetsType = ""
				m.loader.EXPECT().LoadVars(".env").Return(vars, nil)
				m.prompt.EXPECT().SelectOne(initSubnetsTypePrompt, initSubnetsTypeHelpPrompt, []string{"PUBLIC", "PRIVATE"}).
					Return("PUBLIC", nil)
			},
			wantedVars: completeVars(),
		},
		"prompts for a key without a default value": {
			setupMocks: func(m initMocks) {
				vars := completeVars()
				vars.EC2KeyPairName = ""
				m.loader.EXPECT().LoadVars(".env").Return(vars, nil)
				m.prompt.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return("my-key", nil)
			},
			wantedVars: completeVars(),
		},
		"prompts for a key with a default value": {
			setupMocks: func(m initMocks) {
				vars := completeVars()
				vars.RuntimeMaxNodeCount = ""
				m.loader.EXPECT().LoadVars(".env").Return(vars, nil)
				m.prompt.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("4", nil)
			},
			wantedVars: completeVars(),
		},
		"wraps the prompt error": {
			setupMocks: func(m initMocks) {
				vars := completeVars()
				vars.AdminPassword = ""
				m.loader.EXPECT().LoadVars(".env").Return(vars, nil)
				m.prompt.EXPECT().GetSecret(gomock.Any(), gomock.Any()).Return("", errors.New("some error"))
			},
			wantedErr: "prompt for ADMIN_PASSWORD: some error",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := initMocks{
				loader: mocks.NewMockenvLoader(ctrl),
				prompt: mocks.NewMockprompter(ctrl),
			}
			tc.setupMocks(m)
			opts := &initOpts{
				initVars: initVars{envFile: ".env"},
				loader:   m.loader,
				prompt:   m.prompt,
			}

			// WHEN
			err := opts.Ask()

			// THEN
			if tc.wantedErr != "" {
				require.EqualError(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantedVars, opts.vars)
		})
	}
}

func TestInitOpts_Execute(t *testing.T) {
	t.Run("writes the env file", func(t *testing.T) {
		// GIVEN
		fs := afero.NewMemMapFs()
		opts := &initOpts{
			initVars: initVars{envFile: ".env"},
			fs:       fs,
			vars:     completeVars(),
		}

		// WHEN
		err := opts.Execute()

		// THEN
		require.NoError(t, err)
		content, err := afero.ReadFile(fs, ".env")
		require.NoError(t, err)
		require.Contains(t, string(content), `AWS_EC2_KEY_PAIR_NAME="my-key"`)
		require.Contains(t, string(content), `RUNTIME_MAX_NODE_COUNT="4"`)
	})

	t.Run("does not write invalid values", func(t *testing.T) {
		// GIVEN
		fs := afero.NewMemMapFs()
		vars := completeVars()
		vars.VPCDeploymentSubnetsType = "SOMETIMES"
		opts := &initOpts{
			initVars: initVars{envFile: ".env"},
			fs:       fs,
			vars:     vars,
		}

		// WHEN
		err := opts.Execute()

		// THEN
		require.Error(t, err)
		exists, err := afero.Exists(fs, ".env")
		require.NoError(t, err)
		require.False(t, exists)
	})
}
