// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sessions

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/stretchr/testify/require"
)

// mockProvider implements the AWS SDK's credentials.Provider interface.
type mockProvider struct {
	value credentials.Value
	err   error
}

func (m mockProvider) Retrieve() (credentials.Value, error) {
	if m.err != nil {
		return credentials.Value{}, m.err
	}
	return m.value, nil
}

func (m mockProvider) IsExpired() bool {
	return false
}

func TestCreds(t *testing.T) {
	testCases := map[string]struct {
		inSess *session.Session

		wantedProvider string
		wantedErr      string
		wantedRecErr   bool
	}{
		"returns the credential values": {
			inSess: &session.Session{
				Config: &aws.Config{
					Credentials: credentials.NewCredentials(mockProvider{
						value: credentials.Value{
							ProviderName: session.EnvProviderName,
						},
					}),
				},
			},
			wantedProvider: session.EnvProviderName,
		},
		"wraps missing providers into a recommendation error": {
			inSess: &session.Session{
				Config: &aws.Config{
					Credentials: credentials.NewCredentials(mockProvider{
						err: errors.New("NoCredentialProviders: no valid providers in chain"),
					}),
				},
			},
			wantedErr:    "NoCredentialProviders: no valid providers in chain",
			wantedRecErr: true,
		},
		"returns a wrapped error otherwise": {
			inSess: &session.Session{
				Config: &aws.Config{
					Credentials: credentials.NewCredentials(mockProvider{
						err: errors.New("some error"),
					}),
				},
			},
			wantedErr: "get credentials of session: some error",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// WHEN
			v, err := Creds(tc.inSess)

			// THEN
			if tc.wantedErr != "" {
				require.EqualError(t, err, tc.wantedErr)
				var recErr *errCredRetrieval
				require.Equal(t, tc.wantedRecErr, errors.As(err, &recErr))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantedProvider, v.ProviderName)
		})
	}
}
