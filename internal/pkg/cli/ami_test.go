// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/curityio/idsvr-aws/internal/pkg/ami"
	"github.com/curityio/idsvr-aws/internal/pkg/cli/mocks"
)

func TestAMIOpts_Validate(t *testing.T) {
	testCases := map[string]struct {
		inVars amiVars

		wantedErr string
	}{
		"empty name": {
			inVars: amiVars{
				ownerID:      ami.DefaultOwnerID,
				architecture: ami.DefaultArchitecture,
			},
			wantedErr: "missing resource property Name",
		},
		"empty architecture": {
			inVars: amiVars{
				namePattern: ami.DefaultNamePattern,
				ownerID:     ami.DefaultOwnerID,
			},
			wantedErr: "missing resource property Architecture",
		},
		"defaults": {
			inVars: amiVars{
				namePattern:  ami.DefaultNamePattern,
				ownerID:      ami.DefaultOwnerID,
				architecture: ami.DefaultArchitecture,
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			opts := &amiOpts{amiVars: tc.inVars}

			err := opts.Validate()

			if tc.wantedErr != "" {
				require.EqualError(t, err, tc.wantedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

type amiMocks struct {
	sess     *mocks.MocksessionProvider
	resolver *mocks.MockimageResolver
	prog     *mocks.Mockprogress
}

func TestAMIOpts_Execute(t *testing.T) {
	now := time.Date(2022, 8, 10, 12, 0, 0, 0, time.UTC)
	wantedReq := ami.Request{
		NamePattern:  ami.DefaultNamePattern,
		OwnerID:      ami.DefaultOwnerID,
		Architecture: ami.DefaultArchitecture,
		Region:       "eu-west-1",
	}
	testCases := map[string]struct {
		inRegion   string
		setupMocks func(m amiMocks)

		wantedErr     string
		wantedContent string
	}{
		"returns the session error": {
			setupMocks: func(m amiMocks) {
				m.sess.EXPECT().Default().Return(nil, errors.New("some error"))
			},
			wantedErr: "some error",
		},
		"stops the spinner when the lookup fails": {
			inRegion: "eu-west-1",
			setupMocks: func(m amiMocks) {
				m.sess.EXPECT().DefaultWithRegion("eu-west-1").Return(&session.Session{}, nil)
				m.prog.EXPECT().Start(gomock.Any())
				m.resolver.EXPECT().Latest(gomock.Any(), wantedReq).Return(ami.ImageDescriptor{}, errors.New("some error"))
				m.prog.EXPECT().Stop(gomock.Any())
			},
			wantedErr: "some error",
		},
		"writes the newest image": {
			inRegion: "eu-west-1",
			setupMocks: func(m amiMocks) {
				m.sess.EXPECT().DefaultWithRegion("eu-west-1").Return(&session.Session{}, nil)
				m.prog.EXPECT().Start(gomock.Any())
				m.resolver.EXPECT().Latest(gomock.Any(), wantedReq).Return(ami.ImageDescriptor{
					ID:           "ami-2",
					Name:         "Curity-7.3.1",
					CreationTime: now.Add(-3 * 24 * time.Hour),
				}, nil)
				m.prog.EXPECT().Stop(gomock.Any())
			},
			wantedContent: "ami-2\tCurity-7.3.1\tcreated 3 days ago\n",
		},
		"writes unknown when the creation date could not be parsed": {
			inRegion: "eu-west-1",
			setupMocks: func(m amiMocks) {
				m.sess.EXPECT().DefaultWithRegion("eu-west-1").Return(&session.Session{}, nil)
				m.prog.EXPECT().Start(gomock.Any())
				m.resolver.EXPECT().Latest(gomock.Any(), wantedReq).Return(ami.ImageDescriptor{
					ID:   "ami-2",
					Name: "Curity-7.3.1",
				}, nil)
				m.prog.EXPECT().Stop(gomock.Any())
			},
			wantedContent: "ami-2\tCurity-7.3.1\tcreated unknown\n",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := amiMocks{
				sess:     mocks.NewMocksessionProvider(ctrl),
				resolver: mocks.NewMockimageResolver(ctrl),
				prog:     mocks.NewMockprogress(ctrl),
			}
			tc.setupMocks(m)
			b := &bytes.Buffer{}
			opts := &amiOpts{
				amiVars: amiVars{
					namePattern:  ami.DefaultNamePattern,
					ownerID:      ami.DefaultOwnerID,
					architecture: ami.DefaultArchitecture,
					region:       tc.inRegion,
				},
				sessProvider: m.sess,
				newResolver: func(sess *session.Session) imageResolver {
					return m.resolver
				},
				prog: m.prog,
				now: func() time.Time {
					return now
				},
				w: b,
			}

			// WHEN
			err := opts.Execute()

			// THEN
			if tc.wantedErr != "" {
				require.EqualError(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantedContent, b.String())
		})
	}
}
