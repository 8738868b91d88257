// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package naming

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomSuffix(t *testing.T) {
	suffix := RandomSuffix()

	require.Regexp(t, regexp.MustCompile(`^[0-9a-f]{11}$`), suffix)
	require.NotEqual(t, suffix, RandomSuffix())
}

func TestNamer(t *testing.T) {
	testCases := map[string]struct {
		source SuffixSource

		wantedBucket  string
		wantedAdmin   string
		wantedRuntime string
	}{
		"fixed suffix": {
			source:        FixedSuffix("abc123def45"),
			wantedBucket:  "cluster-config-bucket-abc123def45",
			wantedAdmin:   "admin-node-log-abc123def45",
			wantedRuntime: "runtime-node-log-abc123def45",
		},
		"suffix is lowercased": {
			source:        FixedSuffix("Prod"),
			wantedBucket:  "cluster-config-bucket-prod",
			wantedAdmin:   "admin-node-log-prod",
			wantedRuntime: "runtime-node-log-prod",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			n := New(tc.source)

			require.Equal(t, tc.wantedBucket, n.ClusterConfigBucket())
			require.Equal(t, tc.wantedAdmin, n.AdminLogGroup())
			require.Equal(t, tc.wantedRuntime, n.RuntimeLogGroup())
		})
	}
}

func TestNamer_DrawsSuffixOnce(t *testing.T) {
	calls := 0
	n := New(func() string {
		calls++
		return RandomSuffix()
	})

	require.Equal(t, n.ClusterConfigBucket()[len("cluster-config-bucket-"):], n.Suffix())
	require.Equal(t, n.AdminLogGroup()[len("admin-node-log-"):], n.Suffix())
	require.Equal(t, 1, calls)
}

func TestValidateSuffix(t *testing.T) {
	testCases := map[string]struct {
		in        string
		wantedErr error
	}{
		"random suffix": {
			in: RandomSuffix(),
		},
		"mixed case is lowercased first": {
			in: "Prod-EU1",
		},
		"underscore": {
			in:        "my_suffix",
			wantedErr: errSuffixBadFormat,
		},
		"dot": {
			in:        "prod.eu",
			wantedErr: errSuffixBadFormat,
		},
		"trailing hyphen": {
			in:        "prod-",
			wantedErr: errSuffixBadFormat,
		},
		"empty": {
			in:        "",
			wantedErr: errSuffixBadFormat,
		},
		"longest valid suffix": {
			in: strings.Repeat("a", 41),
		},
		"bucket name would exceed 63 characters": {
			in:        strings.Repeat("a", 42),
			wantedErr: errSuffixTooLong,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := ValidateSuffix(tc.in)

			if tc.wantedErr != nil {
				require.ErrorIs(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
			require.LessOrEqual(t, len(New(FixedSuffix(tc.in)).ClusterConfigBucket()), 63)
		})
	}
}
