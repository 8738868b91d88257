// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateNonEmpty(t *testing.T) {
	testCases := map[string]struct {
		input interface{}
		want  error
	}{
		"not a string": {
			input: 42,
			want:  errValueNotAString,
		},
		"empty": {
			input: "",
			want:  errValueEmpty,
		},
		"valid": {
			input: "my-key",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, validateNonEmpty(tc.input))
		})
	}
}

func TestValidateNonNegativeInt(t *testing.T) {
	testCases := map[string]struct {
		input interface{}
		want  error
	}{
		"empty": {
			input: "",
			want:  errValueEmpty,
		},
		"not a number": {
			input: "two",
			want:  errValueNotANumber,
		},
		"negative": {
			input: "-1",
			want:  errValueNegative,
		},
		"zero": {
			input: "0",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, validateNonNegativeInt(tc.input))
		})
	}
}

func TestValidatePositiveInt(t *testing.T) {
	testCases := map[string]struct {
		input interface{}
		want  error
	}{
		"zero": {
			input: "0",
			want:  errValueNotPositive,
		},
		"decimal": {
			input: "1.5",
			want:  errValueNotANumber,
		},
		"valid": {
			input: "30",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, validatePositiveInt(tc.input))
		})
	}
}
