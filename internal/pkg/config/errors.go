// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/curityio/idsvr-aws/internal/pkg/term/color"
)

// ErrMissingKey is returned when a required key is empty.
type ErrMissingKey struct {
	key string
}

func (e *ErrMissingKey) Error() string {
	return fmt.Sprintf("%s is missing value, please provide a value in the .env file in the root of the project", e.key)
}

// Key returns the name of the missing key.
func (e *ErrMissingKey) Key() string {
	return e.key
}

// RecommendActions returns recommended actions to be taken after the error.
func (e *ErrMissingKey) RecommendActions() string {
	return fmt.Sprintf("Run %s to write the missing values, or export %s in your shell.",
		color.HighlightCode("idsvr init"), color.HighlightUserInput(e.key))
}

// ErrInvalidValue is returned when a key holds a value that cannot be used.
type ErrInvalidValue struct {
	key    string
	value  string
	reason string
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("%s has invalid value %q: %s", e.key, e.value, e.reason)
}
