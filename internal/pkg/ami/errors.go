// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ami

import "fmt"

// ErrNoMatchingImage is returned when the catalog has no image for the search criteria.
type ErrNoMatchingImage struct {
	namePattern  string
	ownerID      string
	architecture string
}

func (e *ErrNoMatchingImage) Error() string {
	return fmt.Sprintf("no image named %q owned by %s for architecture %s", e.namePattern, e.ownerID, e.architecture)
}

// RecommendActions returns recommended actions to be taken after the error.
func (e *ErrNoMatchingImage) RecommendActions() string {
	return fmt.Sprintf(`Check that the account is subscribed to the product in the AWS Marketplace
and that images for architecture %s are published in the region.`, e.architecture)
}

// ErrMissingProperty is returned when a lookup request lacks a search criterion.
type ErrMissingProperty struct {
	name string
}

func (e *ErrMissingProperty) Error() string {
	return fmt.Sprintf("missing resource property %s", e.name)
}
