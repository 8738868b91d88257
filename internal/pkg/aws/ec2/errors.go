// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ec2

import (
	"fmt"

	"github.com/curityio/idsvr-aws/internal/pkg/term/color"
)

// ErrVPCNotFound is returned when a VPC ID does not exist in the region.
type ErrVPCNotFound struct {
	vpcID string
}

func (e *ErrVPCNotFound) Error() string {
	return fmt.Sprintf("VPC %s not found", e.vpcID)
}

// RecommendActions returns recommended actions to be taken after the error.
func (e *ErrVPCNotFound) RecommendActions() string {
	return fmt.Sprintf("Check that %s points to a VPC in the region you are deploying to.", color.HighlightCode("AWS_VPC_ID"))
}
