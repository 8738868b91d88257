// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"strings"

	"github.com/curityio/idsvr-aws/internal/pkg/term/color"
	"github.com/curityio/idsvr-aws/internal/pkg/topology"
)

var errRemoteFlagMissing = fmt.Errorf("--%s can only be used together with --%s", profileFlag, remoteFlag)

type errProfileNotFound struct {
	name     string
	profiles []string
}

func (e *errProfileNotFound) Error() string {
	return fmt.Sprintf("profile %s does not exist", e.name)
}

// RecommendActions returns recommended actions to be taken after the error.
func (e *errProfileNotFound) RecommendActions() string {
	if len(e.profiles) == 0 {
		return fmt.Sprintf("Run %s to create a named profile.", color.HighlightCode("aws configure --profile <name>"))
	}
	return fmt.Sprintf("Use one of the profiles in your AWS config file: %s.", strings.Join(e.profiles, ", "))
}

type errNoSubnets struct {
	vpcID      string
	subnetType topology.SubnetType
}

func (e *errNoSubnets) Error() string {
	return fmt.Sprintf("VPC %s has no %s subnets", e.vpcID, strings.ToLower(string(e.subnetType)))
}

// RecommendActions returns recommended actions to be taken after the error.
func (e *errNoSubnets) RecommendActions() string {
	return fmt.Sprintf("Change %s or add %s subnets to VPC %s.",
		color.HighlightUserInput("AWS_VPC_DEPLOYMENT_SUBNETS_TYPE"), strings.ToLower(string(e.subnetType)), e.vpcID)
}

type errMutuallyExclusiveFlags struct {
	flags []string
}

func (e *errMutuallyExclusiveFlags) Error() string {
	quoted := make([]string, len(e.flags))
	for i, f := range e.flags {
		quoted[i] = "--" + f
	}
	return fmt.Sprintf("cannot specify %s together", strings.Join(quoted, " and "))
}
