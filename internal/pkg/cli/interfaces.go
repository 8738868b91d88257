// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"

	"github.com/aws/aws-sdk-go/aws/session"

	"github.com/curityio/idsvr-aws/internal/pkg/ami"
	"github.com/curityio/idsvr-aws/internal/pkg/aws/ec2"
	"github.com/curityio/idsvr-aws/internal/pkg/config"
	"github.com/curityio/idsvr-aws/internal/pkg/template"
	"github.com/curityio/idsvr-aws/internal/pkg/term/prompt"
)

type cmd interface {
	// Validate returns an error if a flag's value is invalid.
	Validate() error

	// Ask prompts for flag values that are required but not passed in.
	Ask() error

	// Execute runs the command after collecting all required options.
	Execute() error
}

type prompter interface {
	Get(message, help string, validator prompt.ValidatorFunc, promptOpts ...prompt.Option) (string, error)
	GetSecret(message, help string) (string, error)
	SelectOne(message, help string, options []string, promptOpts ...prompt.Option) (string, error)
}

type envLoader interface {
	Load(path string) (config.Config, error)
	LoadVars(path string) (config.Vars, error)
}

type vpcDescriber interface {
	VPC(vpcID string) (*ec2.VPC, error)
	ListVPCSubnets(vpcID string) (*ec2.VPCSubnets, error)
}

type certValidator interface {
	ValidateIssued(certs []string) error
}

type imageResolver interface {
	Latest(ctx context.Context, req ami.Request) (ami.ImageDescriptor, error)
}

type userDataParser interface {
	ParseAdminUserData(opts template.AdminUserDataOpts) (*template.Content, error)
	ParseRuntimeUserData(opts template.RuntimeUserDataOpts) (*template.Content, error)
}

type profileReader interface {
	Names() []string
	Has(name string) bool
}

type sessionProvider interface {
	Default() (*session.Session, error)
	DefaultWithRegion(region string) (*session.Session, error)
	FromProfile(name string) (*session.Session, error)
}

type progress interface {
	Start(label string)
	Stop(label string)
}
