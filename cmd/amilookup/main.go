// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package main is the entrypoint of the Lambda function backing the AMI lookup custom resource.
package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/curityio/idsvr-aws/internal/pkg/ami"
	"github.com/curityio/idsvr-aws/internal/pkg/aws/ec2"
	"github.com/curityio/idsvr-aws/internal/pkg/aws/sessions"
	"github.com/curityio/idsvr-aws/internal/pkg/customresource"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	timeout, err := customresource.TimeoutFromEnv(os.LookupEnv)
	if err != nil {
		log.Warnw("Ignoring invalid lookup timeout", "error", err, "default", timeout.String())
	}

	provider := sessions.NewProvider()
	newCatalog := func(region string) (ami.Catalog, error) {
		if region == "" {
			sess, err := provider.Default()
			if err != nil {
				return nil, err
			}
			return ec2.New(sess), nil
		}
		sess, err := provider.DefaultWithRegion(region)
		if err != nil {
			return nil, err
		}
		return ec2.New(sess), nil
	}
	lambda.Start(customresource.NewHandler(newCatalog, log, customresource.WithTimeout(timeout)).Handle)
}
