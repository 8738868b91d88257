// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package acm provides a client to make API requests to AWS Certificate Manager.
package acm

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/acm"
	"golang.org/x/sync/errgroup"
)

const (
	waitForDescribeCertsTimeout = 10 * time.Second
)

type api interface {
	DescribeCertificateWithContext(ctx aws.Context, input *acm.DescribeCertificateInput, opts ...request.Option) (*acm.DescribeCertificateOutput, error)
}

// ACM wraps an AWS Certificate Manager client.
type ACM struct {
	client api
}

// New returns an ACM struct configured against the input session.
func New(s *session.Session) *ACM {
	return &ACM{
		client: acm.New(s),
	}
}

// ValidateIssued returns an *ErrCertificateNotIssued if any of the certificates is not in the ISSUED state.
// Certificates are described concurrently and the first failure cancels the remaining requests.
func (a *ACM) ValidateIssued(certs []string) error {
	ctx, cancelWait := context.WithTimeout(context.Background(), waitForDescribeCertsTimeout)
	defer cancelWait()
	g, ctx := errgroup.WithContext(ctx)
	for i := range certs {
		cert := certs[i]
		g.Go(func() error {
			return a.validateIssued(ctx, cert)
		})
	}
	return g.Wait()
}

func (a *ACM) validateIssued(ctx context.Context, cert string) error {
	resp, err := a.client.DescribeCertificateWithContext(ctx, &acm.DescribeCertificateInput{
		CertificateArn: aws.String(cert),
	})
	if err != nil {
		return fmt.Errorf("describe certificate %s: %w", cert, err)
	}
	if status := aws.StringValue(resp.Certificate.Status); status != acm.CertificateStatusIssued {
		return &ErrCertificateNotIssued{arn: cert, status: status}
	}
	return nil
}
