// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package acm

import "fmt"

// ErrCertificateNotIssued is returned when a certificate cannot be used by a load balancer listener yet.
type ErrCertificateNotIssued struct {
	arn    string
	status string
}

func (e *ErrCertificateNotIssued) Error() string {
	return fmt.Sprintf("certificate %s has status %s instead of ISSUED", e.arn, e.status)
}

// RecommendActions returns recommended actions to be taken after the error.
func (e *ErrCertificateNotIssued) RecommendActions() string {
	return "Complete the validation of the certificate in AWS Certificate Manager or import a valid certificate."
}
