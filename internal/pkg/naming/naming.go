// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package naming generates the names of the resources created for a deployment.
package naming

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const (
	suffixLength = 11

	bucketPrefix     = "cluster-config-bucket"
	adminLogPrefix   = "admin-node-log"
	runtimeLogPrefix = "runtime-node-log"

	// S3 bucket names are at most 63 characters long.
	maxSuffixLength = 63 - len(bucketPrefix) - 1
)

var suffixRegexp = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

var (
	errSuffixTooLong   = fmt.Errorf("must be at most %d characters", maxSuffixLength)
	errSuffixBadFormat = errors.New("must contain only letters, digits and hyphens, and start and end with a letter or digit")
)

// ValidateSuffix returns an error if s would produce an invalid bucket name once lowercased.
func ValidateSuffix(s string) error {
	s = strings.ToLower(s)
	if len(s) > maxSuffixLength {
		return errSuffixTooLong
	}
	if !suffixRegexp.MatchString(s) {
		return errSuffixBadFormat
	}
	return nil
}

// SuffixSource returns the suffix appended to resource names.
type SuffixSource func() string

// RandomSuffix returns an 11 character lowercase alphanumeric suffix derived from a random UUID.
func RandomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLength]
}

// FixedSuffix returns a source that always returns s.
func FixedSuffix(s string) SuffixSource {
	return func() string {
		return s
	}
}

// Namer names the resources of a single deployment.
type Namer struct {
	suffix string
}

// New returns a Namer whose suffix is drawn once from the source.
func New(source SuffixSource) *Namer {
	return &Namer{
		suffix: strings.ToLower(source()),
	}
}

// Suffix returns the suffix shared by all names.
func (n *Namer) Suffix() string {
	return n.suffix
}

// ClusterConfigBucket returns the name of the S3 bucket holding the cluster configuration.
func (n *Namer) ClusterConfigBucket() string {
	return n.name(bucketPrefix)
}

// AdminLogGroup returns the name of the CloudWatch log group of the admin node.
func (n *Namer) AdminLogGroup() string {
	return n.name(adminLogPrefix)
}

// RuntimeLogGroup returns the name of the CloudWatch log group of the runtime nodes.
func (n *Namer) RuntimeLogGroup() string {
	return n.name(runtimeLogPrefix)
}

func (n *Namer) name(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, n.suffix)
}
