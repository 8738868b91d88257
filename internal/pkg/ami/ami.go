// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package ami resolves the most recent machine image of the identity server.
package ami

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/curityio/idsvr-aws/internal/pkg/aws/ec2"
)

// Product image defaults, as published in the AWS Marketplace.
const (
	DefaultNamePattern  = "Curity-*"
	DefaultOwnerID      = "536652696790"
	DefaultArchitecture = "x86_64"

	rootDeviceTypeEBS = "ebs"
)

// Kind is the lifecycle stage of the resource that triggered a lookup.
type Kind string

// Lifecycle stages of a custom resource.
const (
	KindCreate Kind = "Create"
	KindUpdate Kind = "Update"
	KindDelete Kind = "Delete"
)

// Catalog lists the images visible to the account.
type Catalog interface {
	Images(ctx context.Context, owners []string, filters ...ec2.Filter) ([]ec2.Image, error)
}

// ImageDescriptor is an image returned by the catalog.
type ImageDescriptor struct {
	ID string
	// CreationTime is zero if the catalog returned a date that could not be parsed.
	CreationTime time.Time
	Name         string
	Architecture string
	OwnerID      string
}

// Request is a lookup for the latest image matching the pattern.
type Request struct {
	NamePattern  string
	Architecture string
	OwnerID      string
	Region       string
	Kind         Kind
}

// Validate returns an *ErrMissingProperty for the first empty search criterion.
func (r Request) Validate() error {
	for _, prop := range []struct {
		name  string
		value string
	}{
		{name: "Name", value: r.NamePattern},
		{name: "Owner", value: r.OwnerID},
		{name: "Architecture", value: r.Architecture},
	} {
		if prop.value == "" {
			return &ErrMissingProperty{name: prop.name}
		}
	}
	return nil
}

// Result is the outcome of a lookup. At most one of AMIID and Error is set.
type Result struct {
	AMIID string
	Error string
}

// Data returns the attributes exposed to the template that owns the custom resource.
// A nil map is returned when the lookup had nothing to report.
func (r Result) Data() map[string]interface{} {
	switch {
	case r.Error != "":
		return map[string]interface{}{"Error": r.Error}
	case r.AMIID != "":
		return map[string]interface{}{"amiId": r.AMIID}
	}
	return nil
}

// Resolver picks the most recent image out of a catalog.
type Resolver struct {
	catalog Catalog
}

// NewResolver returns a Resolver that queries the catalog.
func NewResolver(catalog Catalog) *Resolver {
	return &Resolver{
		catalog: catalog,
	}
}

// Resolve looks up the latest image for a Create or Update request.
// Delete requests succeed without contacting the catalog.
// Lookup failures are reported in Result.Error rather than returned.
func (r *Resolver) Resolve(ctx context.Context, req Request) Result {
	if req.Kind == KindDelete {
		return Result{}
	}
	img, err := r.Latest(ctx, req)
	if err != nil {
		return Result{Error: err.Error()}
	}
	return Result{AMIID: img.ID}
}

// Latest returns the most recently created image matching the request.
// Images created at the same instant are ordered by ID, and images without a valid creation date come last.
func (r *Resolver) Latest(ctx context.Context, req Request) (ImageDescriptor, error) {
	if err := req.Validate(); err != nil {
		return ImageDescriptor{}, err
	}
	images, err := r.catalog.Images(ctx, []string{req.OwnerID},
		ec2.Filter{
			Name:   ec2.ImageNameFilter,
			Values: []string{req.NamePattern},
		},
		ec2.Filter{
			Name:   ec2.ImageArchitectureFilter,
			Values: []string{req.Architecture},
		},
		ec2.Filter{
			Name:   ec2.ImageRootDeviceTypeFilter,
			Values: []string{rootDeviceTypeEBS},
		},
	)
	if err != nil {
		return ImageDescriptor{}, fmt.Errorf("list images matching %s: %w", req.NamePattern, err)
	}
	if len(images) == 0 {
		return ImageDescriptor{}, &ErrNoMatchingImage{
			namePattern:  req.NamePattern,
			ownerID:      req.OwnerID,
			architecture: req.Architecture,
		}
	}
	descriptors := make([]ImageDescriptor, len(images))
	for i, img := range images {
		descriptors[i] = newImageDescriptor(img)
	}
	sort.Slice(descriptors, func(i, j int) bool {
		return newer(descriptors[i], descriptors[j])
	})
	return descriptors[0], nil
}

func newImageDescriptor(img ec2.Image) ImageDescriptor {
	// Unparsable dates leave the zero time.
	created, _ := time.Parse(time.RFC3339, img.CreationDate)
	return ImageDescriptor{
		ID:           img.ID,
		CreationTime: created,
		Name:         img.Name,
		Architecture: img.Architecture,
		OwnerID:      img.OwnerID,
	}
}

// newer reports whether a sorts before b.
func newer(a, b ImageDescriptor) bool {
	if a.CreationTime.IsZero() != b.CreationTime.IsZero() {
		return b.CreationTime.IsZero()
	}
	if !a.CreationTime.Equal(b.CreationTime) {
		return a.CreationTime.After(b.CreationTime)
	}
	return a.ID < b.ID
}
