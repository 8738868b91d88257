// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package customresource implements the Lambda handler backing the AMI lookup custom resource.
package customresource

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"

	"github.com/curityio/idsvr-aws/internal/pkg/ami"
)

// DefaultTimeout bounds a single lookup.
const DefaultTimeout = 60 * time.Second

// TimeoutEnvVar overrides DefaultTimeout with a Go duration such as "30s".
const TimeoutEnvVar = "AMI_LOOKUP_TIMEOUT"

// TimeoutFromEnv returns the lookup timeout set in TimeoutEnvVar.
// Unset values yield DefaultTimeout. Invalid or non-positive values yield DefaultTimeout and an error.
func TimeoutFromEnv(lookupEnv func(string) (string, bool)) (time.Duration, error) {
	v, ok := lookupEnv(TimeoutEnvVar)
	if !ok {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return DefaultTimeout, fmt.Errorf("parse %s value %q: %w", TimeoutEnvVar, v, err)
	}
	if d <= 0 {
		return DefaultTimeout, fmt.Errorf("%s value %q must be positive", TimeoutEnvVar, v)
	}
	return d, nil
}

// Resource properties set on the custom resource by the template.
const (
	nameProperty         = "Name"
	architectureProperty = "Architecture"
	ownerProperty        = "Owner"
	regionProperty       = "Region"
)

// CatalogFactory returns a catalog for the region.
// An empty region means the region of the running function.
type CatalogFactory func(region string) (ami.Catalog, error)

// Response is the event echoed back to CloudFormation with the lookup outcome.
type Response struct {
	cfn.Event
	PhysicalResourceID string                 `json:"PhysicalResourceId,omitempty"`
	Data               map[string]interface{} `json:"Data,omitempty"`
}

// Handler resolves the latest AMI for custom resource events.
type Handler struct {
	newCatalog    CatalogFactory
	timeout       time.Duration
	logStreamName string
	log           *zap.SugaredLogger
}

// Option configures a Handler.
type Option func(h *Handler)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.timeout = d
	}
}

// WithLogStreamName overrides the log stream name of the running function.
func WithLogStreamName(name string) Option {
	return func(h *Handler) {
		h.logStreamName = name
	}
}

// NewHandler returns a Handler that builds a catalog per invocation.
func NewHandler(newCatalog CatalogFactory, log *zap.SugaredLogger, opts ...Option) *Handler {
	h := &Handler{
		newCatalog:    newCatalog,
		timeout:       DefaultTimeout,
		logStreamName: lambdacontext.LogStreamName,
		log:           log,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle processes a single event. It never returns an error so that the framework always receives a response.
func (h *Handler) Handle(ctx context.Context, event cfn.Event) (Response, error) {
	log := h.log.With("requestType", event.RequestType, "logicalResourceId", event.LogicalResourceID)
	log.Infow("Received event", "event", event)

	if event.RequestType == cfn.RequestDelete {
		resp := Response{
			Event:              event,
			PhysicalResourceID: event.PhysicalResourceID,
		}
		log.Infow("Sending response", "response", resp)
		return resp, nil
	}

	req := ami.Request{
		NamePattern:  stringProperty(event.ResourceProperties, nameProperty),
		Architecture: stringProperty(event.ResourceProperties, architectureProperty),
		OwnerID:      stringProperty(event.ResourceProperties, ownerProperty),
		Region:       stringProperty(event.ResourceProperties, regionProperty),
		Kind:         ami.Kind(event.RequestType),
	}
	resp := Response{
		Event:              event,
		PhysicalResourceID: h.logStreamName,
		Data:               h.resolve(ctx, log, req).Data(),
	}
	log.Infow("Sending response", "response", resp)
	return resp, nil
}

func (h *Handler) resolve(ctx context.Context, log *zap.SugaredLogger, req ami.Request) ami.Result {
	if err := req.Validate(); err != nil {
		log.Errorw("Invalid resource properties", zap.Error(err))
		return ami.Result{Error: err.Error()}
	}
	catalog, err := h.newCatalog(req.Region)
	if err != nil {
		log.Errorw("Failed to create image catalog", "region", req.Region, zap.Error(err))
		return ami.Result{Error: fmt.Sprintf("create image catalog for region %s: %v", req.Region, err)}
	}
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	res := ami.NewResolver(catalog).Resolve(ctx, req)
	if res.Error != "" {
		log.Errorw("Failed to resolve image", "error", res.Error)
	} else {
		log.Infow("Resolved image", "amiId", res.AMIID)
	}
	return res
}

func stringProperty(props map[string]interface{}, key string) string {
	v, ok := props[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
