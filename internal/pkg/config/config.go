// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads and validates the deployment configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/imdario/mergo"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/curityio/idsvr-aws/internal/pkg/naming"
	"github.com/curityio/idsvr-aws/internal/pkg/topology"
)

// DefaultEnvFile is the configuration file read from the working directory.
const DefaultEnvFile = ".env"

// Config is the validated deployment configuration.
type Config struct {
	AdminPassword       string
	AdminServiceRole    string
	AdminInstanceType   string
	RuntimeServiceRole  string
	RuntimeInstanceType string

	RuntimeMinNodeCount       int
	RuntimeMaxNodeCount       int
	RuntimeMinRequestsPerNode int
	RuntimeMaxRequestsPerNode int

	SubnetsType                  topology.SubnetType
	EC2KeyPairName               string
	EnableCloudWatchLogs         bool
	MetricsScrapeIntervalSeconds int

	VPCID                string
	LoadBalancerCIDR     string
	TrustedCIDR          string
	CloudWatchNamespace  string
	EFSDNS               string
	ConfigEncryptionKey  string
	CertificateARN       string
	ACMSelfSignedCertARN string
	ResourceNameSuffix   string

	// Vars are the raw values the configuration was parsed from.
	Vars Vars
}

// Loader reads the configuration from a dotenv file and the process environment.
type Loader struct {
	fs        afero.Fs
	lookupEnv func(string) (string, bool)
}

// NewLoader returns a Loader reading from the OS file system and process environment.
func NewLoader() *Loader {
	return &Loader{
		fs:        afero.NewOsFs(),
		lookupEnv: os.LookupEnv,
	}
}

// Load returns the configuration at path overlaid by the process environment.
// A missing file is not an error as long as the environment provides every required key.
func (l *Loader) Load(path string) (Config, error) {
	vars, err := l.LoadVars(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(vars)
}

// LoadVars returns the raw, trimmed values without validating them.
func (l *Loader) LoadVars(path string) (Vars, error) {
	fileVars, err := l.readFile(path)
	if err != nil {
		return Vars{}, err
	}
	vars := varsFromLookup(l.lookupEnv)
	if err := mergo.Merge(&vars, fileVars); err != nil {
		return Vars{}, fmt.Errorf("merge %s with the environment: %w", path, err)
	}
	vars.trim()
	return vars, nil
}

func (l *Loader) readFile(path string) (Vars, error) {
	content, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Vars{}, nil
		}
		return Vars{}, fmt.Errorf("read env file %s: %w", path, err)
	}
	m, err := godotenv.Parse(bytes.NewReader(content))
	if err != nil {
		return Vars{}, fmt.Errorf("parse env file %s: %w", path, err)
	}
	return varsFromMap(m), nil
}

// Write saves the non-empty values to a dotenv file at path.
func Write(fs afero.Fs, path string, vars Vars) error {
	if err := afero.WriteFile(fs, path, []byte(vars.MarshalEnv()), 0600); err != nil {
		return fmt.Errorf("write env file %s: %w", path, err)
	}
	return nil
}

// Parse validates the raw values. Required keys are checked in declaration order before any value is parsed.
func Parse(vars Vars) (Config, error) {
	if err := vars.checkRequired(); err != nil {
		return Config{}, err
	}
	p := &parser{}
	cfg := Config{
		AdminPassword:       vars.AdminPassword,
		AdminServiceRole:    vars.AdminServiceRole,
		AdminInstanceType:   vars.AdminInstanceType,
		RuntimeServiceRole:  vars.RuntimeServiceRole,
		RuntimeInstanceType: vars.RuntimeInstanceType,

		RuntimeMinNodeCount:       p.nonNegativeInt("RUNTIME_MIN_NODE_COUNT", vars.RuntimeMinNodeCount),
		RuntimeMaxNodeCount:       p.nonNegativeInt("RUNTIME_MAX_NODE_COUNT", vars.RuntimeMaxNodeCount),
		RuntimeMinRequestsPerNode: p.nonNegativeInt("RUNTIME_MIN_REQUESTS_PER_NODE", vars.RuntimeMinRequestsPerNode),
		RuntimeMaxRequestsPerNode: p.nonNegativeInt("RUNTIME_MAX_REQUESTS_PER_NODE", vars.RuntimeMaxRequestsPerNode),

		SubnetsType:                  p.subnetType("AWS_VPC_DEPLOYMENT_SUBNETS_TYPE", vars.VPCDeploymentSubnetsType),
		EC2KeyPairName:               vars.EC2KeyPairName,
		EnableCloudWatchLogs:         p.boolean("ENABLE_CLOUDWATCH_LOGS", vars.EnableCloudWatchLogs),
		MetricsScrapeIntervalSeconds: p.positiveInt("METRICS_SCRAPE_INTERVAL_IN_SECONDS", vars.MetricsScrapeIntervalInSeconds),

		VPCID:                vars.VPCID,
		LoadBalancerCIDR:     p.cidr("LOADBALANCER_IP_RANGE_CIDR", vars.LoadBalancerIPRangeCIDR),
		TrustedCIDR:          p.cidr("TRUSTED_IP_RANGE_CIDR", vars.TrustedIPRangeCIDR),
		CloudWatchNamespace:  vars.CloudWatchNamespace,
		EFSDNS:               vars.EFSDNS,
		ConfigEncryptionKey:  vars.ConfigEncryptionKey,
		CertificateARN:       vars.CertificateARN,
		ACMSelfSignedCertARN: vars.ACMSelfSignedCertARN,
		ResourceNameSuffix:   p.suffix("RESOURCE_NAME_SUFFIX", vars.ResourceNameSuffix),

		Vars: vars,
	}
	if p.err != nil {
		return Config{}, p.err
	}
	if cfg.RuntimeMinNodeCount > cfg.RuntimeMaxNodeCount {
		return Config{}, &ErrInvalidValue{
			key:    "RUNTIME_MIN_NODE_COUNT",
			value:  vars.RuntimeMinNodeCount,
			reason: fmt.Sprintf("must not exceed RUNTIME_MAX_NODE_COUNT (%d)", cfg.RuntimeMaxNodeCount),
		}
	}
	if cfg.RuntimeMinRequestsPerNode > cfg.RuntimeMaxRequestsPerNode {
		return Config{}, &ErrInvalidValue{
			key:    "RUNTIME_MIN_REQUESTS_PER_NODE",
			value:  vars.RuntimeMinRequestsPerNode,
			reason: fmt.Sprintf("must not exceed RUNTIME_MAX_REQUESTS_PER_NODE (%d)", cfg.RuntimeMaxRequestsPerNode),
		}
	}
	return cfg, nil
}

// TopologyOptions returns the inputs of the topology derivation.
func (c Config) TopologyOptions() topology.Options {
	return topology.Options{
		CertificateARN:     c.CertificateARN,
		TrustedCIDR:        c.TrustedCIDR,
		LoadBalancerCIDR:   c.LoadBalancerCIDR,
		SubnetType:         c.SubnetsType,
		MinNodes:           c.RuntimeMinNodeCount,
		MaxNodes:           c.RuntimeMaxNodeCount,
		MinRequestsPerNode: c.RuntimeMinRequestsPerNode,
		MaxRequestsPerNode: c.RuntimeMaxRequestsPerNode,
	}
}

// Certificates returns the ACM certificate ARNs referenced by the configuration.
func (c Config) Certificates() []string {
	var certs []string
	for _, arn := range []string{c.CertificateARN, c.ACMSelfSignedCertARN} {
		if arn != "" {
			certs = append(certs, arn)
		}
	}
	return certs
}

// parser records the first invalid value.
type parser struct {
	err error
}

func (p *parser) fail(key, value, reason string) {
	if p.err == nil {
		p.err = &ErrInvalidValue{key: key, value: value, reason: reason}
	}
}

func (p *parser) nonNegativeInt(key, value string) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		p.fail(key, value, "must be a non-negative integer")
		return 0
	}
	return n
}

func (p *parser) positiveInt(key, value string) int {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		p.fail(key, value, "must be a positive integer")
		return 0
	}
	return n
}

func (p *parser) boolean(key, value string) bool {
	b, err := strconv.ParseBool(value)
	if err != nil {
		p.fail(key, value, "must be true or false")
		return false
	}
	return b
}

func (p *parser) subnetType(key, value string) topology.SubnetType {
	switch t := topology.SubnetType(value); t {
	case topology.SubnetTypePublic, topology.SubnetTypePrivate:
		return t
	}
	p.fail(key, value, fmt.Sprintf("must be %s or %s", topology.SubnetTypePublic, topology.SubnetTypePrivate))
	return ""
}

func (p *parser) cidr(key, value string) string {
	if value == "" {
		return ""
	}
	ip, _, err := net.ParseCIDR(value)
	if err != nil || ip.To4() == nil {
		p.fail(key, value, "must be an IPv4 CIDR block such as 10.0.0.0/16")
		return ""
	}
	return value
}

func (p *parser) suffix(key, value string) string {
	if value == "" {
		return ""
	}
	if err := naming.ValidateSuffix(value); err != nil {
		p.fail(key, value, err.Error())
		return ""
	}
	return value
}
