// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strings"

	"github.com/fatih/structs"
)

const (
	envTag      = "env"
	requiredTag = "required"
	secretTag   = "secret"

	redacted = "********"
)

// Vars holds the raw configuration values keyed by environment variable name.
// Fields are declared in the order keys are checked and written.
type Vars struct {
	AdminPassword                  string `env:"ADMIN_PASSWORD" required:"true" secret:"true"`
	AdminServiceRole               string `env:"ADMIN_SERVICE_ROLE" required:"true"`
	AdminInstanceType              string `env:"ADMIN_INSTANCE_TYPE" required:"true"`
	RuntimeServiceRole             string `env:"RUNTIME_SERVICE_ROLE" required:"true"`
	RuntimeInstanceType            string `env:"RUNTIME_INSTANCE_TYPE" required:"true"`
	RuntimeMinNodeCount            string `env:"RUNTIME_MIN_NODE_COUNT" required:"true"`
	RuntimeMaxNodeCount            string `env:"RUNTIME_MAX_NODE_COUNT" required:"true"`
	RuntimeMinRequestsPerNode      string `env:"RUNTIME_MIN_REQUESTS_PER_NODE" required:"true"`
	RuntimeMaxRequestsPerNode      string `env:"RUNTIME_MAX_REQUESTS_PER_NODE" required:"true"`
	VPCDeploymentSubnetsType       string `env:"AWS_VPC_DEPLOYMENT_SUBNETS_TYPE" required:"true"`
	EC2KeyPairName                 string `env:"AWS_EC2_KEY_PAIR_NAME" required:"true"`
	EnableCloudWatchLogs           string `env:"ENABLE_CLOUDWATCH_LOGS" required:"true"`
	MetricsScrapeIntervalInSeconds string `env:"METRICS_SCRAPE_INTERVAL_IN_SECONDS" required:"true"`
	VPCID                          string `env:"AWS_VPC_ID"`
	LoadBalancerIPRangeCIDR        string `env:"LOADBALANCER_IP_RANGE_CIDR"`
	TrustedIPRangeCIDR             string `env:"TRUSTED_IP_RANGE_CIDR"`
	CloudWatchNamespace            string `env:"CLOUDWATCH_NAMESPACE"`
	EFSDNS                         string `env:"AWS_EFS_DNS"`
	ConfigEncryptionKey            string `env:"CONFIG_ENCRYPTION_KEY" secret:"true"`
	CertificateARN                 string `env:"AWS_CERTIFICATE_ARN"`
	ACMSelfSignedCertARN           string `env:"AWS_ACM_SELF_SIGNED_CERT_ARN"`
	ResourceNameSuffix             string `env:"RESOURCE_NAME_SUFFIX"`
}

// Entry is a single configuration key and its value.
type Entry struct {
	Key      string
	Value    string
	Required bool
	Secret   bool
}

// Entries returns the keys in declaration order. Secret values are masked unless they are empty.
func (v *Vars) Entries() []Entry {
	var entries []Entry
	for _, f := range structs.New(v).Fields() {
		e := Entry{
			Key:      f.Tag(envTag),
			Value:    f.Value().(string),
			Required: f.Tag(requiredTag) == "true",
			Secret:   f.Tag(secretTag) == "true",
		}
		if e.Secret && e.Value != "" {
			e.Value = redacted
		}
		entries = append(entries, e)
	}
	return entries
}

// Keys returns all environment variable names in declaration order.
func Keys() []string {
	var keys []string
	for _, f := range structs.New(&Vars{}).Fields() {
		keys = append(keys, f.Tag(envTag))
	}
	return keys
}

// RequiredKeys returns the names of the required environment variables in declaration order.
func RequiredKeys() []string {
	var keys []string
	for _, f := range structs.New(&Vars{}).Fields() {
		if f.Tag(requiredTag) == "true" {
			keys = append(keys, f.Tag(envTag))
		}
	}
	return keys
}

// Get returns the value of the key, or an empty string if the key is unknown.
func (v *Vars) Get(key string) string {
	for _, f := range structs.New(v).Fields() {
		if f.Tag(envTag) == key {
			return f.Value().(string)
		}
	}
	return ""
}

// Set assigns the value of the key. Unknown keys are ignored.
func (v *Vars) Set(key, value string) {
	for _, f := range structs.New(v).Fields() {
		if f.Tag(envTag) == key {
			// Fields are exported strings so Set cannot fail.
			_ = f.Set(value)
			return
		}
	}
}

// ToMap returns the non-empty values keyed by environment variable name.
func (v *Vars) ToMap() map[string]string {
	m := make(map[string]string)
	for _, f := range structs.New(v).Fields() {
		if val := f.Value().(string); val != "" {
			m[f.Tag(envTag)] = val
		}
	}
	return m
}

// MarshalEnv returns the non-empty values as dotenv lines in declaration order.
// Values are always double-quoted so that numeric-looking strings keep their exact text.
func (v *Vars) MarshalEnv() string {
	var sb strings.Builder
	for _, f := range structs.New(v).Fields() {
		val := f.Value().(string)
		if val == "" {
			continue
		}
		fmt.Fprintf(&sb, "%s=\"%s\"\n", f.Tag(envTag), dotenvEscaper.Replace(val))
	}
	return sb.String()
}

// dotenvEscaper escapes the characters godotenv unquotes or expands inside double quotes.
var dotenvEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"\r", `\r`,
	`"`, `\"`,
	"$", `\$`,
	"`", "\\`",
	"!", `\!`,
)

func (v *Vars) trim() {
	for _, f := range structs.New(v).Fields() {
		_ = f.Set(strings.TrimSpace(f.Value().(string)))
	}
}

func (v *Vars) checkRequired() error {
	for _, f := range structs.New(v).Fields() {
		if f.Tag(requiredTag) != "true" {
			continue
		}
		if f.Value().(string) == "" {
			return &ErrMissingKey{key: f.Tag(envTag)}
		}
	}
	return nil
}

func varsFromMap(m map[string]string) Vars {
	var v Vars
	for key, value := range m {
		v.Set(key, value)
	}
	return v
}

func varsFromLookup(lookupEnv func(string) (string, bool)) Vars {
	var v Vars
	for _, key := range Keys() {
		if value, ok := lookupEnv(key); ok {
			v.Set(key, value)
		}
	}
	return v
}
