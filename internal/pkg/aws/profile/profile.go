// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package profile provides functionality to parse AWS named profiles.
package profile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/curityio/idsvr-aws/internal/pkg/ini"
)

const (
	configFileEnvVar = "AWS_CONFIG_FILE"
	profilePrefix    = "profile "
)

type sectionsParser interface {
	Sections() []string
}

// Config represents the local AWS config file.
type Config struct {
	// f is the ~/.aws/config INI file.
	f sectionsParser
}

// NewConfig returns a new parsed Config object from $AWS_CONFIG_FILE or ~/.aws/config.
func NewConfig() (*Config, error) {
	path := os.Getenv(configFileEnvVar)
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(homeDir, ".aws", "config")
	}
	f, err := ini.New(path)
	if err != nil {
		return nil, err
	}
	return &Config{
		f: f,
	}, nil
}

// Names returns a list of profile names available in the user's config file.
// An empty list is returned if there are no profile names.
func (c *Config) Names() []string {
	sections := c.f.Sections()
	if len(sections) == 0 {
		return nil
	}
	var profiles []string
	for _, section := range sections {
		// Named profiles created with "aws configure" are formatted as "[profile test]".
		profiles = append(profiles, strings.TrimSpace(strings.TrimPrefix(section, profilePrefix)))
	}
	return profiles
}

// Has returns true if the profile name exists in the config file.
func (c *Config) Has(name string) bool {
	for _, profile := range c.Names() {
		if profile == name {
			return true
		}
	}
	return false
}
