// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package ini provides functionality to parse and read properties from INI files.
package ini

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// INI represents a parsed INI file in memory.
type INI struct {
	cfg *ini.File
}

// New returns an INI file given a path to the file.
// An error is returned if the file can't be parsed.
func New(path string) (*INI, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load ini file %s: %w", path, err)
	}
	return &INI{
		cfg: cfg,
	}, nil
}

// Sections returns the names of the sections in the file, excluding the implicit default section.
func (i *INI) Sections() []string {
	var names []string
	for _, section := range i.cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		names = append(names, section.Name())
	}
	return names
}
