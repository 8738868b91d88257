// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"bytes"
	"fmt"
)

// Paths of the node user data templates.
const (
	AdminUserDataPath   = "userdata/admin-userdata.yaml"
	RuntimeUserDataPath = "userdata/runtime-userdata.yaml"

	userDataPartialsDir = "userdata/partials"
)

// Partials shared by the admin and runtime user data, referenced with {{include "name" .}}.
var userDataPartials = []string{
	"efs-mount",
	"cloudwatch-agent-start",
}

// AdminUserDataOpts holds the values rendered into the admin node user data.
type AdminUserDataOpts struct {
	BucketName           string
	AdminPassword        string
	EFSDNS               string
	CloudWatchNamespace  string
	Region               string
	LogGroup             string
	ConfigEncryptionKey  string
	EnableCloudWatchLogs bool
	MetricsScrapeSeconds int
}

// RuntimeUserDataOpts holds the values rendered into the runtime nodes user data.
type RuntimeUserDataOpts struct {
	BucketName           string
	ServiceRole          string
	StackName            string
	EFSDNS               string
	CloudWatchNamespace  string
	Region               string
	LogGroup             string
	ConfigEncryptionKey  string
	EnableCloudWatchLogs bool
}

// ParseAdminUserData parses the admin node cloud-init user data .
func (t *Template) ParseAdminUserData(opts AdminUserDataOpts) (*Content, error) {
	content, err := t.parseUserData(AdminUserDataPath, opts)
	if err != nil {
		return nil, fmt.Errorf("parse admin user data: %w", err)
	}
	return content, nil
}

// ParseRuntimeUserData parses the runtime node cloud-init user data .
func (t *Template) ParseRuntimeUserData(opts RuntimeUserDataOpts) (*Content, error) {
	content, err := t.parseUserData(RuntimeUserDataPath, opts)
	if err != nil {
		return nil, fmt.Errorf("parse runtime user data: %w", err)
	}
	return content, nil
}

func (t *Template) parseUserData(path string, data interface{}) (*Content, error) {
	tpl, err := t.parse("root", path)
	if err != nil {
		return nil, err
	}
	for _, name := range userDataPartials {
		partial, err := t.parse(name, fmt.Sprintf("%s/%s.yaml", userDataPartialsDir, name))
		if err != nil {
			return nil, err
		}
		if _, err := tpl.AddParseTree(name, partial.Tree); err != nil {
			return nil, fmt.Errorf("add parse tree of %s to base template: %w", name, err)
		}
	}
	buf := &bytes.Buffer{}
	if err := tpl.Execute(buf, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", path, err)
	}
	return &Content{buf}, nil
}
