// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package topology

import (
	"encoding/json"
	"fmt"

	"github.com/xlab/treeprint"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	loadBalancerHost  = "<load balancer DNS>"
	adminInstanceHost = "<admin instance public DNS>"
)

// JSONString returns the stringified Decision struct with json format.
func (d Decision) JSONString() (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("marshal topology: %w", err)
	}
	return fmt.Sprintf("%s\n", b), nil
}

// YAMLString returns the stringified Decision struct with yaml format.
func (d Decision) YAMLString() (string, error) {
	b, err := yaml.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("marshal topology: %w", err)
	}
	return string(b), nil
}

// HumanString returns the stringified Decision struct as a tree.
func (d Decision) HumanString() string {
	title := cases.Title(language.English)
	tree := treeprint.NewWithRoot("Topology")
	tree.AddNode(fmt.Sprintf("Placement: %s subnets", title.String(string(d.Placement))))

	groups := tree.AddBranch("Security groups")
	for _, group := range []struct {
		name  SecurityGroup
		rules []IngressRule
	}{
		{name: AdminSecurityGroup, rules: d.Admin},
		{name: RuntimeSecurityGroup, rules: d.Runtime},
		{name: LoadBalancerSecurityGroup, rules: d.LoadBalancer},
	} {
		branch := groups.AddBranch(title.String(string(group.name)))
		for _, rule := range group.rules {
			branch.AddNode(fmt.Sprintf("%d/tcp from %s (%s)", rule.Port, rule.Source, rule.Description))
		}
	}

	listeners := tree.AddBranch("Listeners")
	for _, l := range d.Listeners {
		hc := l.Target.HealthCheck
		listeners.AddBranch(fmt.Sprintf("%s:%d -> %s nodes %s:%d", l.Protocol, l.Port, l.Target.Node, l.Target.Protocol, l.Target.Port)).
			AddNode(fmt.Sprintf("health check %s:%d%s every %ds", hc.Protocol, hc.Port, hc.Path, hc.IntervalSeconds))
	}
	if d.RedirectHTTP {
		listeners.AddNode(fmt.Sprintf("HTTP:%d -> redirect to HTTPS:%d", HTTPPort, HTTPSPort))
	}

	switch d.AdminUI.Via {
	case EndpointViaLoadBalancer:
		tree.AddNode("Admin UI: " + d.AdminUI.URL(loadBalancerHost))
	case EndpointViaAdminInstance:
		tree.AddNode("Admin UI: " + d.AdminUI.URL(adminInstanceHost))
	default:
		tree.AddNode("Admin UI: not exposed")
	}

	scaling := tree.AddBranch(fmt.Sprintf("Scaling: %d to %d runtime nodes", d.Scaling.MinNodes, d.Scaling.MaxNodes))
	scaling.AddNode(fmt.Sprintf("scale up by %d above %d connections per node", d.Scaling.ScaleUp.Adjustment, d.Scaling.ScaleUp.Threshold))
	scaling.AddNode(fmt.Sprintf("scale down by %d below %d connections per node", -d.Scaling.ScaleDown.Adjustment, d.Scaling.ScaleDown.Threshold))
	return tree.String()
}
