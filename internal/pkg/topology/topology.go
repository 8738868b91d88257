// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package topology derives the network topology of a deployment from its configuration.
package topology

import "fmt"

// AnyIPv4 is the CIDR matching every IPv4 address.
const AnyIPv4 = "0.0.0.0/0"

// Well-known ports of the identity server.
const (
	SSHPort          = 22
	HTTPPort         = 80
	HTTPSPort        = 443
	HealthCheckPort  = 4465
	AdminPort        = 6749
	ClusterPort      = 6789
	RuntimePort      = 8443
	healthCheckPath  = "/"
	adminUIPath      = "/admin"
	healthyCount     = 3
	unhealthyCount   = 5
	healthCheckEvery = 10

	alarmEvaluationPeriods = 5
	scaleUpDatapoints      = 2
	scaleDownDatapoints    = 5
	scalingCooldownSeconds = 60
)

// SubnetType is the kind of subnets the nodes are placed in.
type SubnetType string

// Subnet types.
const (
	SubnetTypePublic  SubnetType = "PUBLIC"
	SubnetTypePrivate SubnetType = "PRIVATE"
)

// SecurityGroup identifies one of the security groups of the deployment.
type SecurityGroup string

// Security groups of the deployment.
const (
	AdminSecurityGroup        SecurityGroup = "admin"
	RuntimeSecurityGroup      SecurityGroup = "runtime"
	LoadBalancerSecurityGroup SecurityGroup = "loadbalancer"
)

// Protocol is an application protocol spoken by a listener or target.
type Protocol string

// Application protocols.
const (
	ProtocolHTTP  Protocol = "HTTP"
	ProtocolHTTPS Protocol = "HTTPS"
)

// Node is a kind of identity server node.
type Node string

// Node kinds.
const (
	AdminNode   Node = "admin"
	RuntimeNode Node = "runtime"
)

// EndpointSource is the host serving the admin UI.
type EndpointSource string

// Admin UI hosts.
const (
	EndpointViaLoadBalancer  EndpointSource = "loadbalancer"
	EndpointViaAdminInstance EndpointSource = "admin-instance"
	EndpointNone             EndpointSource = "none"
)

// Options holds the configuration values the topology depends on.
type Options struct {
	CertificateARN   string
	TrustedCIDR      string
	LoadBalancerCIDR string
	SubnetType       SubnetType

	MinNodes           int
	MaxNodes           int
	MinRequestsPerNode int
	MaxRequestsPerNode int
}

// HasCertificate returns true if the load balancer terminates TLS.
func (o Options) HasCertificate() bool {
	return o.CertificateARN != ""
}

// Peer is the source of inbound traffic. Exactly one of CIDR and SecurityGroup is set.
type Peer struct {
	CIDR          string        `json:"cidr,omitempty" yaml:"cidr,omitempty"`
	SecurityGroup SecurityGroup `json:"securityGroup,omitempty" yaml:"securityGroup,omitempty"`
}

func (p Peer) String() string {
	if p.SecurityGroup != "" {
		return fmt.Sprintf("%s security group", p.SecurityGroup)
	}
	return p.CIDR
}

// IngressRule allows inbound TCP traffic on a port.
type IngressRule struct {
	Port        int    `json:"port" yaml:"port"`
	Source      Peer   `json:"source" yaml:"source"`
	Description string `json:"description" yaml:"description"`
}

// HealthCheck is the health check of a target group.
type HealthCheck struct {
	Path               string   `json:"path" yaml:"path"`
	Port               int      `json:"port" yaml:"port"`
	Protocol           Protocol `json:"protocol" yaml:"protocol"`
	HealthyThreshold   int      `json:"healthyThreshold" yaml:"healthyThreshold"`
	UnhealthyThreshold int      `json:"unhealthyThreshold" yaml:"unhealthyThreshold"`
	IntervalSeconds    int      `json:"intervalSeconds" yaml:"intervalSeconds"`
}

// Target is the group of nodes a listener forwards to.
type Target struct {
	Node        Node        `json:"node" yaml:"node"`
	Port        int         `json:"port" yaml:"port"`
	Protocol    Protocol    `json:"protocol" yaml:"protocol"`
	HealthCheck HealthCheck `json:"healthCheck" yaml:"healthCheck"`
}

// Listener is a load balancer listener.
type Listener struct {
	Name           string   `json:"name" yaml:"name"`
	Port           int      `json:"port" yaml:"port"`
	Protocol       Protocol `json:"protocol" yaml:"protocol"`
	CertificateARN string   `json:"certificateArn,omitempty" yaml:"certificateArn,omitempty"`
	Target         Target   `json:"target" yaml:"target"`
}

// AdminUIEndpoint tells where the admin UI is reachable from once deployed.
type AdminUIEndpoint struct {
	Via  EndpointSource `json:"via" yaml:"via"`
	Port int            `json:"port,omitempty" yaml:"port,omitempty"`
	Path string         `json:"path,omitempty" yaml:"path,omitempty"`
}

// URL returns the admin UI URL on the host, or an empty string if the admin UI is not exposed.
func (e AdminUIEndpoint) URL(host string) string {
	if e.Via == EndpointNone {
		return ""
	}
	return fmt.Sprintf("https://%s:%d%s", host, e.Port, e.Path)
}

// ScalingAlarm adds Adjustment runtime nodes when the active connections per node cross Threshold.
type ScalingAlarm struct {
	Comparison        string `json:"comparison" yaml:"comparison"`
	Threshold         int    `json:"threshold" yaml:"threshold"`
	EvaluationPeriods int    `json:"evaluationPeriods" yaml:"evaluationPeriods"`
	DatapointsToAlarm int    `json:"datapointsToAlarm" yaml:"datapointsToAlarm"`
	Adjustment        int    `json:"adjustment" yaml:"adjustment"`
	CooldownSeconds   int    `json:"cooldownSeconds" yaml:"cooldownSeconds"`
}

// Scaling is the autoscaling policy of the runtime nodes.
type Scaling struct {
	MinNodes  int          `json:"minNodes" yaml:"minNodes"`
	MaxNodes  int          `json:"maxNodes" yaml:"maxNodes"`
	ScaleUp   ScalingAlarm `json:"scaleUp" yaml:"scaleUp"`
	ScaleDown ScalingAlarm `json:"scaleDown" yaml:"scaleDown"`
}

// Decision is the topology derived from Options.
type Decision struct {
	Admin        []IngressRule   `json:"admin" yaml:"admin"`
	Runtime      []IngressRule   `json:"runtime" yaml:"runtime"`
	LoadBalancer []IngressRule   `json:"loadBalancer" yaml:"loadBalancer"`
	Listeners    []Listener      `json:"listeners" yaml:"listeners"`
	RedirectHTTP bool            `json:"redirectHttp" yaml:"redirectHttp"`
	Placement    SubnetType      `json:"placement" yaml:"placement"`
	AdminUI      AdminUIEndpoint `json:"adminUI" yaml:"adminUI"`
	Scaling      Scaling         `json:"scaling" yaml:"scaling"`
}

// Derive returns the topology for the options. It has no side effects.
//
// With a certificate the admin node only accepts 6749 from the load balancer,
// otherwise it is exposed directly to the trusted range, or to anyone if no range is set.
func Derive(opts Options) Decision {
	sshSource, sshDesc, runtimeSSHDesc := Peer{CIDR: AnyIPv4}, "Allow SSH Access from 0.0.0.0/0", "Allow SSH Access from 0.0.0.0/0"
	if opts.TrustedCIDR != "" {
		sshSource, sshDesc, runtimeSSHDesc = Peer{CIDR: opts.TrustedCIDR}, "Allow SSH Access from trusted IP range", "Allow SSH Access"
	}
	fromLB := Peer{SecurityGroup: LoadBalancerSecurityGroup}

	var admin []IngressRule
	if !opts.HasCertificate() {
		adminDesc := "Allow access to 6749 port on admin node from 0.0.0.0/0"
		if opts.TrustedCIDR != "" {
			adminDesc = "Allow access to 6749 port on admin node from trusted IP range"
		}
		admin = append(admin,
			IngressRule{Port: AdminPort, Source: sshSource, Description: adminDesc},
			IngressRule{Port: SSHPort, Source: sshSource, Description: sshDesc},
		)
	} else {
		admin = append(admin,
			IngressRule{Port: SSHPort, Source: sshSource, Description: sshDesc},
			IngressRule{Port: HealthCheckPort, Source: fromLB, Description: "ALB access"},
			IngressRule{Port: AdminPort, Source: fromLB, Description: "ALB access"},
		)
	}
	admin = append(admin, IngressRule{
		Port:        ClusterPort,
		Source:      Peer{SecurityGroup: RuntimeSecurityGroup},
		Description: "Runtime access",
	})

	runtime := []IngressRule{
		{Port: SSHPort, Source: sshSource, Description: runtimeSSHDesc},
		{Port: HealthCheckPort, Source: fromLB, Description: "Allow http access from load balancer only"},
		{Port: RuntimePort, Source: fromLB, Description: "Allow http access from load balancer only"},
	}

	lb := []IngressRule{{Port: HTTPPort, Source: Peer{CIDR: AnyIPv4}, Description: "Allow http Access from 0.0.0.0/0"}}
	if opts.LoadBalancerCIDR != "" {
		lb = []IngressRule{{Port: HTTPPort, Source: Peer{CIDR: opts.LoadBalancerCIDR}, Description: "Allow http Access from LB IP range"}}
	}
	if opts.HasCertificate() {
		lb = append(lb,
			IngressRule{Port: HTTPSPort, Source: Peer{CIDR: AnyIPv4}, Description: "Allow from anyone on port 443"},
			IngressRule{Port: AdminPort, Source: Peer{CIDR: AnyIPv4}, Description: "Allow from anyone on port 6749"},
		)
	}

	return Decision{
		Admin:        admin,
		Runtime:      runtime,
		LoadBalancer: lb,
		Listeners:    listeners(opts),
		RedirectHTTP: opts.HasCertificate(),
		Placement:    placement(opts.SubnetType),
		AdminUI:      adminUI(opts),
		Scaling:      scaling(opts),
	}
}

func listeners(opts Options) []Listener {
	if !opts.HasCertificate() {
		return []Listener{
			{
				Name:     "runtime-http-listener",
				Port:     HTTPPort,
				Protocol: ProtocolHTTP,
				Target:   target(RuntimeNode, RuntimePort, ProtocolHTTP),
			},
		}
	}
	return []Listener{
		{
			Name:           "runtime-https-listener",
			Port:           HTTPSPort,
			Protocol:       ProtocolHTTPS,
			CertificateARN: opts.CertificateARN,
			Target:         target(RuntimeNode, RuntimePort, ProtocolHTTPS),
		},
		{
			Name:           "admin-https-listener",
			Port:           AdminPort,
			Protocol:       ProtocolHTTPS,
			CertificateARN: opts.CertificateARN,
			Target:         target(AdminNode, AdminPort, ProtocolHTTPS),
		},
	}
}

func target(node Node, port int, protocol Protocol) Target {
	return Target{
		Node:     node,
		Port:     port,
		Protocol: protocol,
		HealthCheck: HealthCheck{
			Path:               healthCheckPath,
			Port:               HealthCheckPort,
			Protocol:           ProtocolHTTP,
			HealthyThreshold:   healthyCount,
			UnhealthyThreshold: unhealthyCount,
			IntervalSeconds:    healthCheckEvery,
		},
	}
}

func placement(t SubnetType) SubnetType {
	if t == SubnetTypePrivate {
		return SubnetTypePrivate
	}
	return SubnetTypePublic
}

func adminUI(opts Options) AdminUIEndpoint {
	switch {
	case opts.HasCertificate():
		return AdminUIEndpoint{Via: EndpointViaLoadBalancer, Port: AdminPort, Path: adminUIPath}
	case placement(opts.SubnetType) == SubnetTypePublic:
		return AdminUIEndpoint{Via: EndpointViaAdminInstance, Port: AdminPort, Path: adminUIPath}
	default:
		return AdminUIEndpoint{Via: EndpointNone}
	}
}

func scaling(opts Options) Scaling {
	return Scaling{
		MinNodes: opts.MinNodes,
		MaxNodes: opts.MaxNodes,
		ScaleUp: ScalingAlarm{
			Comparison:        "GreaterThanThreshold",
			Threshold:         opts.MaxRequestsPerNode,
			EvaluationPeriods: alarmEvaluationPeriods,
			DatapointsToAlarm: scaleUpDatapoints,
			Adjustment:        1,
			CooldownSeconds:   scalingCooldownSeconds,
		},
		ScaleDown: ScalingAlarm{
			Comparison:        "LessThanThreshold",
			Threshold:         opts.MinRequestsPerNode,
			EvaluationPeriods: alarmEvaluationPeriods,
			DatapointsToAlarm: scaleDownDatapoints,
			Adjustment:        -1,
			CooldownSeconds:   scalingCooldownSeconds,
		},
	}
}
