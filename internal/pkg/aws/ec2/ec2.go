// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package ec2 provides a client to make API requests to Amazon Elastic Compute Cloud.
package ec2

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
)

const (
	internetGatewayIDPrefix = "igw-"

	vpcIDFilterName = "vpc-id"
	nameTagKey      = "Name"
)

// Image filter names, see https://docs.aws.amazon.com/AWSEC2/latest/APIReference/API_DescribeImages.html.
const (
	ImageNameFilter           = "name"
	ImageArchitectureFilter   = "architecture"
	ImageRootDeviceTypeFilter = "root-device-type"
)

type api interface {
	DescribeImagesWithContext(ctx aws.Context, input *ec2.DescribeImagesInput, opts ...request.Option) (*ec2.DescribeImagesOutput, error)
	DescribeVpcs(input *ec2.DescribeVpcsInput) (*ec2.DescribeVpcsOutput, error)
	DescribeSubnets(input *ec2.DescribeSubnetsInput) (*ec2.DescribeSubnetsOutput, error)
	DescribeRouteTables(input *ec2.DescribeRouteTablesInput) (*ec2.DescribeRouteTablesOutput, error)
}

// Filter contains the name and values of a filter.
type Filter struct {
	// Name of a filter that will be applied to the described resources,
	// for example "name" or "architecture" for images and "vpc-id" for subnets.
	Name string
	// Value of the filter.
	Values []string
}

// EC2 wraps an AWS EC2 client.
type EC2 struct {
	client api
}

// New returns a EC2 configured against the input session.
func New(s *session.Session) *EC2 {
	return &EC2{
		client: ec2.New(s),
	}
}

// Resource contains the ID and name of a EC2 resource.
type Resource struct {
	ID   string
	Name string
}

// String formats the elements of a resource into a display-ready string.
// For example: Resource{"ID": "vpc-0576efeea396efee2", "Name": "idsvr"}
// will return "vpc-0576efeea396efee2 (idsvr)".
func (r *Resource) String() string {
	if r.Name != "" {
		return fmt.Sprintf("%s (%s)", r.ID, r.Name)
	}
	return r.ID
}

// VPC contains the ID and name of a VPC.
type VPC struct {
	Resource
}

// Subnet contains the ID and name of a subnet.
type Subnet struct {
	Resource
	CIDRBlock string
}

// Image is a machine image returned by the catalog.
type Image struct {
	ID           string
	Name         string
	Architecture string
	OwnerID      string
	// CreationDate is the raw ISO 8601 timestamp returned by EC2.
	CreationDate string
}

// Images returns the images owned by any of the owners that match all filters.
func (c *EC2) Images(ctx context.Context, owners []string, filters ...Filter) ([]Image, error) {
	resp, err := c.client.DescribeImagesWithContext(ctx, &ec2.DescribeImagesInput{
		Owners:  aws.StringSlice(owners),
		Filters: toEC2Filter(filters),
	})
	if err != nil {
		return nil, fmt.Errorf("describe images owned by %s: %w", strings.Join(owners, ","), err)
	}
	images := make([]Image, 0, len(resp.Images))
	for _, img := range resp.Images {
		images = append(images, Image{
			ID:           aws.StringValue(img.ImageId),
			Name:         aws.StringValue(img.Name),
			Architecture: aws.StringValue(img.Architecture),
			OwnerID:      aws.StringValue(img.OwnerId),
			CreationDate: aws.StringValue(img.CreationDate),
		})
	}
	return images, nil
}

// VPC returns the VPC with the given ID.
// If the VPC does not exist, an *ErrVPCNotFound is returned.
func (c *EC2) VPC(vpcID string) (*VPC, error) {
	resp, err := c.client.DescribeVpcs(&ec2.DescribeVpcsInput{
		Filters: toEC2Filter([]Filter{
			{
				Name:   vpcIDFilterName,
				Values: []string{vpcID},
			},
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("describe VPC %s: %w", vpcID, err)
	}
	if len(resp.Vpcs) == 0 {
		return nil, &ErrVPCNotFound{vpcID: vpcID}
	}
	vpc := resp.Vpcs[0]
	return &VPC{
		Resource: Resource{
			ID:   aws.StringValue(vpc.VpcId),
			Name: nameTag(vpc.Tags),
		},
	}, nil
}

// VPCSubnets are all subnets within a VPC.
type VPCSubnets struct {
	Public  []Subnet
	Private []Subnet
}

// ListVPCSubnets lists all subnets with a given VPC ID. Note that public subnets
// are subnets associated with an internet gateway through a route table.
// And the rest of the subnets are private.
func (c *EC2) ListVPCSubnets(vpcID string) (*VPCSubnets, error) {
	vpcFilter := Filter{
		Name:   vpcIDFilterName,
		Values: []string{vpcID},
	}
	routeTables, err := c.routeTables(vpcFilter)
	if err != nil {
		return nil, err
	}
	rtIndex := indexRouteTables(routeTables)

	respSubnets, err := c.subnets(vpcFilter)
	if err != nil {
		return nil, err
	}
	var publicSubnets, privateSubnets []Subnet
	for _, subnet := range respSubnets {
		s := Subnet{
			Resource: Resource{
				ID:   aws.StringValue(subnet.SubnetId),
				Name: nameTag(subnet.Tags),
			},
			CIDRBlock: aws.StringValue(subnet.CidrBlock),
		}
		if rtIndex.IsPublicSubnet(s.ID) {
			publicSubnets = append(publicSubnets, s)
		} else {
			privateSubnets = append(privateSubnets, s)
		}
	}
	return &VPCSubnets{
		Public:  publicSubnets,
		Private: privateSubnets,
	}, nil
}

func (c *EC2) subnets(filters ...Filter) ([]*ec2.Subnet, error) {
	var subnets []*ec2.Subnet
	input := &ec2.DescribeSubnetsInput{
		Filters: toEC2Filter(filters),
	}
	for {
		resp, err := c.client.DescribeSubnets(input)
		if err != nil {
			return nil, fmt.Errorf("describe subnets: %w", err)
		}
		subnets = append(subnets, resp.Subnets...)
		if resp.NextToken == nil {
			break
		}
		input.NextToken = resp.NextToken
	}
	return subnets, nil
}

func (c *EC2) routeTables(filters ...Filter) ([]*ec2.RouteTable, error) {
	var routeTables []*ec2.RouteTable
	input := &ec2.DescribeRouteTablesInput{
		Filters: toEC2Filter(filters),
	}
	for {
		resp, err := c.client.DescribeRouteTables(input)
		if err != nil {
			return nil, fmt.Errorf("describe route tables: %w", err)
		}
		routeTables = append(routeTables, resp.RouteTables...)
		if resp.NextToken == nil {
			break
		}
		input.NextToken = resp.NextToken
	}
	return routeTables, nil
}

func toEC2Filter(filters []Filter) []*ec2.Filter {
	var ec2Filter []*ec2.Filter
	for _, filter := range filters {
		ec2Filter = append(ec2Filter, &ec2.Filter{
			Name:   aws.String(filter.Name),
			Values: aws.StringSlice(filter.Values),
		})
	}
	return ec2Filter
}

func nameTag(tags []*ec2.Tag) string {
	for _, tag := range tags {
		if aws.StringValue(tag.Key) == nameTagKey {
			return aws.StringValue(tag.Value)
		}
	}
	return ""
}

type routeTable ec2.RouteTable

// IsMain returns true if the route table is the default route table for the VPC.
// If a subnet is not associated with a particular route table, then it will default to the main route table.
func (rt *routeTable) IsMain() bool {
	for _, association := range rt.Associations {
		if aws.BoolValue(association.Main) {
			return true
		}
	}
	return false
}

// HasIGW returns true if the route table has a route to an internet gateway.
func (rt *routeTable) HasIGW() bool {
	for _, route := range rt.Routes {
		if strings.HasPrefix(aws.StringValue(route.GatewayId), internetGatewayIDPrefix) {
			return true
		}
	}
	return false
}

// AssociatedSubnets returns the list of subnet IDs associated with the route table.
func (rt *routeTable) AssociatedSubnets() []string {
	var subnetIDs []string
	for _, association := range rt.Associations {
		if association.SubnetId == nil {
			continue
		}
		subnetIDs = append(subnetIDs, aws.StringValue(association.SubnetId))
	}
	return subnetIDs
}

// routeTableIndex holds cached data to quickly return information about route tables in a VPC.
type routeTableIndex struct {
	// Route table that subnets default to. There is always one main table in the VPC.
	mainTable *routeTable

	// Explicit route table association for a subnet. A subnet can only be associated to one route table.
	routeTableForSubnet map[string]*routeTable
}

func indexRouteTables(tables []*ec2.RouteTable) *routeTableIndex {
	index := &routeTableIndex{
		routeTableForSubnet: make(map[string]*routeTable),
	}
	for _, table := range tables { // Index all properties in a single pass.
		table := (*routeTable)(table)

		for _, subnetID := range table.AssociatedSubnets() {
			index.routeTableForSubnet[subnetID] = table
		}

		if table.IsMain() {
			index.mainTable = table
		}
	}
	return index
}

// IsPublicSubnet returns true if the subnet has a route to an internet gateway.
// We consider the subnet to have internet access if there is an explicit route in the route table to an internet gateway.
// Or if there is an implicit route, where the subnet defaults to the main route table with an internet gateway.
func (idx *routeTableIndex) IsPublicSubnet(subnetID string) bool {
	rt, ok := idx.routeTableForSubnet[subnetID]
	if ok {
		return rt.HasIGW()
	}
	if idx.mainTable == nil {
		return false
	}
	return idx.mainTable.HasIGW()
}
