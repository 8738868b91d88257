// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ec2

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/curityio/idsvr-aws/internal/pkg/aws/ec2/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestResource_String(t *testing.T) {
	testCases := map[string]struct {
		in     Resource
		wanted string
	}{
		"returns just the ID if no name present": {
			in:     Resource{ID: "vpc-0576efeea396efee2"},
			wanted: "vpc-0576efeea396efee2",
		},
		"returns both the ID and name if both present": {
			in:     Resource{ID: "vpc-0576efeea396efee2", Name: "idsvr"},
			wanted: "vpc-0576efeea396efee2 (idsvr)",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.wanted, tc.in.String())
		})
	}
}

func TestEC2_Images(t *testing.T) {
	mockError := errors.New("some error")
	wantedInput := &ec2.DescribeImagesInput{
		Owners: aws.StringSlice([]string{"536652696790"}),
		Filters: []*ec2.Filter{
			{
				Name:   aws.String(ImageNameFilter),
				Values: aws.StringSlice([]string{"Curity-*"}),
			},
			{
				Name:   aws.String(ImageArchitectureFilter),
				Values: aws.StringSlice([]string{"x86_64"}),
			},
		},
	}

	testCases := map[string]struct {
		mockEC2Client func(m *mocks.Mockapi)

		wantedError  error
		wantedImages []Image
	}{
		"fail to describe images": {
			mockEC2Client: func(m *mocks.Mockapi) {
				m.EXPECT().DescribeImagesWithContext(gomock.Any(), gomock.Any()).Return(nil, mockError)
			},
			wantedError: fmt.Errorf("describe images owned by 536652696790: some error"),
		},
		"returns an empty slice if nothing matches": {
			mockEC2Client: func(m *mocks.Mockapi) {
				m.EXPECT().DescribeImagesWithContext(gomock.Any(), wantedInput).Return(&ec2.DescribeImagesOutput{}, nil)
			},
			wantedImages: []Image{},
		},
		"success": {
			mockEC2Client: func(m *mocks.Mockapi) {
				m.EXPECT().DescribeImagesWithContext(gomock.Any(), wantedInput).Return(&ec2.DescribeImagesOutput{
					Images: []*ec2.Image{
						{
							ImageId:      aws.String("ami-1"),
							Name:         aws.String("Curity-7.3.0"),
							Architecture: aws.String("x86_64"),
							OwnerId:      aws.String("536652696790"),
							CreationDate: aws.String("2022-06-01T10:00:00.000Z"),
						},
						{
							ImageId: aws.String("ami-2"),
						},
					},
				}, nil)
			},
			wantedImages: []Image{
				{
					ID:           "ami-1",
					Name:         "Curity-7.3.0",
					Architecture: "x86_64",
					OwnerID:      "536652696790",
					CreationDate: "2022-06-01T10:00:00.000Z",
				},
				{
					ID: "ami-2",
				},
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			mockAPI := mocks.NewMockapi(ctrl)
			tc.mockEC2Client(mockAPI)

			ec2Client := EC2{
				client: mockAPI,
			}

			// WHEN
			images, err := ec2Client.Images(context.Background(), []string{"536652696790"},
				Filter{Name: ImageNameFilter, Values: []string{"Curity-*"}},
				Filter{Name: ImageArchitectureFilter, Values: []string{"x86_64"}})

			// THEN
			if tc.wantedError != nil {
				require.EqualError(t, err, tc.wantedError.Error())
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.wantedImages, images)
			}
		})
	}
}

func TestEC2_VPC(t *testing.T) {
	const mockVPCID = "vpc-0576efeea396efee2"
	wantedInput := &ec2.DescribeVpcsInput{
		Filters: []*ec2.Filter{
			{
				Name:   aws.String("vpc-id"),
				Values: aws.StringSlice([]string{mockVPCID}),
			},
		},
	}

	testCases := map[string]struct {
		mockEC2Client func(m *mocks.Mockapi)

		wantedError error
		wantedVPC   *VPC
	}{
		"fail to describe vpcs": {
			mockEC2Client: func(m *mocks.Mockapi) {
				m.EXPECT().DescribeVpcs(wantedInput).Return(nil, errors.New("some error"))
			},
			wantedError: fmt.Errorf("describe VPC vpc-0576efeea396efee2: some error"),
		},
		"returns ErrVPCNotFound if no VPC matches": {
			mockEC2Client: func(m *mocks.Mockapi) {
				m.EXPECT().DescribeVpcs(wantedInput).Return(&ec2.DescribeVpcsOutput{}, nil)
			},
			wantedError: &ErrVPCNotFound{vpcID: mockVPCID},
		},
		"success": {
			mockEC2Client: func(m *mocks.Mockapi) {
				m.EXPECT().DescribeVpcs(wantedInput).Return(&ec2.DescribeVpcsOutput{
					Vpcs: []*ec2.Vpc{
						{
							VpcId: aws.String(mockVPCID),
							Tags: []*ec2.Tag{
								{
									Key:   aws.String("Name"),
									Value: aws.String("idsvr"),
								},
							},
						},
					},
				}, nil)
			},
			wantedVPC: &VPC{
				Resource: Resource{
					ID:   mockVPCID,
					Name: "idsvr",
				},
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			mockAPI := mocks.NewMockapi(ctrl)
			tc.mockEC2Client(mockAPI)

			ec2Client := EC2{
				client: mockAPI,
			}

			// WHEN
			vpc, err := ec2Client.VPC(mockVPCID)

			// THEN
			if tc.wantedError != nil {
				require.EqualError(t, err, tc.wantedError.Error())
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.wantedVPC, vpc)
			}
		})
	}
}

func TestEC2_ListVPCSubnets(t *testing.T) {
	const (
		mockVPCID     = "mockVPC"
		mockNextToken = "mockNextToken"
	)
	mockfilter := []*ec2.Filter{
		{
			Name:   aws.String("vpc-id"),
			Values: aws.StringSlice([]string{mockVPCID}),
		},
	}
	mockError := errors.New("some error")

	testCases := map[string]struct {
		mockEC2Client func(m *mocks.Mockapi)

		wantedError          error
		wantedPublicSubnets  []Subnet
		wantedPrivateSubnets []Subnet
	}{
		"fail to describe route tables": {
			mockEC2Client: func(m *mocks.Mockapi) {
				m.EXPECT().DescribeRouteTables(gomock.Any()).Return(nil, mockError)
			},
			wantedError: fmt.Errorf("describe route tables: some error"),
		},
		"fail to describe subnets": {
			mockEC2Client: func(m *mocks.Mockapi) {
				m.EXPECT().DescribeRouteTables(&ec2.DescribeRouteTablesInput{
					Filters: mockfilter,
				}).Return(&ec2.DescribeRouteTablesOutput{}, nil)
				m.EXPECT().DescribeSubnets(gomock.Any()).Return(nil, mockError)
			},
			wantedError: fmt.Errorf("describe subnets: some error"),
		},
		"success": {
			mockEC2Client: func(m *mocks.Mockapi) {
				m.EXPECT().DescribeRouteTables(&ec2.DescribeRouteTablesInput{
					Filters: mockfilter,
				}).Return(&ec2.DescribeRouteTablesOutput{
					RouteTables: []*ec2.RouteTable{
						{
							Associations: []*ec2.RouteTableAssociation{
								{
									SubnetId: aws.String("subnet1"),
								},
							},
							Routes: []*ec2.Route{
								{
									GatewayId: aws.String("local"),
								},
							},
						},
					},
					NextToken: aws.String(mockNextToken),
				}, nil)
				m.EXPECT().DescribeRouteTables(&ec2.DescribeRouteTablesInput{
					Filters:   mockfilter,
					NextToken: aws.String(mockNextToken),
				}).Return(&ec2.DescribeRouteTablesOutput{
					RouteTables: []*ec2.RouteTable{
						{
							Associations: []*ec2.RouteTableAssociation{
								{
									SubnetId: aws.String("subnet2"),
								},
								{
									SubnetId: aws.String("subnet3"),
								},
							},
							Routes: []*ec2.Route{
								{
									GatewayId: aws.String("igw-0333791c413f9e2d8"),
								},
							},
						},
					},
				}, nil)
				m.EXPECT().DescribeSubnets(&ec2.DescribeSubnetsInput{
					Filters: mockfilter,
				}).Return(&ec2.DescribeSubnetsOutput{
					Subnets: []*ec2.Subnet{
						{
							SubnetId:  aws.String("subnet1"),
							CidrBlock: aws.String("10.0.0.0/24"),
						},
						{
							SubnetId: aws.String("subnet2"),
						},
						{
							SubnetId: aws.String("subnet3"),
							Tags: []*ec2.Tag{
								{
									Key:   aws.String("Name"),
									Value: aws.String("mySubnet"),
								},
							},
						},
					},
				}, nil)
			},
			wantedPublicSubnets: []Subnet{
				{
					Resource: Resource{
						ID: "subnet2",
					},
				},
				{
					Resource: Resource{
						ID:   "subnet3",
						Name: "mySubnet",
					},
				},
			},
			wantedPrivateSubnets: []Subnet{
				{
					Resource: Resource{
						ID: "subnet1",
					},
					CIDRBlock: "10.0.0.0/24",
				},
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockAPI := mocks.NewMockapi(ctrl)
			tc.mockEC2Client(mockAPI)

			ec2Client := EC2{
				client: mockAPI,
			}

			subnets, err := ec2Client.ListVPCSubnets(mockVPCID)
			if tc.wantedError != nil {
				require.EqualError(t, tc.wantedError, err.Error())
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.wantedPublicSubnets, subnets.Public, "public subnets must equal")
				require.Equal(t, tc.wantedPrivateSubnets, subnets.Private, "private subnets must equal")
			}
		})
	}
}

func TestRouteTableIndex_IsPublicSubnet(t *testing.T) {
	igwRoutes := []*ec2.Route{{GatewayId: aws.String("igw-0333791c413f9e2d8")}}
	localRoutes := []*ec2.Route{{GatewayId: aws.String("local")}}

	testCases := map[string]struct {
		tables   []*ec2.RouteTable
		subnetID string
		wanted   bool
	}{
		"explicit association with an internet gateway": {
			tables: []*ec2.RouteTable{
				{
					Associations: []*ec2.RouteTableAssociation{{SubnetId: aws.String("subnet1")}},
					Routes:       igwRoutes,
				},
			},
			subnetID: "subnet1",
			wanted:   true,
		},
		"explicit association wins over a public main table": {
			tables: []*ec2.RouteTable{
				{
					Associations: []*ec2.RouteTableAssociation{{Main: aws.Bool(true)}},
					Routes:       igwRoutes,
				},
				{
					Associations: []*ec2.RouteTableAssociation{{SubnetId: aws.String("subnet1")}},
					Routes:       localRoutes,
				},
			},
			subnetID: "subnet1",
		},
		"implicit association with a public main table": {
			tables: []*ec2.RouteTable{
				{
					Associations: []*ec2.RouteTableAssociation{{Main: aws.Bool(true)}},
					Routes:       igwRoutes,
				},
			},
			subnetID: "subnet1",
			wanted:   true,
		},
		"no main table": {
			subnetID: "subnet1",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.wanted, indexRouteTables(tc.tables).IsPublicSubnet(tc.subnetID))
		})
	}
}
