package ec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/imamik/hostenum/internal/enumerate"
	"github.com/imamik/hostenum/internal/util/filters"
	"github.com/imamik/hostenum/internal/util/retry"
)

// API is the subset of the EC2 client the inventory uses. It matches the
// generated client, so *ec2.Client satisfies it directly.
type API interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	CreateTags(ctx context.Context, params *ec2.CreateTagsInput, optFns ...func(*ec2.Options)) (*ec2.CreateTagsOutput, error)
}

// Client implements enumerate.Inventory against the AWS EC2 API.
type Client struct {
	api API
}

// NewClient creates a Client from the default AWS configuration chain.
// Region and static credentials override the chain when non-empty.
func NewClient(ctx context.Context, region, accessKey, secretKey string) (*Client, error) {
	var optFns []func(*config.LoadOptions) error
	if region != "" {
		optFns = append(optFns, config.WithRegion(region))
	}
	if accessKey != "" {
		optFns = append(optFns, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return &Client{api: ec2.NewFromConfig(cfg)}, nil
}

// NewClientWithAPI creates a Client over an existing EC2 API
// implementation (useful for testing).
func NewClientWithAPI(api API) *Client {
	return &Client{api: api}
}

// List returns all non-terminated instances matching the tag filters.
// The target tag value is extracted from the instance tags; a missing
// tag reports an empty TagValue.
func (c *Client) List(ctx context.Context, tagKey string, filterTags map[string]string) ([]enumerate.Instance, error) {
	input := &ec2.DescribeInstancesInput{}
	for _, term := range filters.TagTerms(filterTags) {
		input.Filters = append(input.Filters, types.Filter{
			Name:   aws.String(term.Key),
			Values: []string{term.Value},
		})
	}

	var instances []enumerate.Instance
	paginator := ec2.NewDescribeInstancesPaginator(c.api, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describing instances: %w", err)
		}
		for _, reservation := range page.Reservations {
			for _, inst := range reservation.Instances {
				if inst.State != nil && inst.State.Name == types.InstanceStateNameTerminated {
					continue
				}
				instances = append(instances, toInstance(inst, tagKey))
			}
		}
	}
	return instances, nil
}

func toInstance(inst types.Instance, tagKey string) enumerate.Instance {
	id := aws.ToString(inst.InstanceId)
	out := enumerate.Instance{ID: id, Name: id}
	for _, tag := range inst.Tags {
		key := aws.ToString(tag.Key)
		if key == tagKey {
			out.TagValue = aws.ToString(tag.Value)
		}
		if key == "Name" {
			out.Name = aws.ToString(tag.Value)
		}
	}
	return out
}

// ApplyTag sets tagKey=value on the instance. Throttling is retried;
// other API errors fail immediately.
func (c *Client) ApplyTag(ctx context.Context, instanceID, tagKey, value string) error {
	return retry.Do(ctx, func() error {
		_, err := c.api.CreateTags(ctx, &ec2.CreateTagsInput{
			Resources: []string{instanceID},
			Tags: []types.Tag{
				{Key: aws.String(tagKey), Value: aws.String(value)},
			},
		})
		if err == nil {
			return nil
		}
		if IsThrottled(err) {
			return err
		}
		return retry.Fatal(err)
	})
}
