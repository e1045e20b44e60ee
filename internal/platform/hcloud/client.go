package hcloud

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/imamik/hostenum/internal/enumerate"
	"github.com/imamik/hostenum/internal/util/filters"
	"github.com/imamik/hostenum/internal/util/retry"
)

// Client implements enumerate.Inventory against the Hetzner Cloud API.
type Client struct {
	client *hcloud.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHCloudClient sets a custom hcloud client (useful for testing
// against an httptest server).
func WithHCloudClient(hc *hcloud.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a Client authenticated with the given API token.
func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		client: hcloud.NewClient(hcloud.WithToken(token)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List returns all servers matching the filter labels. The target tag
// value is read from the server's labels; a server without the label
// reports an empty TagValue.
func (c *Client) List(ctx context.Context, tagKey string, filterLabels map[string]string) ([]enumerate.Instance, error) {
	servers, err := c.client.Server.AllWithOpts(ctx, hcloud.ServerListOpts{
		ListOpts: hcloud.ListOpts{LabelSelector: filters.Selector(filterLabels)},
	})
	if err != nil {
		return nil, fmt.Errorf("listing servers: %w", err)
	}

	instances := make([]enumerate.Instance, 0, len(servers))
	for _, srv := range servers {
		instances = append(instances, enumerate.Instance{
			ID:       strconv.FormatInt(srv.ID, 10),
			Name:     srv.Name,
			TagValue: srv.Labels[tagKey],
		})
	}
	return instances, nil
}

// ApplyTag sets tagKey=value on the server's labels, preserving all
// other labels. Conflicts from concurrent label updates and rate limits
// are retried; anything else fails immediately.
func (c *Client) ApplyTag(ctx context.Context, instanceID, tagKey, value string) error {
	id, err := strconv.ParseInt(instanceID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid server id %q: %w", instanceID, err)
	}

	return retry.Do(ctx, func() error {
		srv, _, err := c.client.Server.GetByID(ctx, id)
		if err != nil {
			return classify(err)
		}
		if srv == nil {
			return retry.Fatal(fmt.Errorf("server %d not found", id))
		}

		labels := make(map[string]string, len(srv.Labels)+1)
		for k, v := range srv.Labels {
			labels[k] = v
		}
		labels[tagKey] = value

		_, _, err = c.client.Server.Update(ctx, srv, hcloud.ServerUpdateOpts{Labels: labels})
		return classify(err)
	})
}

// classify maps an hcloud API error onto retry semantics.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if IsRateLimited(err) || IsConflict(err) {
		return err
	}
	return retry.Fatal(err)
}
