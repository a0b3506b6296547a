package client

import (
	"context"

	"github.com/devpulse/hackhub/pkg/api"
)

// ListResults lists results; before declaration this returns drafts only to
// admin callers.
func (c *Client) ListResults(ctx context.Context) ([]api.Result, error) {
	var out []api.Result
	if err := c.get(ctx, "result", "/result", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateResult creates a draft result through the given admin route.
func (c *Client) CreateResult(ctx context.Context, variant Variant, result api.Result) (*api.Result, error) {
	var out api.Result
	if err := c.post(ctx, "result", string(variant)+"/result", result, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateResult updates a draft result.
func (c *Client) UpdateResult(ctx context.Context, variant Variant, result api.Result) error {
	return c.put(ctx, "result", string(variant)+"/result/"+result.ID, result, nil)
}

// DeleteResult deletes a single result.
func (c *Client) DeleteResult(ctx context.Context, variant Variant, id string) error {
	return c.delete(ctx, "result", string(variant)+"/result/"+id)
}

// BulkDeleteResults deletes several results in one call.
func (c *Client) BulkDeleteResults(ctx context.Context, variant Variant, ids []string) error {
	body := map[string][]string{"ids": ids}
	return c.post(ctx, "result", string(variant)+"/result/bulk-delete", body, nil)
}

// DeclareResults publishes all draft results to participants.
func (c *Client) DeclareResults(ctx context.Context, variant Variant) error {
	return c.post(ctx, "result", string(variant)+"/result/declare", nil, nil)
}
