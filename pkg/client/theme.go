package client

import (
	"context"

	"github.com/devpulse/hackhub/pkg/api"
)

// ListThemes lists the themes visible to participants.
func (c *Client) ListThemes(ctx context.Context) ([]api.Theme, error) {
	var out []api.Theme
	if err := c.get(ctx, "theme", "/theme", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTheme fetches a single theme.
func (c *Client) GetTheme(ctx context.Context, id string) (*api.Theme, error) {
	var out api.Theme
	if err := c.get(ctx, "theme", "/theme/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SelectTheme records the caller team's theme selection.
func (c *Client) SelectTheme(ctx context.Context, id string) error {
	return c.post(ctx, "theme", "/theme/"+id+"/select", nil, nil)
}

// CreateTheme creates a theme through the given admin route family.
func (c *Client) CreateTheme(ctx context.Context, variant Variant, theme api.Theme) (*api.Theme, error) {
	var out api.Theme
	if err := c.post(ctx, "theme", string(variant)+"/theme", theme, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTheme updates a theme.
func (c *Client) UpdateTheme(ctx context.Context, variant Variant, theme api.Theme) error {
	return c.put(ctx, "theme", string(variant)+"/theme/"+theme.ID, theme, nil)
}

// DeleteTheme deletes a theme.
func (c *Client) DeleteTheme(ctx context.Context, variant Variant, id string) error {
	return c.delete(ctx, "theme", string(variant)+"/theme/"+id)
}

// ActivateTheme marks a theme active for selection.
func (c *Client) ActivateTheme(ctx context.Context, variant Variant, id string) error {
	return c.post(ctx, "theme", string(variant)+"/theme/"+id+"/activate", nil, nil)
}

// DeactivateAllThemes deactivates every theme at once.
func (c *Client) DeactivateAllThemes(ctx context.Context, variant Variant) error {
	return c.post(ctx, "theme", string(variant)+"/theme/deactivate-all", nil, nil)
}
