package client

import (
	"context"
	"net/url"

	"github.com/devpulse/hackhub/pkg/api"
)

// GetPermissions fetches the capability tokens granted to an admin account.
// This is the fetch behind the permission resolver's poll.
func (c *Client) GetPermissions(ctx context.Context, email string) ([]string, error) {
	var out struct {
		Permissions []string `json:"permissions"`
	}
	path := "/s/admin/permissions?email=" + url.QueryEscape(email)
	if err := c.get(ctx, "admin", path, &out); err != nil {
		return nil, err
	}
	return out.Permissions, nil
}

// SetPermissions replaces the capability tokens granted to an admin account.
func (c *Client) SetPermissions(ctx context.Context, email string, permissions []string) error {
	body := map[string]interface{}{"email": email, "permissions": permissions}
	return c.put(ctx, "admin", "/s/admin/permissions", body, nil)
}

// ListSubAdmins lists sub-admin accounts.
func (c *Client) ListSubAdmins(ctx context.Context) ([]api.SubAdmin, error) {
	var out []api.SubAdmin
	if err := c.get(ctx, "admin", "/admin/subadmins", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSubAdmin creates a sub-admin account with its initial capabilities.
func (c *Client) CreateSubAdmin(ctx context.Context, subAdmin api.SubAdmin) (*api.SubAdmin, error) {
	var out api.SubAdmin
	if err := c.post(ctx, "admin", "/admin/subadmins", subAdmin, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSubAdmin updates a sub-admin account.
func (c *Client) UpdateSubAdmin(ctx context.Context, subAdmin api.SubAdmin) error {
	return c.put(ctx, "admin", "/admin/subadmins/"+subAdmin.ID, subAdmin, nil)
}

// DeleteSubAdmin removes a sub-admin account.
func (c *Client) DeleteSubAdmin(ctx context.Context, id string) error {
	return c.delete(ctx, "admin", "/admin/subadmins/"+id)
}

// ListTeams lists all registered teams (admin view).
func (c *Client) ListTeams(ctx context.Context, variant Variant) ([]api.Team, error) {
	var out []api.Team
	if err := c.get(ctx, "admin", string(variant)+"/teams", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// VerifyPayment marks a team's payment as verified.
func (c *Client) VerifyPayment(ctx context.Context, variant Variant, teamID string) error {
	return c.post(ctx, "admin", string(variant)+"/teams/"+teamID+"/verify-payment", nil, nil)
}
