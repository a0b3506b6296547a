package client

import (
	"context"

	"github.com/devpulse/hackhub/pkg/api"
)

// CurrentUser fetches the authenticated identity with its embedded team-info
// payload. The team shape differs by role; pkg/team interprets it.
func (c *Client) CurrentUser(ctx context.Context) (*api.CurrentUserResponse, error) {
	var out api.CurrentUserResponse
	if err := c.get(ctx, "user", "/user/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUserByID fetches a single user.
func (c *Client) GetUserByID(ctx context.Context, id string) (*api.Identity, error) {
	var out api.Identity
	if err := c.get(ctx, "user", "/user/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile updates the caller's profile fields.
func (c *Client) UpdateProfile(ctx context.Context, identity api.Identity) error {
	return c.put(ctx, "user", "/user/me", identity, nil)
}

// AddTeamMember adds a member to the caller's team.
func (c *Client) AddTeamMember(ctx context.Context, member api.TeamMember) (*api.TeamMember, error) {
	var out api.TeamMember
	if err := c.post(ctx, "user", "/user/team/members", member, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTeamMember updates a member of the caller's team.
func (c *Client) UpdateTeamMember(ctx context.Context, member api.TeamMember) error {
	return c.put(ctx, "user", "/user/team/members/"+member.ID, member, nil)
}

// RemoveTeamMember removes a member from the caller's team.
func (c *Client) RemoveTeamMember(ctx context.Context, memberID string) error {
	return c.delete(ctx, "user", "/user/team/members/"+memberID)
}

// AcceptTerms records the caller's acceptance of the event terms.
func (c *Client) AcceptTerms(ctx context.Context) error {
	return c.post(ctx, "user", "/user/terms", nil, nil)
}
