package client

import (
	"context"
	"net/url"

	"github.com/devpulse/hackhub/pkg/api"
)

// ListProblems lists problem statements, optionally filtered by theme.
func (c *Client) ListProblems(ctx context.Context, themeID string) ([]api.ProblemStatement, error) {
	path := "/problem"
	if themeID != "" {
		path += "?theme_id=" + url.QueryEscape(themeID)
	}
	var out []api.ProblemStatement
	if err := c.get(ctx, "problem", path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProblem fetches a single problem statement.
func (c *Client) GetProblem(ctx context.Context, id string) (*api.ProblemStatement, error) {
	var out api.ProblemStatement
	if err := c.get(ctx, "problem", "/problem/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SelectProblem records a team-scoped problem statement selection.
func (c *Client) SelectProblem(ctx context.Context, problemID, teamID string) error {
	body := map[string]string{"team_id": teamID}
	return c.post(ctx, "problem", "/problem/"+problemID+"/select", body, nil)
}

// CreateProblem creates a problem statement through the given admin route.
func (c *Client) CreateProblem(ctx context.Context, variant Variant, problem api.ProblemStatement) (*api.ProblemStatement, error) {
	var out api.ProblemStatement
	if err := c.post(ctx, "problem", string(variant)+"/problem", problem, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProblem updates a problem statement.
func (c *Client) UpdateProblem(ctx context.Context, variant Variant, problem api.ProblemStatement) error {
	return c.put(ctx, "problem", string(variant)+"/problem/"+problem.ID, problem, nil)
}

// DeleteProblem deletes a problem statement.
func (c *Client) DeleteProblem(ctx context.Context, variant Variant, id string) error {
	return c.delete(ctx, "problem", string(variant)+"/problem/"+id)
}
