package client

import (
	"context"

	"github.com/devpulse/hackhub/pkg/api"
)

// The /accomodations path keeps its historical spelling; the deployed API
// routes it that way.

// ListBookings lists the caller team's accommodation bookings.
func (c *Client) ListBookings(ctx context.Context) ([]api.Accommodation, error) {
	var out []api.Accommodation
	if err := c.get(ctx, "accommodation", "/accomodations", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBooking books accommodation for team members.
func (c *Client) CreateBooking(ctx context.Context, booking api.Accommodation) (*api.Accommodation, error) {
	var out api.Accommodation
	if err := c.post(ctx, "accommodation", "/accomodations", booking, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBooking updates an existing booking.
func (c *Client) UpdateBooking(ctx context.Context, booking api.Accommodation) error {
	return c.put(ctx, "accommodation", "/accomodations/"+booking.ID, booking, nil)
}

// CancelBooking cancels a booking.
func (c *Client) CancelBooking(ctx context.Context, id string) error {
	return c.delete(ctx, "accommodation", "/accomodations/"+id)
}
