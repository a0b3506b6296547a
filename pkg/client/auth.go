package client

import (
	"context"

	"github.com/devpulse/hackhub/pkg/api"
)

// Auth operations. Each function issues exactly one HTTP request and returns
// the raw decoded response; session writes are the caller's responsibility.

// SendOTP requests a one-time passcode for the email.
func (c *Client) SendOTP(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.post(ctx, "auth", "/auth/otp/send", body, nil)
}

// VerifyOTP exchanges the passcode for a session token.
func (c *Client) VerifyOTP(ctx context.Context, email, code string) (*api.LoginResponse, error) {
	body := map[string]string{"email": email, "code": code}
	var out api.LoginResponse
	if err := c.post(ctx, "auth", "/auth/otp/verify", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new participant account.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.LoginResponse, error) {
	var out api.LoginResponse
	if err := c.post(ctx, "auth", "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out api.LoginResponse
	if err := c.post(ctx, "auth", "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminLogin authenticates an admin or sub-admin account.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out api.LoginResponse
	if err := c.post(ctx, "auth", "/auth/admin/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the session server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "auth", "/auth/logout", nil, nil)
}

// Refresh exchanges the current token for a fresh one.
func (c *Client) Refresh(ctx context.Context) (*api.LoginResponse, error) {
	var out api.LoginResponse
	if err := c.post(ctx, "auth", "/auth/refresh", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitPayment submits a payment reference for verification.
func (c *Client) SubmitPayment(ctx context.Context, req api.PaymentRequest) error {
	return c.post(ctx, "auth", "/auth/payment", req, nil)
}

// PaymentStatus queries the verification state of the caller's payment.
func (c *Client) PaymentStatus(ctx context.Context) (*api.PaymentStatus, error) {
	var out api.PaymentStatus
	if err := c.get(ctx, "auth", "/auth/payment/status", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
