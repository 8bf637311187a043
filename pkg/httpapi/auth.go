package httpapi

import (
	"context"
	"errors"

	"notectl/pkg/core"
)

// Auth wraps the authentication endpoints. Except for sign-in none of them
// need a token, and sign-in is what produces one.
type Auth struct {
	c *Client
}

// NewAuth creates the auth client.
func NewAuth(c *Client) *Auth {
	return &Auth{c: c}
}

// SignUpInput carries the registration fields.
type SignUpInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// SignUp registers a new account. On success the account is pending email
// verification.
func (a *Auth) SignUp(ctx context.Context, in SignUpInput) error {
	_, err := a.c.Post(ctx, "/auth/sign-up", in)
	return err
}

// SignIn exchanges credentials for a bearer token. A 2xx response without
// an access token in the envelope is a contract violation, not a login
// failure, and is reported as a DecodeError.
func (a *Auth) SignIn(ctx context.Context, email, password string) (string, error) {
	raw, err := a.c.Post(ctx, "/auth/sign-in", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	var payload struct {
		AccessToken string `json:"accessToken"`
	}
	if err := unwrap(raw, &payload); err != nil {
		return "", err
	}
	if payload.AccessToken == "" {
		return "", &core.DecodeError{Err: errors.New("response carried no access token")}
	}
	return payload.AccessToken, nil
}

// VerifyEmail confirms a registration with the emailed token.
func (a *Auth) VerifyEmail(ctx context.Context, verificationToken string) error {
	_, err := a.c.Post(ctx, "/auth/verify-email", map[string]string{
		"verificationToken": verificationToken,
	})
	return err
}

// ResendVerification asks the backend to send a fresh verification email.
func (a *Auth) ResendVerification(ctx context.Context, email string) error {
	_, err := a.c.Post(ctx, "/auth/resend-verification", map[string]string{
		"email": email,
	})
	return err
}

// ForgotPassword starts the password recovery flow.
func (a *Auth) ForgotPassword(ctx context.Context, email string) error {
	_, err := a.c.Post(ctx, "/auth/forgot-password", map[string]string{
		"email": email,
	})
	return err
}

// ResetPassword completes the password recovery flow.
func (a *Auth) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	_, err := a.c.Post(ctx, "/auth/reset-password", map[string]string{
		"resetToken":  resetToken,
		"newPassword": newPassword,
	})
	return err
}
