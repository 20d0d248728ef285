package api

import (
	"fmt"
	"net/url"

	"billdesk/internal/models"
)

// AuthAPI defines the authentication endpoints. Credential verification and
// token issuance are owned entirely by the backend.
type AuthAPI interface {
	Login(email, password string) (*models.LoginResult, error)
	Register(email, password string) error
	Signout() error
	GetUserDetails() (*models.User, error)
	ForgotPassword(email string) error
	ResetPassword(resetToken, newPassword string) error
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a session token.
func (c *Client) Login(email, password string) (*models.LoginResult, error) {
	var result models.LoginResult
	if err := c.post("auth/login", credentials{Email: email, Password: password}, &result); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return &result, nil
}

// Register creates a new user account.
func (c *Client) Register(email, password string) error {
	if err := c.post("auth/register", credentials{Email: email, Password: password}, nil); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	return nil
}

// Signout invalidates the current session on the backend.
func (c *Client) Signout() error {
	if err := c.get("auth/signout", "", nil); err != nil {
		return fmt.Errorf("signout failed: %w", err)
	}
	return nil
}

// GetUserDetails returns the profile of the signed-in user.
func (c *Client) GetUserDetails() (*models.User, error) {
	var user models.User
	if err := c.get("auth/getUserDetails", "", &user); err != nil {
		return nil, fmt.Errorf("failed to fetch user details: %w", err)
	}
	return &user, nil
}

// ForgotPassword asks the backend to start a password reset for email.
func (c *Client) ForgotPassword(email string) error {
	body := map[string]string{"email": email}
	if err := c.post("auth/forgotPassword", body, nil); err != nil {
		return fmt.Errorf("failed to request password reset: %w", err)
	}
	return nil
}

// ResetPassword completes a password reset using the emailed reset token.
func (c *Client) ResetPassword(resetToken, newPassword string) error {
	query := url.Values{"resettoken": {resetToken}}.Encode()
	var user models.User
	if err := c.get("auth/getUserInfoByResetToken", query, &user); err != nil {
		return fmt.Errorf("invalid reset token: %w", err)
	}
	body := map[string]string{"resettoken": resetToken, "password": newPassword}
	if err := c.post("auth/resetPassword", body, nil); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	return nil
}
