package rest

import (
	"context"

	"github.com/plantdesk/portalctl/internal/core/domain"
	"github.com/plantdesk/portalctl/internal/core/ports"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token                 string       `json:"token"`
	User                  *domain.User `json:"user"`
	RequirePasswordChange bool         `json:"requirePasswordChange"`
}

func (c *Client) Login(ctx context.Context, creds ports.Credentials) (*ports.LoginResult, error) {
	var resp loginResponse
	err := c.postJSON(ctx, "/auth/login", loginRequest{Email: creds.Email, Password: creds.Password}, &resp)
	if err != nil {
		return nil, err
	}
	return &ports.LoginResult{
		Token:                 resp.Token,
		RequirePasswordChange: resp.RequirePasswordChange,
		User:                  resp.User,
	}, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.postJSON(ctx, "/auth/logout", nil, nil)
}

func (c *Client) LogoutAll(ctx context.Context) error {
	return c.postJSON(ctx, "/auth/logout-all", nil, nil)
}

func (c *Client) Sessions(ctx context.Context) ([]domain.UserToken, error) {
	var out []domain.UserToken
	if err := c.getJSON(ctx, "/auth/sessions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := c.getJSON(ctx, "/auth/profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type registerRequest struct {
	FullName     string `json:"fullName"`
	TEID         string `json:"teid"`
	Email        string `json:"email"`
	Password     string `json:"password,omitempty"`
	PlantID      string `json:"plantId"`
	IsSuperAdmin bool   `json:"isSuperAdmin"`
}

func (c *Client) RegisterAdmin(ctx context.Context, input ports.RegisterAdminInput) (*domain.User, error) {
	var out domain.User
	req := registerRequest{
		FullName:     input.FullName,
		TEID:         input.TEID,
		Email:        input.Email,
		Password:     input.Password,
		PlantID:      input.PlantID,
		IsSuperAdmin: input.IsSuperAdmin,
	}
	if err := c.postJSON(ctx, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (c *Client) ChangePassword(ctx context.Context, input ports.ChangePasswordInput) error {
	req := changePasswordRequest{
		CurrentPassword: input.CurrentPassword,
		NewPassword:     input.NewPassword,
		ConfirmPassword: input.ConfirmPassword,
	}
	return c.postJSON(ctx, "/auth/change-password", req, nil)
}

func (c *Client) Admins(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := c.getJSON(ctx, "/admin/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminsByPlant(ctx context.Context, plantID string) ([]domain.User, error) {
	var out []domain.User
	if err := c.getJSON(ctx, "/admin/users/plant/"+plantID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteAdmin(ctx context.Context, id string) error {
	return c.delete(ctx, "/admin/users/"+id)
}

type resetPasswordResponse struct {
	NewPassword string `json:"newPassword"`
}

func (c *Client) ResetPassword(ctx context.Context, userID string) (*ports.ResetPasswordResult, error) {
	var out resetPasswordResponse
	if err := c.postJSON(ctx, "/admin/reset-password/"+userID, nil, &out); err != nil {
		return nil, err
	}
	return &ports.ResetPasswordResult{NewPassword: out.NewPassword}, nil
}
