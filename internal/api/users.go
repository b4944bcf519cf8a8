package api

import (
	"context"
	"net/url"

	"github.com/grocey/grocey-cli/internal/model"
)

// UsersClient covers authentication and the profile resource.
type UsersClient struct {
	c *Client
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and register. The token is opaque; the
// embedded user may be absent depending on server version.
type AuthResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user,omitempty"`
}

// ProfileUpdate carries a partial profile edit. Empty fields are omitted so
// the server keeps the current values.
type ProfileUpdate struct {
	Name     string          `json:"name,omitempty"`
	Surname  string          `json:"surname,omitempty"`
	Email    string          `json:"email,omitempty"`
	Metadata *model.Metadata `json:"metadata,omitempty"`
}

// Register creates an account. Requires no token.
func (u *UsersClient) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := u.c.Post(ctx, "/users/register", false, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges credentials for a bearer token. Requires no token.
func (u *UsersClient) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	if err := u.c.Post(ctx, "/users/login", false, loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyAccount confirms a registration with the emailed verification code.
func (u *UsersClient) VerifyAccount(ctx context.Context, code string) error {
	body := struct {
		Code string `json:"code"`
	}{Code: code}
	return u.c.Post(ctx, "/users/verify-account", false, body, nil)
}

// Logout invalidates the current token server-side.
func (u *UsersClient) Logout(ctx context.Context) error {
	return u.c.Post(ctx, "/users/logout", true, nil, nil)
}

// ForgotPassword asks the server to mail a reset token. The email travels in
// the query string, matching the server route.
func (u *UsersClient) ForgotPassword(ctx context.Context, email string) error {
	return u.c.Post(ctx, "/users/forgot-password?email="+url.QueryEscape(email), false, nil, nil)
}

// ResetPassword redeems a reset token for a new password.
func (u *UsersClient) ResetPassword(ctx context.Context, token, password string) error {
	body := struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}{Token: token, Password: password}
	return u.c.Post(ctx, "/users/reset-password", false, body, nil)
}

// ChangePassword rotates the password of the signed-in user.
func (u *UsersClient) ChangePassword(ctx context.Context, current, next string) error {
	body := struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}{CurrentPassword: current, NewPassword: next}
	return u.c.Post(ctx, "/users/change-password", true, body, nil)
}

// SendVerification re-sends the account verification email.
func (u *UsersClient) SendVerification(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{Email: email}
	return u.c.Post(ctx, "/users/send-verification", false, body, nil)
}

// Profile fetches the signed-in user.
func (u *UsersClient) Profile(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := u.c.Get(ctx, "/users/profile", true, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile submits a partial profile edit and returns the server's view.
func (u *UsersClient) UpdateProfile(ctx context.Context, update ProfileUpdate) (*model.User, error) {
	var user model.User
	if err := u.c.Put(ctx, "/users/profile", true, update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteProfile removes the account of the signed-in user.
func (u *UsersClient) DeleteProfile(ctx context.Context) error {
	return u.c.Delete(ctx, "/users/profile", true)
}
