package domain

import (
	"context"
	"errors"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Service interface {
	// Login checks credentials and returns a signed session token.
	Login(ctx context.Context, req LoginRequest) (string, error)
	// Verify checks a session token and returns the admin username.
	Verify(ctx context.Context, token string) (string, error)
}

var (
	ErrInvalidCredentials = errors.New("invalid_admin_credentials")
	ErrNotAuthenticated   = errors.New("admin_not_authenticated")
	ErrInvalidSession     = errors.New("invalid_admin_session")
	ErrSessionExpired     = errors.New("admin_session_expired")
)
