package domain

import (
	"context"
	"errors"
	"time"
)

type IssueRequest struct {
	OwnerID  string
	PacketID string
	TTL      time.Duration
}

type Service interface {
	// Issue mints a new token for the scope. A zero TTL falls back to the
	// configured default.
	Issue(ctx context.Context, req IssueRequest) (*SellerToken, error)
	// Resolve validates a presented token value and returns its scope.
	Resolve(ctx context.Context, token string) (*SellerToken, error)
	List(ctx context.Context) ([]SellerToken, error)
}

var (
	ErrInvalidScope = errors.New("invalid_token_scope")
	ErrInvalidToken = errors.New("invalid_seller_token")
	ErrTokenExpired = errors.New("seller_token_expired")
)
