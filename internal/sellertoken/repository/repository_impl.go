package repository

import (
	"context"

	"github.com/pricedesk/supmap/internal/sellertoken/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, token *domain.SellerToken) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO seller_tokens (id, token, owner_id, packet_id, expires_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		token.ID,
		token.Token,
		token.OwnerID,
		token.PacketID,
		token.ExpiresAt,
		token.CreatedAt,
	).Error
}

func (r *repo) FindByToken(ctx context.Context, db *gorm.DB, value string) (*domain.SellerToken, error) {
	var token domain.SellerToken
	err := db.WithContext(ctx).Raw(
		`SELECT id, token, owner_id, packet_id, expires_at, created_at
		 FROM seller_tokens WHERE token = ?`,
		value,
	).Scan(&token).Error
	if err != nil {
		return nil, err
	}
	if token.ID == 0 {
		return nil, nil
	}
	return &token, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.SellerToken, error) {
	var tokens []domain.SellerToken
	err := db.WithContext(ctx).Raw(
		`SELECT id, token, owner_id, packet_id, expires_at, created_at
		 FROM seller_tokens
		 ORDER BY created_at DESC, id DESC`,
	).Scan(&tokens).Error
	if err != nil {
		return nil, err
	}
	return tokens, nil
}
