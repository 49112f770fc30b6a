package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, token *SellerToken) error
	FindByToken(ctx context.Context, db *gorm.DB, token string) (*SellerToken, error)
	List(ctx context.Context, db *gorm.DB) ([]SellerToken, error)
}
