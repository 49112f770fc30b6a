package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, issue *SellerIssue) error
	// List returns issues newest-first for the admin review queue.
	List(ctx context.Context, db *gorm.DB) ([]SellerIssue, error)
}
