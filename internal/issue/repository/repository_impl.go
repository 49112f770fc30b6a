package repository

import (
	"context"

	"github.com/pricedesk/supmap/internal/issue/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, issue *domain.SellerIssue) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO seller_issues (id, owner_id, packet_id, group_id, inn, inn_norm, std_supplier, comment, metadata, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		issue.ID,
		issue.OwnerID,
		issue.PacketID,
		issue.GroupID,
		issue.INN,
		issue.INNNorm,
		issue.StdSupplier,
		issue.Comment,
		issue.Metadata,
		issue.CreatedAt,
	).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.SellerIssue, error) {
	var issues []domain.SellerIssue
	err := db.WithContext(ctx).Raw(
		`SELECT id, owner_id, packet_id, group_id, inn, inn_norm, std_supplier, comment, metadata, created_at
		 FROM seller_issues
		 ORDER BY created_at DESC, id DESC`,
	).Scan(&issues).Error
	if err != nil {
		return nil, err
	}
	return issues, nil
}
