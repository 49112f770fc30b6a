package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/pricedesk/supmap/internal/mapping/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, mapping *domain.SupplierMapping) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO supplier_mappings (
			id, group_id, canonical_supplier_id, owner_id, packet_id, status,
			created_at, updated_at, approved_at, approved_by, rejected_at, rejected_by,
			reject_reason, std_supplier_raw, inn_norm
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		mapping.ID,
		mapping.GroupID,
		mapping.CanonicalSupplierID,
		mapping.OwnerID,
		mapping.PacketID,
		mapping.Status,
		mapping.CreatedAt,
		mapping.UpdatedAt,
		mapping.ApprovedAt,
		mapping.ApprovedBy,
		mapping.RejectedAt,
		mapping.RejectedBy,
		mapping.RejectReason,
		mapping.StdSupplierRaw,
		mapping.INNNorm,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.SupplierMapping, error) {
	var mapping domain.SupplierMapping
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM supplier_mappings WHERE id = ?`, id,
	).Scan(&mapping).Error
	if err != nil {
		return nil, err
	}
	if mapping.ID == 0 {
		return nil, nil
	}
	return &mapping, nil
}

func (r *repo) FindLatestByGroup(ctx context.Context, db *gorm.DB, groupID snowflake.ID) (*domain.SupplierMapping, error) {
	var mapping domain.SupplierMapping
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM supplier_mappings
		 WHERE group_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT 1`,
		groupID,
	).Scan(&mapping).Error
	if err != nil {
		return nil, err
	}
	if mapping.ID == 0 {
		return nil, nil
	}
	return &mapping, nil
}

func (r *repo) ListPending(ctx context.Context, db *gorm.DB) ([]domain.PendingMapping, error) {
	var rows []domain.PendingMapping
	err := db.WithContext(ctx).
		Table("supplier_mappings AS m").
		Select(`m.id, m.owner_id, m.packet_id, m.inn_norm, m.std_supplier_raw, m.status,
			m.canonical_supplier_id, COALESCE(s.supplier, '') AS canonical_supplier, m.created_at`).
		Joins("LEFT JOIN suppliers AS s ON s.id = m.canonical_supplier_id").
		Where("m.status = ?", domain.StatusPending).
		Order("m.created_at ASC, m.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) MarkApproved(ctx context.Context, db *gorm.DB, id snowflake.ID, actor string, at time.Time) (int64, error) {
	result := db.WithContext(ctx).Exec(
		`UPDATE supplier_mappings
		 SET status = ?, approved_at = ?, approved_by = ?, updated_at = ?
		 WHERE id = ? AND status = ?`,
		domain.StatusApproved, at, actor, at, id, domain.StatusPending,
	)
	return result.RowsAffected, result.Error
}

func (r *repo) MarkRejected(ctx context.Context, db *gorm.DB, id snowflake.ID, actor, reasonCode string, at time.Time) (int64, error) {
	result := db.WithContext(ctx).Exec(
		`UPDATE supplier_mappings
		 SET status = ?, rejected_at = ?, rejected_by = ?, reject_reason = ?, updated_at = ?
		 WHERE id = ? AND status = ?`,
		domain.StatusRejected, at, actor, reasonCode, at, id, domain.StatusPending,
	)
	return result.RowsAffected, result.Error
}

func (r *repo) ListApproved(ctx context.Context, db *gorm.DB, filter domain.ListApprovedRequest) ([]domain.ApprovedMapping, error) {
	var rows []domain.ApprovedMapping
	stmt := db.WithContext(ctx).
		Table("supplier_mappings AS m").
		Select(`m.owner_id, m.packet_id, m.inn_norm, m.std_supplier_raw,
			m.canonical_supplier_id, COALESCE(s.supplier, '') AS canonical_supplier,
			COALESCE(m.approved_at, m.updated_at) AS approved_at`).
		Joins("LEFT JOIN suppliers AS s ON s.id = m.canonical_supplier_id").
		Where("m.status = ?", domain.StatusApproved)

	if filter.From != nil {
		stmt = stmt.Where("m.approved_at >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		stmt = stmt.Where("m.approved_at <= ?", filter.To.UTC())
	}
	if filter.OwnerID != "" {
		stmt = stmt.Where("m.owner_id = ?", filter.OwnerID)
	}
	if filter.PacketID != "" {
		stmt = stmt.Where("m.packet_id = ?", filter.PacketID)
	}

	if err := stmt.Order("m.approved_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) CountBySupplier(ctx context.Context, db *gorm.DB, supplierID snowflake.ID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Table("supplier_mappings").
		Where("canonical_supplier_id = ?", supplierID).
		Count(&count).Error
	return count, err
}
