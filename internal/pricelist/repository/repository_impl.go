package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/pricedesk/supmap/internal/pricelist/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertItem(ctx context.Context, db *gorm.DB, item *domain.PriceItem) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO price_items (id, owner_id, packet_id, inn, inn_norm, inn_invalid, std_supplier, item_id, group_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID,
		item.OwnerID,
		item.PacketID,
		item.INN,
		item.INNNorm,
		item.INNInvalid,
		item.StdSupplier,
		item.ItemID,
		item.GroupID,
		item.CreatedAt,
	).Error
}

func (r *repo) InsertGroup(ctx context.Context, db *gorm.DB, group *domain.SupplierGroup) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO supplier_groups (id, owner_id, packet_id, inn_norm, std_supplier_raw, items_count, inn_invalid, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		group.ID,
		group.OwnerID,
		group.PacketID,
		group.INNNorm,
		group.StdSupplierRaw,
		group.ItemsCount,
		group.INNInvalid,
		group.CreatedAt,
		group.UpdatedAt,
	).Error
}

func (r *repo) FindGroupByKey(ctx context.Context, db *gorm.DB, key domain.GroupKey) (*domain.SupplierGroup, error) {
	var group domain.SupplierGroup
	// COALESCE collapses NULL inn_norm into '' so groups without an INN
	// still match by key. The normalizer never produces an empty string,
	// so '' cannot collide with a real value.
	err := db.WithContext(ctx).Raw(
		`SELECT id, owner_id, packet_id, inn_norm, std_supplier_raw, items_count, inn_invalid, created_at, updated_at
		 FROM supplier_groups
		 WHERE owner_id = ? AND packet_id = ? AND COALESCE(inn_norm, '') = COALESCE(?, '') AND std_supplier_raw = ?`,
		key.OwnerID,
		key.PacketID,
		key.INNNorm,
		key.StdSupplierRaw,
	).Scan(&group).Error
	if err != nil {
		return nil, err
	}
	if group.ID == 0 {
		return nil, nil
	}
	return &group, nil
}

func (r *repo) FindGroupByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.SupplierGroup, error) {
	var group domain.SupplierGroup
	err := db.WithContext(ctx).Raw(
		`SELECT id, owner_id, packet_id, inn_norm, std_supplier_raw, items_count, inn_invalid, created_at, updated_at
		 FROM supplier_groups WHERE id = ?`,
		id,
	).Scan(&group).Error
	if err != nil {
		return nil, err
	}
	if group.ID == 0 {
		return nil, nil
	}
	return &group, nil
}

func (r *repo) BumpGroup(ctx context.Context, db *gorm.DB, id snowflake.ID, innInvalid bool) error {
	return db.WithContext(ctx).Exec(
		`UPDATE supplier_groups
		 SET items_count = items_count + 1, inn_invalid = ?, updated_at = ?
		 WHERE id = ?`,
		innInvalid,
		time.Now().UTC(),
		id,
	).Error
}

func (r *repo) ListGroupsByScope(ctx context.Context, db *gorm.DB, ownerID, packetID string) ([]domain.SupplierGroup, error) {
	var groups []domain.SupplierGroup
	err := db.WithContext(ctx).Raw(
		`SELECT id, owner_id, packet_id, inn_norm, std_supplier_raw, items_count, inn_invalid, created_at, updated_at
		 FROM supplier_groups
		 WHERE owner_id = ? AND packet_id = ?
		 ORDER BY created_at ASC, id ASC`,
		ownerID,
		packetID,
	).Scan(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}
