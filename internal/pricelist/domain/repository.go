package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	InsertItem(ctx context.Context, db *gorm.DB, item *PriceItem) error
	InsertGroup(ctx context.Context, db *gorm.DB, group *SupplierGroup) error
	FindGroupByKey(ctx context.Context, db *gorm.DB, key GroupKey) (*SupplierGroup, error)
	FindGroupByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*SupplierGroup, error)
	// BumpGroup increments items_count and refreshes the invalid flag
	// and updated_at on an existing group.
	BumpGroup(ctx context.Context, db *gorm.DB, id snowflake.ID, innInvalid bool) error
	ListGroupsByScope(ctx context.Context, db *gorm.DB, ownerID, packetID string) ([]SupplierGroup, error)
}
