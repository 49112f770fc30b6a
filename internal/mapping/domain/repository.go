package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, mapping *SupplierMapping) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*SupplierMapping, error)
	// FindLatestByGroup returns the most recently created mapping for the
	// group, which is the authoritative one for status resolution.
	FindLatestByGroup(ctx context.Context, db *gorm.DB, groupID snowflake.ID) (*SupplierMapping, error)
	// ListPending returns the moderation queue oldest-first.
	ListPending(ctx context.Context, db *gorm.DB) ([]PendingMapping, error)
	// MarkApproved flips a PENDING mapping to APPROVED and reports rows
	// affected; zero means the mapping was missing or already terminal.
	MarkApproved(ctx context.Context, db *gorm.DB, id snowflake.ID, actor string, at time.Time) (int64, error)
	// MarkRejected behaves like MarkApproved for the REJECTED transition.
	MarkRejected(ctx context.Context, db *gorm.DB, id snowflake.ID, actor, reasonCode string, at time.Time) (int64, error)
	ListApproved(ctx context.Context, db *gorm.DB, filter ListApprovedRequest) ([]ApprovedMapping, error)
	CountBySupplier(ctx context.Context, db *gorm.DB, supplierID snowflake.ID) (int64, error)
}
