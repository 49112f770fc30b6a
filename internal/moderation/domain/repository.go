package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/pricedesk/supmap/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	// Insert appends one event. Callers pass their transaction handle so a
	// mapping state change and its ledger entry commit together.
	Insert(ctx context.Context, db *gorm.DB, event *Event) error
	LatestRejectedForGroup(ctx context.Context, db *gorm.DB, groupID snowflake.ID) (*Event, error)
	History(ctx context.Context, db *gorm.DB, query string, page pagination.Pagination) ([]HistoryEntry, error)
	CountByMapping(ctx context.Context, db *gorm.DB, mappingID snowflake.ID) (int64, error)
}
