package repository

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/pricedesk/supmap/internal/moderation/domain"
	"github.com/pricedesk/supmap/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, event *domain.Event) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO moderation_events (
			id, owner_id, packet_id, supplier_group_id, mapping_id, decision,
			decided_at, decided_by, reject_reason_code, reject_reason_label, reject_comment_internal
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID,
		event.OwnerID,
		event.PacketID,
		event.SupplierGroupID,
		event.MappingID,
		event.Decision,
		event.DecidedAt,
		event.DecidedBy,
		event.RejectReasonCode,
		event.RejectReasonLabel,
		event.RejectCommentInternal,
	).Error
}

func (r *repo) LatestRejectedForGroup(ctx context.Context, db *gorm.DB, groupID snowflake.ID) (*domain.Event, error) {
	var event domain.Event
	err := db.WithContext(ctx).Raw(
		`SELECT id, owner_id, packet_id, supplier_group_id, mapping_id, decision,
			decided_at, decided_by, reject_reason_code, reject_reason_label, reject_comment_internal
		 FROM moderation_events
		 WHERE supplier_group_id = ? AND decision = ?
		 ORDER BY decided_at DESC, id DESC
		 LIMIT 1`,
		groupID,
		domain.DecisionRejected,
	).Scan(&event).Error
	if err != nil {
		return nil, err
	}
	if event.ID == 0 {
		return nil, nil
	}
	return &event, nil
}

func (r *repo) History(ctx context.Context, db *gorm.DB, query string, page pagination.Pagination) ([]domain.HistoryEntry, error) {
	var entries []domain.HistoryEntry
	stmt := db.WithContext(ctx).
		Table("moderation_events AS ev").
		Select(`ev.id, ev.owner_id, ev.packet_id, ev.supplier_group_id, ev.mapping_id,
			ev.decision, ev.decided_at, ev.decided_by, ev.reject_reason_label, ev.reject_comment_internal,
			g.std_supplier_raw AS std_supplier_raw, g.inn_norm AS inn_norm,
			s.supplier AS canonical_supplier, s.inn AS canonical_inn, s.city AS canonical_city,
			m.status AS mapping_status`).
		Joins("LEFT JOIN supplier_mappings AS m ON m.id = ev.mapping_id").
		Joins("LEFT JOIN suppliers AS s ON s.id = m.canonical_supplier_id").
		Joins("LEFT JOIN supplier_groups AS g ON g.id = ev.supplier_group_id")

	if needle := strings.TrimSpace(query); needle != "" {
		pattern := "%" + strings.ToLower(needle) + "%"
		stmt = stmt.Where("LOWER(ev.owner_id) LIKE ? OR LOWER(ev.packet_id) LIKE ?", pattern, pattern)
	}

	stmt = page.Apply(stmt.Order("ev.decided_at DESC, ev.id DESC"))
	if err := stmt.Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repo) CountByMapping(ctx context.Context, db *gorm.DB, mappingID snowflake.ID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Table("moderation_events").
		Where("mapping_id = ?", mappingID).
		Count(&count).Error
	return count, err
}
