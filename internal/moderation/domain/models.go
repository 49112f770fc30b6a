package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Decision is the moderation outcome recorded in the ledger.
type Decision string

const (
	DecisionApproved Decision = "APPROVED"
	DecisionRejected Decision = "REJECTED"
)

// Event is one append-only moderation ledger entry. Rows are written exactly
// once per decision and never updated or deleted; the stored reason label is
// the authoritative rejection context even if the reason table changes later.
type Event struct {
	ID                    snowflake.ID `gorm:"primaryKey" json:"id"`
	OwnerID               string       `gorm:"not null;index" json:"owner_id"`
	PacketID              string       `gorm:"not null;index" json:"packet_id"`
	SupplierGroupID       snowflake.ID `gorm:"not null;index" json:"supplier_group_id"`
	MappingID             snowflake.ID `gorm:"not null;index" json:"mapping_id"`
	Decision              Decision     `gorm:"not null;index" json:"decision"`
	DecidedAt             time.Time    `gorm:"not null;index" json:"decided_at"`
	DecidedBy             string       `gorm:"not null" json:"decided_by"`
	RejectReasonCode      *string      `gorm:"column:reject_reason_code" json:"reject_reason_code,omitempty"`
	RejectReasonLabel     *string      `gorm:"column:reject_reason_label" json:"reject_reason_label,omitempty"`
	RejectCommentInternal *string      `gorm:"column:reject_comment_internal" json:"-"`
}

func (Event) TableName() string {
	return "moderation_events"
}

// HistoryEntry is a ledger row enriched with the current mapping, supplier
// and group context. Enrichment reflects present-day rows, not a snapshot;
// only the reason label is frozen at decision time.
type HistoryEntry struct {
	ID                    snowflake.ID `json:"id"`
	OwnerID               string       `json:"owner_id"`
	PacketID              string       `json:"packet_id"`
	SupplierGroupID       snowflake.ID `json:"supplier_group_id"`
	MappingID             snowflake.ID `json:"mapping_id"`
	Decision              Decision     `json:"decision"`
	DecidedAt             time.Time    `json:"decided_at"`
	DecidedBy             string       `json:"decided_by"`
	RejectReasonLabel     *string      `json:"reject_reason_label,omitempty"`
	RejectCommentInternal *string      `json:"reject_comment_internal,omitempty"`
	StdSupplierRaw        *string      `json:"std_supplier_raw,omitempty"`
	INNNorm               *string      `json:"inn_norm,omitempty"`
	CanonicalSupplier     *string      `json:"canonical_supplier,omitempty"`
	CanonicalINN          *string      `json:"canonical_inn,omitempty"`
	CanonicalCity         *string      `json:"canonical_city,omitempty"`
	MappingStatus         *string      `json:"status,omitempty"`
}
