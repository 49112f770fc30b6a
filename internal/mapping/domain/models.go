package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Status is the mapping lifecycle state. PENDING is the only non-terminal
// state: APPROVED and REJECTED are final and a mapping never leaves them.
// Correction after a terminal decision happens by proposing a new mapping.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// Terminal reports whether the state admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// SupplierMapping is a seller's proposal linking one supplier group to one
// canonical directory entry. StdSupplierRaw and INNNorm are copied from the
// group at creation time and deliberately do not track later group updates.
type SupplierMapping struct {
	ID                  snowflake.ID `gorm:"primaryKey" json:"id"`
	GroupID             snowflake.ID `gorm:"not null;index" json:"group_id"`
	CanonicalSupplierID snowflake.ID `gorm:"not null;index" json:"canonical_supplier_id"`
	OwnerID             string       `gorm:"not null;index" json:"owner_id"`
	PacketID            string       `gorm:"not null;index" json:"packet_id"`
	Status              Status       `gorm:"not null;index" json:"status"`
	CreatedAt           time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time    `gorm:"not null" json:"updated_at"`
	ApprovedAt          *time.Time   `json:"approved_at,omitempty"`
	ApprovedBy          *string      `json:"approved_by,omitempty"`
	RejectedAt          *time.Time   `json:"rejected_at,omitempty"`
	RejectedBy          *string      `json:"rejected_by,omitempty"`
	RejectReason        *string      `json:"reject_reason,omitempty"`
	StdSupplierRaw      string       `gorm:"not null" json:"std_supplier_raw"`
	INNNorm             *string      `gorm:"column:inn_norm" json:"inn_norm,omitempty"`
}

func (SupplierMapping) TableName() string {
	return "supplier_mappings"
}

// PendingMapping is a moderation queue row joined with the proposed
// canonical supplier's name.
type PendingMapping struct {
	ID                  snowflake.ID `json:"id"`
	OwnerID             string       `json:"owner_id"`
	PacketID            string       `json:"packet_id"`
	INNNorm             *string      `json:"inn_norm,omitempty"`
	StdSupplierRaw      string       `json:"std_supplier_raw"`
	Status              Status       `json:"status"`
	CanonicalSupplierID snowflake.ID `json:"canonical_supplier_id"`
	CanonicalSupplier   string       `json:"canonical_supplier"`
	CreatedAt           time.Time    `json:"created_at"`
}

// ApprovedMapping is an analytics row for an approved proposal.
type ApprovedMapping struct {
	OwnerID             string       `json:"ownerId"`
	PacketID            string       `json:"packetId"`
	INNNorm             *string      `json:"inn,omitempty"`
	StdSupplierRaw      string       `json:"std_supplier_raw"`
	CanonicalSupplierID snowflake.ID `json:"canonical_supplier_id"`
	CanonicalSupplier   string       `json:"canonical_supplier"`
	ApprovedAt          *time.Time   `json:"approved_at,omitempty"`
}
