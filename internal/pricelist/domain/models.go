package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// PriceItem is one imported price list row. Rows are append-only; the
// normalized INN and the invalid flag are computed once at import time.
type PriceItem struct {
	ID          snowflake.ID `gorm:"column:id;primaryKey" json:"id"`
	OwnerID     string       `gorm:"column:owner_id" json:"owner_id"`
	PacketID    string       `gorm:"column:packet_id" json:"packet_id"`
	INN         string       `gorm:"column:inn" json:"inn"`
	INNNorm     *string      `gorm:"column:inn_norm" json:"inn_norm,omitempty"`
	INNInvalid  bool         `gorm:"column:inn_invalid" json:"inn_invalid"`
	StdSupplier string       `gorm:"column:std_supplier" json:"std_supplier"`
	ItemID      *string      `gorm:"column:item_id" json:"item_id,omitempty"`
	GroupID     snowflake.ID `gorm:"column:group_id" json:"group_id"`
	CreatedAt   time.Time    `gorm:"column:created_at" json:"created_at"`
}

func (PriceItem) TableName() string {
	return "price_items"
}

// SupplierGroup aggregates price items that share the same
// (owner, packet, inn_norm, std_supplier_raw) key. Uniqueness of the
// key is enforced by the uq_supplier_groups_key index.
type SupplierGroup struct {
	ID             snowflake.ID `gorm:"column:id;primaryKey" json:"id"`
	OwnerID        string       `gorm:"column:owner_id" json:"owner_id"`
	PacketID       string       `gorm:"column:packet_id" json:"packet_id"`
	INNNorm        *string      `gorm:"column:inn_norm" json:"inn_norm,omitempty"`
	StdSupplierRaw string       `gorm:"column:std_supplier_raw" json:"std_supplier_raw"`
	ItemsCount     int64        `gorm:"column:items_count" json:"items_count"`
	INNInvalid     bool         `gorm:"column:inn_invalid" json:"inn_invalid"`
	CreatedAt      time.Time    `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"column:updated_at" json:"updated_at"`
}

func (SupplierGroup) TableName() string {
	return "supplier_groups"
}

// GroupKey identifies a supplier group within one submission scope.
type GroupKey struct {
	OwnerID        string
	PacketID       string
	INNNorm        *string
	StdSupplierRaw string
}
