package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// SellerIssue is a free-form complaint a seller files against one of
// their groups when no canonical supplier fits. The group's key fields
// are snapshotted so the issue stays readable after re-imports.
type SellerIssue struct {
	ID          snowflake.ID      `gorm:"column:id;primaryKey" json:"id"`
	OwnerID     string            `gorm:"column:owner_id" json:"owner_id"`
	PacketID    string            `gorm:"column:packet_id" json:"packet_id"`
	GroupID     *snowflake.ID     `gorm:"column:group_id" json:"group_id,omitempty"`
	INN         *string           `gorm:"column:inn" json:"inn,omitempty"`
	INNNorm     *string           `gorm:"column:inn_norm" json:"inn_norm,omitempty"`
	StdSupplier *string           `gorm:"column:std_supplier" json:"std_supplier,omitempty"`
	Comment     string            `gorm:"column:comment" json:"comment"`
	Metadata    datatypes.JSONMap `gorm:"column:metadata" json:"metadata,omitempty"`
	CreatedAt   time.Time         `gorm:"column:created_at" json:"created_at"`
}

func (SellerIssue) TableName() string {
	return "seller_issues"
}
