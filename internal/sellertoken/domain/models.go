package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// SellerToken grants access to one (owner, packet) submission scope.
// Token values are opaque UUIDs handed out out-of-band.
type SellerToken struct {
	ID        snowflake.ID `gorm:"column:id;primaryKey" json:"id"`
	Token     string       `gorm:"column:token;uniqueIndex" json:"token"`
	OwnerID   string       `gorm:"column:owner_id" json:"owner_id"`
	PacketID  string       `gorm:"column:packet_id" json:"packet_id"`
	ExpiresAt time.Time    `gorm:"column:expires_at" json:"expires_at"`
	CreatedAt time.Time    `gorm:"column:created_at" json:"created_at"`
}

func (SellerToken) TableName() string {
	return "seller_tokens"
}

func (t SellerToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
