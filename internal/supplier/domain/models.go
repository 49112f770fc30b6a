package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Supplier is a canonical directory entry that seller-submitted price list
// rows get mapped onto.
type Supplier struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"column:supplier;not null;index" json:"supplier"`
	INN       string       `gorm:"column:inn;not null;index" json:"inn"`
	KPP       *string      `gorm:"column:kpp" json:"kpp,omitempty"`
	Country   *string      `gorm:"column:country" json:"country,omitempty"`
	City      *string      `gorm:"column:city" json:"city,omitempty"`
	Address   *string      `gorm:"column:address" json:"address,omitempty"`
	URL       *string      `gorm:"column:url" json:"url,omitempty"`
	Branch    *string      `gorm:"column:branch" json:"branch,omitempty"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
