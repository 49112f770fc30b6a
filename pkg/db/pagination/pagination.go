package pagination

import "gorm.io/gorm"

const (
	DefaultLimit = 50
	MaxLimit     = 250
)

type Pagination struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// Normalize clamps limit/offset into the allowed window.
func (p Pagination) Normalize() Pagination {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

func (p Pagination) Apply(stmt *gorm.DB) *gorm.DB {
	p = p.Normalize()
	return stmt.Limit(p.Limit).Offset(p.Offset)
}
