package domain

import (
	"context"

	"github.com/pricedesk/supmap/pkg/db/pagination"
)

type HistoryRequest struct {
	pagination.Pagination
	Query string
}

type Service interface {
	History(ctx context.Context, req HistoryRequest) ([]HistoryEntry, error)
	Reasons(ctx context.Context) []Reason
}
