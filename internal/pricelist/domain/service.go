package domain

import (
	"context"
	"errors"
)

// ImportRow mirrors one element of the import payload. Field names
// follow the upstream exporter contract.
type ImportRow struct {
	OwnerID     string  `json:"ownerId" binding:"required"`
	PacketID    string  `json:"packetId" binding:"required"`
	INN         string  `json:"inn"`
	StdSupplier string  `json:"std_supplier" binding:"required"`
	ItemID      *string `json:"itemId,omitempty"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
}

type Service interface {
	ImportBatch(ctx context.Context, rows []ImportRow) (ImportResponse, error)
}

var ErrInvalidRow = errors.New("invalid_import_row")
