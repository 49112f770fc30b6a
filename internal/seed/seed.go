package seed

import (
	"context"
	"errors"
	"fmt"

	pricelistdomain "github.com/pricedesk/supmap/internal/pricelist/domain"
	sellertokendomain "github.com/pricedesk/supmap/internal/sellertoken/domain"
	supplierdomain "github.com/pricedesk/supmap/internal/supplier/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type demoBatch struct {
	ownerID  string
	packetID string
	rows     []demoRows
}

type demoRows struct {
	inn         string
	stdSupplier string
	itemPrefix  string
	count       int
}

var demoSuppliers = []supplierdomain.CreateSupplierRequest{
	{Name: "Росско", INN: "7701234567", City: ptr("Москва"), Country: ptr("RU")},
	{Name: "Берг", INN: "7807654321", City: ptr("Санкт-Петербург"), Country: ptr("RU")},
}

var demoBatches = []demoBatch{
	{
		ownerID:  "demo-owner",
		packetID: "demo-packet",
		rows: []demoRows{
			{inn: "7701234567", stdSupplier: "Росско филиал Москва", itemPrefix: "demo-r", count: 100},
			{inn: "7807654321", stdSupplier: "Берг Поставка", itemPrefix: "demo-b", count: 50},
		},
	},
	{
		ownerID:  "owner-2",
		packetID: "packet-2",
		rows: []demoRows{
			{inn: "7701234567", stdSupplier: "Росско Региональный", itemPrefix: "o2-r", count: 60},
			{inn: "7807654321", stdSupplier: "Берг Север", itemPrefix: "o2-b", count: 40},
		},
	},
	{
		ownerID:  "owner-3",
		packetID: "packet-3",
		rows: []demoRows{
			{inn: "7701234567", stdSupplier: "Росско Центр", itemPrefix: "o3-r", count: 30},
			{inn: "7807654321", stdSupplier: "Берг Юг", itemPrefix: "o3-b", count: 20},
		},
	},
}

// EnsureDemoData loads the demo suppliers, price items, and one seller
// token per scope. It is idempotent: scopes that already have groups
// are skipped.
func EnsureDemoData(
	ctx context.Context,
	db *gorm.DB,
	log *zap.Logger,
	suppliers supplierdomain.Service,
	groups pricelistdomain.Repository,
	importer pricelistdomain.Service,
	tokens sellertokendomain.Service,
) error {
	for _, req := range demoSuppliers {
		if _, err := suppliers.Create(ctx, req); err != nil {
			if errors.Is(err, supplierdomain.ErrDuplicate) {
				continue
			}
			return err
		}
	}

	for _, batch := range demoBatches {
		existing, err := groups.ListGroupsByScope(ctx, db, batch.ownerID, batch.packetID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			continue
		}

		var rows []pricelistdomain.ImportRow
		for _, spec := range batch.rows {
			for i := 0; i < spec.count; i++ {
				itemID := fmt.Sprintf("%s-%d", spec.itemPrefix, i)
				rows = append(rows, pricelistdomain.ImportRow{
					OwnerID:     batch.ownerID,
					PacketID:    batch.packetID,
					INN:         spec.inn,
					StdSupplier: spec.stdSupplier,
					ItemID:      &itemID,
				})
			}
		}
		if _, err := importer.ImportBatch(ctx, rows); err != nil {
			return err
		}

		token, err := tokens.Issue(ctx, sellertokendomain.IssueRequest{
			OwnerID:  batch.ownerID,
			PacketID: batch.packetID,
		})
		if err != nil {
			return err
		}
		log.Info("demo seller token",
			zap.String("owner_id", batch.ownerID),
			zap.String("packet_id", batch.packetID),
			zap.String("link", "/s/"+token.Token),
		)
	}
	return nil
}

func ptr(s string) *string {
	return &s
}
