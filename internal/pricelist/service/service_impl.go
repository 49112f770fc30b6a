package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/pricedesk/supmap/internal/inn"
	"github.com/pricedesk/supmap/internal/pricelist/domain"
	"github.com/pricedesk/supmap/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("pricelist.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) ImportBatch(ctx context.Context, rows []domain.ImportRow) (domain.ImportResponse, error) {
	imported := 0
	for _, row := range rows {
		if strings.TrimSpace(row.OwnerID) == "" ||
			strings.TrimSpace(row.PacketID) == "" ||
			strings.TrimSpace(row.StdSupplier) == "" {
			return domain.ImportResponse{Imported: imported}, domain.ErrInvalidRow
		}
		// Earlier rows committed in their own transactions; on a
		// storage fault the count tells the caller how far the batch
		// got.
		if err := s.importRow(ctx, row); err != nil {
			return domain.ImportResponse{Imported: imported}, err
		}
		imported++
	}

	if imported > 0 {
		s.log.Info("price items imported", zap.Int("count", imported))
	}
	return domain.ImportResponse{Imported: imported}, nil
}

// importRow runs one row in its own transaction. Two concurrent imports
// of the same new key both pass the lookup, one insert loses on the
// unique index, the transaction rolls back and the retry finds the
// winner's group.
func (s *Service) importRow(ctx context.Context, row domain.ImportRow) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.upsertRow(ctx, tx, row)
	})
	if db.IsDuplicateKeyErr(err) {
		err = s.db.Transaction(func(tx *gorm.DB) error {
			return s.upsertRow(ctx, tx, row)
		})
	}
	return err
}

func (s *Service) upsertRow(ctx context.Context, tx *gorm.DB, row domain.ImportRow) error {
	now := time.Now().UTC()
	innNorm, innInvalid := inn.Normalize(row.INN)

	key := domain.GroupKey{
		OwnerID:        row.OwnerID,
		PacketID:       row.PacketID,
		INNNorm:        innNorm,
		StdSupplierRaw: row.StdSupplier,
	}
	group, err := s.repo.FindGroupByKey(ctx, tx, key)
	if err != nil {
		return err
	}
	if group == nil {
		group = &domain.SupplierGroup{
			ID:             s.genID.Generate(),
			OwnerID:        row.OwnerID,
			PacketID:       row.PacketID,
			INNNorm:        innNorm,
			StdSupplierRaw: row.StdSupplier,
			ItemsCount:     0,
			INNInvalid:     innInvalid,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.repo.InsertGroup(ctx, tx, group); err != nil {
			return err
		}
	}
	if err := s.repo.BumpGroup(ctx, tx, group.ID, innInvalid); err != nil {
		return err
	}

	item := domain.PriceItem{
		ID:          s.genID.Generate(),
		OwnerID:     row.OwnerID,
		PacketID:    row.PacketID,
		INN:         row.INN,
		INNNorm:     innNorm,
		INNInvalid:  innInvalid,
		StdSupplier: row.StdSupplier,
		ItemID:      row.ItemID,
		GroupID:     group.ID,
		CreatedAt:   now,
	}
	return s.repo.InsertItem(ctx, tx, &item)
}
