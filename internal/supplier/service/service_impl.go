package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/pricedesk/supmap/internal/inn"
	mappingdomain "github.com/pricedesk/supmap/internal/mapping/domain"
	"github.com/pricedesk/supmap/internal/supplier/domain"
	"github.com/pricedesk/supmap/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	Mappings mappingdomain.Repository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	mappings mappingdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("supplier.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		mappings: p.Mappings,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateSupplierRequest) (domain.Supplier, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Supplier{}, domain.ErrInvalidName
	}

	// Directory entries require a well-formed INN, unlike imported rows.
	norm, invalid := inn.Normalize(req.INN)
	if invalid || norm == nil {
		return domain.Supplier{}, domain.ErrInvalidINN
	}

	if existing, err := s.repo.FindByINN(ctx, s.db, *norm); err != nil {
		return domain.Supplier{}, err
	} else if existing != nil {
		return domain.Supplier{}, domain.ErrDuplicate
	}

	supplier := domain.Supplier{
		ID:        s.genID.Generate(),
		Name:      name,
		INN:       *norm,
		KPP:       req.KPP,
		Country:   req.Country,
		City:      req.City,
		Address:   req.Address,
		URL:       req.URL,
		Branch:    req.Branch,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, s.db, &supplier); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Supplier{}, domain.ErrDuplicate
		}
		return domain.Supplier{}, err
	}

	return supplier, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateSupplierRequest) (domain.Supplier, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Supplier{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Supplier{}, err
	}
	if existing == nil {
		return domain.Supplier{}, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Supplier{}, domain.ErrInvalidName
		}
		existing.Name = name
	}
	if req.INN != nil {
		norm, invalid := inn.Normalize(*req.INN)
		if invalid || norm == nil {
			return domain.Supplier{}, domain.ErrInvalidINN
		}
		existing.INN = *norm
	}
	if req.KPP != nil {
		existing.KPP = req.KPP
	}
	if req.Country != nil {
		existing.Country = req.Country
	}
	if req.City != nil {
		existing.City = req.City
	}
	if req.Address != nil {
		existing.Address = req.Address
	}
	if req.URL != nil {
		existing.URL = req.URL
	}
	if req.Branch != nil {
		existing.Branch = req.Branch
	}

	if err := s.repo.Update(ctx, s.db, existing); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Supplier{}, domain.ErrDuplicate
		}
		return domain.Supplier{}, err
	}

	return *existing, nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := s.parseID(rawID)
	if err != nil {
		return err
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	// Mappings keep the supplier id as the canonical reference; removing the
	// row underneath them would orphan moderation history.
	refs, err := s.mappings.CountBySupplier(ctx, s.db, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrInUse
	}

	return s.repo.Delete(ctx, s.db, id)
}

func (s *Service) GetByID(ctx context.Context, rawID string) (domain.Supplier, error) {
	id, err := s.parseID(rawID)
	if err != nil {
		return domain.Supplier{}, err
	}

	supplier, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Supplier{}, err
	}
	if supplier == nil {
		return domain.Supplier{}, domain.ErrNotFound
	}
	return *supplier, nil
}

func (s *Service) Search(ctx context.Context, req domain.SearchSuppliersRequest) ([]domain.Supplier, error) {
	items, err := s.repo.Search(ctx, s.db, req.Query)
	if err != nil {
		return nil, err
	}

	suppliers := make([]domain.Supplier, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		suppliers = append(suppliers, *item)
	}
	return suppliers, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
