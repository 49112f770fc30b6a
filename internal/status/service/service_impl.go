package service

import (
	"context"

	mappingdomain "github.com/pricedesk/supmap/internal/mapping/domain"
	moderationdomain "github.com/pricedesk/supmap/internal/moderation/domain"
	pricelistdomain "github.com/pricedesk/supmap/internal/pricelist/domain"
	"github.com/pricedesk/supmap/internal/status/domain"
	supplierdomain "github.com/pricedesk/supmap/internal/supplier/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	Groups    pricelistdomain.Repository
	Mappings  mappingdomain.Repository
	Ledger    moderationdomain.Repository
	Suppliers supplierdomain.Repository
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	groups    pricelistdomain.Repository
	mappings  mappingdomain.Repository
	ledger    moderationdomain.Repository
	suppliers supplierdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("status.service"),
		groups:    p.Groups,
		mappings:  p.Mappings,
		ledger:    p.Ledger,
		suppliers: p.Suppliers,
	}
}

func (s *Service) ListGroups(ctx context.Context, ownerID, packetID string) ([]domain.GroupStatus, error) {
	groups, err := s.groups.ListGroupsByScope(ctx, s.db, ownerID, packetID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.GroupStatus, 0, len(groups))
	for _, group := range groups {
		resolved, err := s.resolve(ctx, group)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}

// resolve projects one group through its latest mapping. The newest
// mapping wins regardless of the outcome of earlier attempts, so a
// re-proposed group goes back to PENDING even after a rejection.
func (s *Service) resolve(ctx context.Context, group pricelistdomain.SupplierGroup) (domain.GroupStatus, error) {
	out := domain.GroupStatus{
		ID:             group.ID,
		OwnerID:        group.OwnerID,
		PacketID:       group.PacketID,
		INNNorm:        group.INNNorm,
		INNInvalid:     group.INNInvalid,
		StdSupplierRaw: group.StdSupplierRaw,
		ItemsCount:     group.ItemsCount,
		Status:         domain.StatusUnmapped,
	}

	mapping, err := s.mappings.FindLatestByGroup(ctx, s.db, group.ID)
	if err != nil {
		return domain.GroupStatus{}, err
	}
	if mapping == nil {
		return out, nil
	}

	status := string(mapping.Status)
	out.Status = status
	out.LatestStatus = &status
	out.CanonicalSupplierID = &mapping.CanonicalSupplierID

	decidedAt := mapping.UpdatedAt
	if decidedAt.IsZero() {
		decidedAt = mapping.CreatedAt
	}
	out.LatestDecisionAt = &decidedAt

	supplier, err := s.suppliers.FindByID(ctx, s.db, mapping.CanonicalSupplierID)
	if err != nil {
		return domain.GroupStatus{}, err
	}
	if supplier != nil {
		out.CanonicalSupplier = &supplier.Name
	}

	if mapping.Status == mappingdomain.StatusRejected {
		event, err := s.ledger.LatestRejectedForGroup(ctx, s.db, group.ID)
		if err != nil {
			return domain.GroupStatus{}, err
		}
		if event != nil {
			out.RejectReasonLabel = event.RejectReasonLabel
			out.LatestDecisionAt = &event.DecidedAt
		}
	}
	return out, nil
}
