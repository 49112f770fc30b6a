package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/pricedesk/supmap/internal/mapping/domain"
	moderationdomain "github.com/pricedesk/supmap/internal/moderation/domain"
	pricelistdomain "github.com/pricedesk/supmap/internal/pricelist/domain"
	supplierdomain "github.com/pricedesk/supmap/internal/supplier/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Repo      domain.Repository
	Groups    pricelistdomain.Repository
	Suppliers supplierdomain.Repository
	Ledger    moderationdomain.Repository
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	repo      domain.Repository
	groups    pricelistdomain.Repository
	suppliers supplierdomain.Repository
	ledger    moderationdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("mapping.service"),
		genID:     p.GenID,
		repo:      p.Repo,
		groups:    p.Groups,
		suppliers: p.Suppliers,
		ledger:    p.Ledger,
	}
}

func (s *Service) Propose(ctx context.Context, req domain.ProposeRequest) (domain.ProposeResponse, error) {
	groupID, err := parseID(req.GroupID)
	if err != nil {
		return domain.ProposeResponse{}, domain.ErrGroupNotFound
	}
	supplierID, err := parseID(req.SupplierID)
	if err != nil {
		return domain.ProposeResponse{}, domain.ErrSupplierNotFound
	}

	group, err := s.groups.FindGroupByID(ctx, s.db, groupID)
	if err != nil {
		return domain.ProposeResponse{}, err
	}
	// A group outside the seller's scope is indistinguishable from a
	// missing one on purpose.
	if group == nil || group.OwnerID != req.Scope.OwnerID || group.PacketID != req.Scope.PacketID {
		return domain.ProposeResponse{}, domain.ErrGroupNotFound
	}

	supplier, err := s.suppliers.FindByID(ctx, s.db, supplierID)
	if err != nil {
		return domain.ProposeResponse{}, err
	}
	if supplier == nil {
		return domain.ProposeResponse{}, domain.ErrSupplierNotFound
	}

	now := time.Now().UTC()
	mapping := domain.SupplierMapping{
		ID:                  s.genID.Generate(),
		GroupID:             group.ID,
		CanonicalSupplierID: supplier.ID,
		OwnerID:             group.OwnerID,
		PacketID:            group.PacketID,
		Status:              domain.StatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
		StdSupplierRaw:      group.StdSupplierRaw,
		INNNorm:             group.INNNorm,
	}

	if err := s.repo.Insert(ctx, s.db, &mapping); err != nil {
		return domain.ProposeResponse{}, err
	}

	s.log.Info("mapping proposed",
		zap.String("mapping_id", mapping.ID.String()),
		zap.String("group_id", group.ID.String()),
		zap.String("supplier_id", supplier.ID.String()),
	)

	return domain.ProposeResponse{
		MappingID: mapping.ID.String(),
		Status:    domain.StatusPending,
	}, nil
}

func (s *Service) ListPending(ctx context.Context) ([]domain.PendingMapping, error) {
	return s.repo.ListPending(ctx, s.db)
}

func (s *Service) Approve(ctx context.Context, req domain.ApproveRequest) (domain.DecisionResponse, error) {
	actor := strings.TrimSpace(req.Actor)
	if actor == "" {
		return domain.DecisionResponse{}, domain.ErrInvalidActor
	}
	id, err := parseID(req.MappingID)
	if err != nil {
		return domain.DecisionResponse{}, domain.ErrNotFound
	}

	now := time.Now().UTC()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		mapping, err := s.lockPending(ctx, tx, id)
		if err != nil {
			return err
		}

		rows, err := s.repo.MarkApproved(ctx, tx, id, actor, now)
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.ErrNotPending
		}

		return s.ledger.Insert(ctx, tx, &moderationdomain.Event{
			ID:              s.genID.Generate(),
			OwnerID:         mapping.OwnerID,
			PacketID:        mapping.PacketID,
			SupplierGroupID: mapping.GroupID,
			MappingID:       mapping.ID,
			Decision:        moderationdomain.DecisionApproved,
			DecidedAt:       now,
			DecidedBy:       actor,
		})
	})
	if err != nil {
		return domain.DecisionResponse{}, err
	}

	s.log.Info("mapping approved",
		zap.String("mapping_id", id.String()),
		zap.String("actor", actor),
	)

	return domain.DecisionResponse{Status: domain.StatusApproved}, nil
}

func (s *Service) Reject(ctx context.Context, req domain.RejectRequest) (domain.DecisionResponse, error) {
	actor := strings.TrimSpace(req.Actor)
	if actor == "" {
		return domain.DecisionResponse{}, domain.ErrInvalidActor
	}
	reasonCode := strings.TrimSpace(req.ReasonCode)
	if reasonCode == "" {
		return domain.DecisionResponse{}, domain.ErrReasonRequired
	}
	id, err := parseID(req.MappingID)
	if err != nil {
		return domain.DecisionResponse{}, domain.ErrNotFound
	}

	// Resolved once here; the stored label survives later table edits.
	reasonLabel := moderationdomain.ReasonLabel(reasonCode)

	now := time.Now().UTC()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		mapping, err := s.lockPending(ctx, tx, id)
		if err != nil {
			return err
		}

		rows, err := s.repo.MarkRejected(ctx, tx, id, actor, reasonCode, now)
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.ErrNotPending
		}

		return s.ledger.Insert(ctx, tx, &moderationdomain.Event{
			ID:                    s.genID.Generate(),
			OwnerID:               mapping.OwnerID,
			PacketID:              mapping.PacketID,
			SupplierGroupID:       mapping.GroupID,
			MappingID:             mapping.ID,
			Decision:              moderationdomain.DecisionRejected,
			DecidedAt:             now,
			DecidedBy:             actor,
			RejectReasonCode:      &reasonCode,
			RejectReasonLabel:     &reasonLabel,
			RejectCommentInternal: req.InternalComment,
		})
	})
	if err != nil {
		return domain.DecisionResponse{}, err
	}

	s.log.Info("mapping rejected",
		zap.String("mapping_id", id.String()),
		zap.String("actor", actor),
		zap.String("reason_code", reasonCode),
	)

	return domain.DecisionResponse{
		Status:      domain.StatusRejected,
		ReasonLabel: reasonLabel,
	}, nil
}

func (s *Service) ListApproved(ctx context.Context, req domain.ListApprovedRequest) ([]domain.ApprovedMapping, error) {
	return s.repo.ListApproved(ctx, s.db, req)
}

func (s *Service) lockPending(ctx context.Context, tx *gorm.DB, id snowflake.ID) (*domain.SupplierMapping, error) {
	mapping, err := s.repo.FindByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		return nil, domain.ErrNotFound
	}
	if mapping.Status != domain.StatusPending {
		return nil, domain.ErrNotPending
	}
	return mapping, nil
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
