package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/pricedesk/supmap/internal/issue/domain"
	pricelistdomain "github.com/pricedesk/supmap/internal/pricelist/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Repo   domain.Repository
	Groups pricelistdomain.Repository
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	repo   domain.Repository
	groups pricelistdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("issue.service"),
		genID:  p.GenID,
		repo:   p.Repo,
		groups: p.Groups,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.SellerIssue, error) {
	if strings.TrimSpace(req.Comment) == "" {
		return nil, domain.ErrCommentRequired
	}
	groupID, err := snowflake.ParseString(strings.TrimSpace(req.GroupID))
	if err != nil || groupID == 0 {
		return nil, domain.ErrGroupNotFound
	}

	group, err := s.groups.FindGroupByID(ctx, s.db, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil || group.OwnerID != req.OwnerID || group.PacketID != req.PacketID {
		return nil, domain.ErrGroupNotFound
	}

	issue := domain.SellerIssue{
		ID:          s.genID.Generate(),
		OwnerID:     group.OwnerID,
		PacketID:    group.PacketID,
		GroupID:     &group.ID,
		INN:         group.INNNorm,
		INNNorm:     group.INNNorm,
		StdSupplier: &group.StdSupplierRaw,
		Comment:     req.Comment,
		Metadata:    req.Metadata,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, s.db, &issue); err != nil {
		return nil, err
	}

	s.log.Info("seller issue created",
		zap.String("issue_id", issue.ID.String()),
		zap.String("group_id", group.ID.String()),
	)
	return &issue, nil
}

func (s *Service) List(ctx context.Context) ([]domain.SellerIssue, error) {
	return s.repo.List(ctx, s.db)
}
