package service

import (
	"context"
	"strings"

	"github.com/pricedesk/supmap/internal/moderation/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("moderation.service"),
		repo: p.Repo,
	}
}

func (s *Service) History(ctx context.Context, req domain.HistoryRequest) ([]domain.HistoryEntry, error) {
	return s.repo.History(ctx, s.db, strings.TrimSpace(req.Query), req.Pagination.Normalize())
}

func (s *Service) Reasons(ctx context.Context) []domain.Reason {
	_ = ctx
	return domain.Reasons()
}
