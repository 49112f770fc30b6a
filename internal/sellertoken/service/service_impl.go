package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/pricedesk/supmap/internal/config"
	"github.com/pricedesk/supmap/internal/sellertoken/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Config config.Config
	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Repo   domain.Repository
}

type Service struct {
	cfg   config.Config
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		cfg:   p.Config,
		db:    p.DB,
		log:   p.Log.Named("sellertoken.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Issue(ctx context.Context, req domain.IssueRequest) (*domain.SellerToken, error) {
	ownerID := strings.TrimSpace(req.OwnerID)
	packetID := strings.TrimSpace(req.PacketID)
	if ownerID == "" || packetID == "" {
		return nil, domain.ErrInvalidScope
	}

	ttl := req.TTL
	if ttl == 0 {
		ttl = s.cfg.SellerTokenTTL
	}

	now := time.Now().UTC()
	token := domain.SellerToken{
		ID:        s.genID.Generate(),
		Token:     uuid.NewString(),
		OwnerID:   ownerID,
		PacketID:  packetID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	if err := s.repo.Insert(ctx, s.db, &token); err != nil {
		return nil, err
	}

	s.log.Info("seller token issued",
		zap.String("owner_id", ownerID),
		zap.String("packet_id", packetID),
		zap.Time("expires_at", token.ExpiresAt),
	)
	return &token, nil
}

func (s *Service) Resolve(ctx context.Context, value string) (*domain.SellerToken, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, domain.ErrInvalidToken
	}
	token, err := s.repo.FindByToken(ctx, s.db, value)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, domain.ErrInvalidToken
	}
	if token.Expired(time.Now().UTC()) {
		return nil, domain.ErrTokenExpired
	}
	return token, nil
}

func (s *Service) List(ctx context.Context) ([]domain.SellerToken, error) {
	return s.repo.List(ctx, s.db)
}
