package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/pricedesk/supmap/internal/adminauth/domain"
	"github.com/pricedesk/supmap/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Params struct {
	fx.In

	Config config.Config
	Log    *zap.Logger
}

type Service struct {
	cfg config.Config
	log *zap.Logger
}

func New(p Params) domain.Service {
	return &Service{
		cfg: p.Config,
		log: p.Log.Named("adminauth.service"),
	}
}

type sessionClaims struct {
	User string    `json:"user"`
	Exp  time.Time `json:"exp"`
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (string, error) {
	if subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.AdminUsername)) != 1 {
		return "", domain.ErrInvalidCredentials
	}
	if !s.passwordOK(req.Password) {
		return "", domain.ErrInvalidCredentials
	}

	claims := sessionClaims{
		User: req.Username,
		Exp:  time.Now().UTC().Add(s.cfg.SessionTTL),
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	body := base64.RawURLEncoding.EncodeToString(payload)
	token := body + "." + s.sign(body)

	s.log.Info("admin session created", zap.String("user", req.Username))
	return token, nil
}

func (s *Service) Verify(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrNotAuthenticated
	}
	body, sig, ok := strings.Cut(token, ".")
	if !ok {
		return "", domain.ErrInvalidSession
	}
	if subtle.ConstantTimeCompare([]byte(sig), []byte(s.sign(body))) != 1 {
		return "", domain.ErrInvalidSession
	}

	payload, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return "", domain.ErrInvalidSession
	}
	var claims sessionClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", domain.ErrInvalidSession
	}
	if claims.Exp.Before(time.Now().UTC()) {
		return "", domain.ErrSessionExpired
	}
	return claims.User, nil
}

// passwordOK prefers the bcrypt hash when configured and falls back to
// a constant-time plain comparison for dev setups.
func (s *Service) passwordOK(password string) bool {
	if s.cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
}

func (s *Service) sign(body string) string {
	mac := hmac.New(sha256.New, []byte(s.cfg.SessionSecret))
	mac.Write([]byte("admin-session." + body))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
