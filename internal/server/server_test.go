package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	adminauthdomain "github.com/pricedesk/supmap/internal/adminauth/domain"
	"github.com/pricedesk/supmap/internal/config"
	mappingdomain "github.com/pricedesk/supmap/internal/mapping/domain"
	sellertokendomain "github.com/pricedesk/supmap/internal/sellertoken/domain"
	statusdomain "github.com/pricedesk/supmap/internal/status/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMappingService struct {
	rejectReq  mappingdomain.RejectRequest
	rejectResp mappingdomain.DecisionResponse
	rejectErr  error
}

func (f *fakeMappingService) Propose(ctx context.Context, req mappingdomain.ProposeRequest) (mappingdomain.ProposeResponse, error) {
	return mappingdomain.ProposeResponse{MappingID: "1", Status: mappingdomain.StatusPending}, nil
}

func (f *fakeMappingService) ListPending(ctx context.Context) ([]mappingdomain.PendingMapping, error) {
	return nil, nil
}

func (f *fakeMappingService) Approve(ctx context.Context, req mappingdomain.ApproveRequest) (mappingdomain.DecisionResponse, error) {
	return mappingdomain.DecisionResponse{Status: mappingdomain.StatusApproved}, nil
}

func (f *fakeMappingService) Reject(ctx context.Context, req mappingdomain.RejectRequest) (mappingdomain.DecisionResponse, error) {
	f.rejectReq = req
	return f.rejectResp, f.rejectErr
}

func (f *fakeMappingService) ListApproved(ctx context.Context, req mappingdomain.ListApprovedRequest) ([]mappingdomain.ApprovedMapping, error) {
	return nil, nil
}

type fakeTokenService struct {
	scope      *sellertokendomain.SellerToken
	resolveErr error
}

func (f *fakeTokenService) Issue(ctx context.Context, req sellertokendomain.IssueRequest) (*sellertokendomain.SellerToken, error) {
	return &sellertokendomain.SellerToken{
		Token:     "issued",
		OwnerID:   req.OwnerID,
		PacketID:  req.PacketID,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}, nil
}

func (f *fakeTokenService) Resolve(ctx context.Context, token string) (*sellertokendomain.SellerToken, error) {
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return f.scope, nil
}

func (f *fakeTokenService) List(ctx context.Context) ([]sellertokendomain.SellerToken, error) {
	return nil, nil
}

type fakeStatusService struct {
	lastOwner  string
	lastPacket string
}

func (f *fakeStatusService) ListGroups(ctx context.Context, ownerID, packetID string) ([]statusdomain.GroupStatus, error) {
	f.lastOwner = ownerID
	f.lastPacket = packetID
	return []statusdomain.GroupStatus{}, nil
}

type fakeAdminAuthService struct {
	user string
}

func (f *fakeAdminAuthService) Login(ctx context.Context, req adminauthdomain.LoginRequest) (string, error) {
	if req.Username == "admin" && req.Password == "s3cret" {
		return "session-token", nil
	}
	return "", adminauthdomain.ErrInvalidCredentials
}

func (f *fakeAdminAuthService) Verify(ctx context.Context, token string) (string, error) {
	if token != "session-token" {
		return "", adminauthdomain.ErrInvalidSession
	}
	return f.user, nil
}

func newTestServer(t *testing.T) (*Server, *fakeMappingService, *fakeTokenService, *fakeStatusService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ErrorHandlingMiddleware())

	mappings := &fakeMappingService{}
	tokens := &fakeTokenService{
		scope: &sellertokendomain.SellerToken{OwnerID: "owner-1", PacketID: "packet-1"},
	}
	statuses := &fakeStatusService{}

	srv := &Server{
		engine:       r,
		cfg:          config.Config{SessionTTL: time.Hour},
		mappingSvc:   mappings,
		statusSvc:    statuses,
		tokenSvc:     tokens,
		adminAuthSvc: &fakeAdminAuthService{user: "admin"},
	}
	srv.registerSellerRoutes()
	srv.registerAdminRoutes()

	return srv, mappings, tokens, statuses
}

func TestAdminRoutesRequireSession(t *testing.T) {
	srv, _, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/mappings/pending", nil)
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unauthorized", resp.Error.Type)
}

func TestAdminLoginSetsCookie(t *testing.T) {
	srv, _, _, _ := newTestServer(t)

	body := bytes.NewBufferString(`{"username":"admin","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, adminSessionCookie, cookies[0].Name)
	assert.Equal(t, "session-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	srv, _, _, _ := newTestServer(t)

	body := bytes.NewBufferString(`{"username":"admin","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRejectMappingReadsReasonFromQuery(t *testing.T) {
	srv, mappings, _, _ := newTestServer(t)
	mappings.rejectResp = mappingdomain.DecisionResponse{
		Status:      mappingdomain.StatusRejected,
		ReasonLabel: "ИНН указан неверно",
	}

	req := httptest.NewRequest(http.MethodPost, "/api/admin/mappings/42/reject?reason=WRONG_INN", nil)
	req.AddCookie(&http.Cookie{Name: adminSessionCookie, Value: "session-token"})
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", mappings.rejectReq.MappingID)
	assert.Equal(t, "WRONG_INN", mappings.rejectReq.ReasonCode)
	assert.Equal(t, "admin", mappings.rejectReq.Actor)
}

func TestRejectMappingMissingReasonIsBadRequest(t *testing.T) {
	srv, mappings, _, _ := newTestServer(t)
	mappings.rejectErr = mappingdomain.ErrReasonRequired

	req := httptest.NewRequest(http.MethodPost, "/api/admin/mappings/42/reject", nil)
	req.AddCookie(&http.Cookie{Name: adminSessionCookie, Value: "session-token"})
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRejectMappingConflictWhenTerminal(t *testing.T) {
	srv, mappings, _, _ := newTestServer(t)
	mappings.rejectErr = mappingdomain.ErrNotPending

	req := httptest.NewRequest(http.MethodPost, "/api/admin/mappings/42/reject?reason=WRONG_INN", nil)
	req.AddCookie(&http.Cookie{Name: adminSessionCookie, Value: "session-token"})
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSellerGroupsResolveTokenScope(t *testing.T) {
	srv, _, _, statuses := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/seller/groups?token=abc", nil)
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "owner-1", statuses.lastOwner)
	assert.Equal(t, "packet-1", statuses.lastPacket)
}

func TestSellerGroupsInvalidToken(t *testing.T) {
	srv, _, tokens, _ := newTestServer(t)
	tokens.resolveErr = sellertokendomain.ErrInvalidToken

	req := httptest.NewRequest(http.MethodGet, "/api/seller/groups?token=bad", nil)
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
