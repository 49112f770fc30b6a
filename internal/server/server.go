package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pricedesk/supmap/internal/adminauth"
	adminauthdomain "github.com/pricedesk/supmap/internal/adminauth/domain"
	"github.com/pricedesk/supmap/internal/config"
	"github.com/pricedesk/supmap/internal/issue"
	issuedomain "github.com/pricedesk/supmap/internal/issue/domain"
	"github.com/pricedesk/supmap/internal/mapping"
	mappingdomain "github.com/pricedesk/supmap/internal/mapping/domain"
	"github.com/pricedesk/supmap/internal/moderation"
	moderationdomain "github.com/pricedesk/supmap/internal/moderation/domain"
	"github.com/pricedesk/supmap/internal/observability"
	obsmiddleware "github.com/pricedesk/supmap/internal/observability/logger"
	obsmetrics "github.com/pricedesk/supmap/internal/observability/metrics"
	obstracing "github.com/pricedesk/supmap/internal/observability/tracing"
	"github.com/pricedesk/supmap/internal/pricelist"
	pricelistdomain "github.com/pricedesk/supmap/internal/pricelist/domain"
	"github.com/pricedesk/supmap/internal/sellertoken"
	sellertokendomain "github.com/pricedesk/supmap/internal/sellertoken/domain"
	"github.com/pricedesk/supmap/internal/status"
	statusdomain "github.com/pricedesk/supmap/internal/status/domain"
	"github.com/pricedesk/supmap/internal/supplier"
	supplierdomain "github.com/pricedesk/supmap/internal/supplier/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	supplier.Module,
	pricelist.Module,
	mapping.Module,
	moderation.Module,
	status.Module,
	issue.Module,
	sellertoken.Module,
	adminauth.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine        *gin.Engine
	cfg           config.Config
	supplierSvc   supplierdomain.Service
	importSvc     pricelistdomain.Service
	mappingSvc    mappingdomain.Service
	moderationSvc moderationdomain.Service
	statusSvc     statusdomain.Service
	issueSvc      issuedomain.Service
	tokenSvc      sellertokendomain.Service
	adminAuthSvc  adminauthdomain.Service
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	SupplierSvc   supplierdomain.Service
	ImportSvc     pricelistdomain.Service
	MappingSvc    mappingdomain.Service
	ModerationSvc moderationdomain.Service
	StatusSvc     statusdomain.Service
	IssueSvc      issuedomain.Service
	TokenSvc      sellertokendomain.Service
	AdminAuthSvc  adminauthdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		supplierSvc:   p.SupplierSvc,
		importSvc:     p.ImportSvc,
		mappingSvc:    p.MappingSvc,
		moderationSvc: p.ModerationSvc,
		statusSvc:     p.StatusSvc,
		issueSvc:      p.IssueSvc,
		tokenSvc:      p.TokenSvc,
		adminAuthSvc:  p.AdminAuthSvc,
	}

	svc.registerImportRoutes()
	svc.registerSellerRoutes()
	svc.registerAdminRoutes()
	svc.registerAnalyticsRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerImportRoutes() {
	s.engine.POST("/api/import/price_items", s.ImportPriceItems)
}

func (s *Server) registerSellerRoutes() {
	seller := s.engine.Group("/api/seller")

	seller.GET("/groups", s.ListSellerGroups)
	seller.GET("/suppliers", s.SearchSuppliers)
	seller.POST("/mappings", s.CreateMapping)
	seller.POST("/issues", s.CreateIssue)
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/api/admin")

	admin.POST("/login", s.AdminLogin)
	admin.POST("/logout", s.AdminLogout)

	authed := admin.Group("", s.AdminRequired())
	authed.GET("/suppliers", s.ListSuppliers)
	authed.POST("/suppliers", s.CreateSupplier)
	authed.PUT("/suppliers/:supplier_id", s.UpdateSupplier)
	authed.DELETE("/suppliers/:supplier_id", s.DeleteSupplier)

	authed.GET("/mappings/pending", s.ListPendingMappings)
	authed.POST("/mappings/:mapping_id/approve", s.ApproveMapping)
	authed.POST("/mappings/:mapping_id/reject", s.RejectMapping)

	authed.GET("/moderation/history", s.ModerationHistory)
	authed.GET("/moderation/reasons", s.RejectionReasons)

	authed.GET("/issues", s.ListIssues)

	authed.GET("/tokens", s.ListSellerTokens)
	authed.POST("/tokens", s.IssueSellerToken)
}

func (s *Server) registerAnalyticsRoutes() {
	analytics := s.engine.Group("/api/analytics")

	analytics.GET("/mappings", s.AnalyticsMappings)
	analytics.GET("/mappings/by_packet", s.AnalyticsMappingsByPacket)
}
