package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	issuedomain "github.com/pricedesk/supmap/internal/issue/domain"
	mappingdomain "github.com/pricedesk/supmap/internal/mapping/domain"
	supplierdomain "github.com/pricedesk/supmap/internal/supplier/domain"
	"gorm.io/datatypes"
)

func (s *Server) ListSellerGroups(c *gin.Context) {
	scope, ok := s.sellerScope(c, c.Query("token"))
	if !ok {
		return
	}

	groups, err := s.statusSvc.ListGroups(c.Request.Context(), scope.OwnerID, scope.PacketID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

func (s *Server) SearchSuppliers(c *gin.Context) {
	suppliers, err := s.supplierSvc.Search(c.Request.Context(), supplierdomain.SearchSuppliersRequest{
		Query: strings.TrimSpace(c.Query("q")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, suppliers)
}

type createMappingRequest struct {
	Token               string `json:"token" binding:"required"`
	GroupID             string `json:"group_id" binding:"required"`
	CanonicalSupplierID string `json:"canonical_supplier_id" binding:"required"`
}

func (s *Server) CreateMapping(c *gin.Context) {
	var req createMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	scope, ok := s.sellerScope(c, req.Token)
	if !ok {
		return
	}

	resp, err := s.mappingSvc.Propose(c.Request.Context(), mappingdomain.ProposeRequest{
		Scope: mappingdomain.Scope{
			OwnerID:  scope.OwnerID,
			PacketID: scope.PacketID,
		},
		GroupID:    req.GroupID,
		SupplierID: req.CanonicalSupplierID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

type createIssueRequest struct {
	Token    string            `json:"token" binding:"required"`
	GroupID  string            `json:"group_id" binding:"required"`
	Comment  string            `json:"comment" binding:"required"`
	Metadata datatypes.JSONMap `json:"metadata,omitempty"`
}

func (s *Server) CreateIssue(c *gin.Context) {
	var req createIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	scope, ok := s.sellerScope(c, req.Token)
	if !ok {
		return
	}

	resp, err := s.issueSvc.Create(c.Request.Context(), issuedomain.CreateRequest{
		OwnerID:  scope.OwnerID,
		PacketID: scope.PacketID,
		GroupID:  req.GroupID,
		Comment:  req.Comment,
		Metadata: req.Metadata,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
