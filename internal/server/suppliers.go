package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	supplierdomain "github.com/pricedesk/supmap/internal/supplier/domain"
)

func (s *Server) ListSuppliers(c *gin.Context) {
	suppliers, err := s.supplierSvc.Search(c.Request.Context(), supplierdomain.SearchSuppliersRequest{
		Query: strings.TrimSpace(c.Query("q")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, suppliers)
}

type supplierPayload struct {
	Name    string  `json:"supplier" binding:"required"`
	INN     string  `json:"inn" binding:"required"`
	KPP     *string `json:"kpp"`
	Country *string `json:"country"`
	City    *string `json:"city"`
	Address *string `json:"address"`
	URL     *string `json:"url"`
	Branch  *string `json:"branch"`
}

func (s *Server) CreateSupplier(c *gin.Context) {
	var req supplierPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.supplierSvc.Create(c.Request.Context(), supplierdomain.CreateSupplierRequest{
		Name:    strings.TrimSpace(req.Name),
		INN:     strings.TrimSpace(req.INN),
		KPP:     req.KPP,
		Country: req.Country,
		City:    req.City,
		Address: req.Address,
		URL:     req.URL,
		Branch:  req.Branch,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

type supplierUpdatePayload struct {
	Name    *string `json:"supplier"`
	INN     *string `json:"inn"`
	KPP     *string `json:"kpp"`
	Country *string `json:"country"`
	City    *string `json:"city"`
	Address *string `json:"address"`
	URL     *string `json:"url"`
	Branch  *string `json:"branch"`
}

func (s *Server) UpdateSupplier(c *gin.Context) {
	var req supplierUpdatePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.supplierSvc.Update(c.Request.Context(), supplierdomain.UpdateSupplierRequest{
		ID:      c.Param("supplier_id"),
		Name:    req.Name,
		INN:     req.INN,
		KPP:     req.KPP,
		Country: req.Country,
		City:    req.City,
		Address: req.Address,
		URL:     req.URL,
		Branch:  req.Branch,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) DeleteSupplier(c *gin.Context) {
	if err := s.supplierSvc.Delete(c.Request.Context(), c.Param("supplier_id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
