package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	mappingdomain "github.com/pricedesk/supmap/internal/mapping/domain"
	moderationdomain "github.com/pricedesk/supmap/internal/moderation/domain"
	"github.com/pricedesk/supmap/pkg/db/pagination"
)

func (s *Server) ListPendingMappings(c *gin.Context) {
	mappings, err := s.mappingSvc.ListPending(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, mappings)
}

func (s *Server) ApproveMapping(c *gin.Context) {
	resp, err := s.mappingSvc.Approve(c.Request.Context(), mappingdomain.ApproveRequest{
		MappingID: c.Param("mapping_id"),
		Actor:     adminUser(c),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

type rejectMappingRequest struct {
	ReasonCode      string  `json:"reason_code"`
	CommentInternal *string `json:"comment_internal"`
}

func (s *Server) RejectMapping(c *gin.Context) {
	var req rejectMappingRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			AbortWithError(c, invalidRequestError())
			return
		}
	}
	// The reason can also ride on the query string for form-less clients.
	if req.ReasonCode == "" {
		req.ReasonCode = c.Query("reason")
	}

	resp, err := s.mappingSvc.Reject(c.Request.Context(), mappingdomain.RejectRequest{
		MappingID:       c.Param("mapping_id"),
		Actor:           adminUser(c),
		ReasonCode:      req.ReasonCode,
		InternalComment: req.CommentInternal,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) ModerationHistory(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Q string `form:"q"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	entries, err := s.moderationSvc.History(c.Request.Context(), moderationdomain.HistoryRequest{
		Pagination: query.Pagination,
		Query:      query.Q,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (s *Server) RejectionReasons(c *gin.Context) {
	c.JSON(http.StatusOK, s.moderationSvc.Reasons(c.Request.Context()))
}
