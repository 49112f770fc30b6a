package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	sellertokendomain "github.com/pricedesk/supmap/internal/sellertoken/domain"
)

func (s *Server) ListSellerTokens(c *gin.Context) {
	tokens, err := s.tokenSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

type issueTokenRequest struct {
	OwnerID  string `json:"ownerId" binding:"required"`
	PacketID string `json:"packetId" binding:"required"`
	TTLHours int    `json:"ttl_hours"`
}

func (s *Server) IssueSellerToken(c *gin.Context) {
	var req issueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	token, err := s.tokenSvc.Issue(c.Request.Context(), sellertokendomain.IssueRequest{
		OwnerID:  req.OwnerID,
		PacketID: req.PacketID,
		TTL:      time.Duration(req.TTLHours) * time.Hour,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}
