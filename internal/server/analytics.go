package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	mappingdomain "github.com/pricedesk/supmap/internal/mapping/domain"
)

func (s *Server) AnalyticsMappings(c *gin.Context) {
	from, err := parseOptionalTime(c.Query("from_date"), false)
	if err != nil {
		AbortWithError(c, newValidationError("from_date", "invalid_from_date", "invalid from_date"))
		return
	}
	to, err := parseOptionalTime(c.Query("to_date"), true)
	if err != nil {
		AbortWithError(c, newValidationError("to_date", "invalid_to_date", "invalid to_date"))
		return
	}

	mappings, err := s.mappingSvc.ListApproved(c.Request.Context(), mappingdomain.ListApprovedRequest{
		From: from,
		To:   to,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, mappings)
}

func (s *Server) AnalyticsMappingsByPacket(c *gin.Context) {
	ownerID := strings.TrimSpace(c.Query("ownerId"))
	packetID := strings.TrimSpace(c.Query("packetId"))
	if ownerID == "" || packetID == "" {
		AbortWithError(c, newValidationError("packetId", "invalid_scope", "ownerId and packetId are required"))
		return
	}

	mappings, err := s.mappingSvc.ListApproved(c.Request.Context(), mappingdomain.ListApprovedRequest{
		OwnerID:  ownerID,
		PacketID: packetID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, mappings)
}
