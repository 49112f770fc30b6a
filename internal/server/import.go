package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	pricelistdomain "github.com/pricedesk/supmap/internal/pricelist/domain"
)

func (s *Server) ImportPriceItems(c *gin.Context) {
	var rows []pricelistdomain.ImportRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.importSvc.ImportBatch(c.Request.Context(), rows)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
