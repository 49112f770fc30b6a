package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListIssues(c *gin.Context) {
	issues, err := s.issueSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, issues)
}
