package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	adminauthdomain "github.com/pricedesk/supmap/internal/adminauth/domain"
)

func (s *Server) AdminLogin(c *gin.Context) {
	var req adminauthdomain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	token, err := s.adminAuthSvc.Login(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(adminSessionCookie, token, int(s.cfg.SessionTTL.Seconds()), "/", "", s.cfg.SessionSecure, true)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) AdminLogout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(adminSessionCookie, "", -1, "/", "", s.cfg.SessionSecure, true)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
