package server

import (
	"github.com/gin-gonic/gin"
	sellertokendomain "github.com/pricedesk/supmap/internal/sellertoken/domain"
)

const (
	adminSessionCookie = "admin_session"
	adminUserKey       = "admin_user"
)

// AdminRequired verifies the signed session cookie and stores the admin
// username on the context.
func (s *Server) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(adminSessionCookie)
		if err != nil {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		user, err := s.adminAuthSvc.Verify(c.Request.Context(), cookie)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.Set(adminUserKey, user)
		c.Next()
	}
}

func adminUser(c *gin.Context) string {
	user, _ := c.Get(adminUserKey)
	name, _ := user.(string)
	return name
}

// sellerScope resolves the presented token into its submission scope.
// Handlers pass the token explicitly because seller endpoints accept it
// either as a query parameter or inside the request body.
func (s *Server) sellerScope(c *gin.Context, token string) (*sellertokendomain.SellerToken, bool) {
	scope, err := s.tokenSvc.Resolve(c.Request.Context(), token)
	if err != nil {
		AbortWithError(c, err)
		return nil, false
	}
	return scope, true
}
