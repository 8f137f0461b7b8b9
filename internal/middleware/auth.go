package middleware

import (
	"github.com/gin-gonic/gin"

	"smart-focus-suggestion/internal/model"
	"smart-focus-suggestion/pkg/response"
	"smart-focus-suggestion/pkg/scope"
)

// HeaderUserID identifies the requesting user. Identity is resolved upstream
// by the gateway; this service only requires the header to be present.
const HeaderUserID = "X-User-ID"

// Auth resolves the request scope from the user header and aborts with 401
// when it is missing.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		scope.SetGin(c, model.Scope{UserID: userID})
		c.Next()
	}
}
