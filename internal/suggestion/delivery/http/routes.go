package http

import (
	"github.com/gin-gonic/gin"

	"smart-focus-suggestion/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require the user scope; suggestion generation is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	suggestions := rg.Group("/suggestions")
	{
		suggestions.POST("", mw.Auth(), mw.RateLimit(), h.GetSuggestion)
		suggestions.POST("/:id/feedback", mw.Auth(), h.RecordFeedback)
	}
}
