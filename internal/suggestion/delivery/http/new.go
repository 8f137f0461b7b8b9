package http

import (
	"github.com/gin-gonic/gin"

	"smart-focus-suggestion/internal/suggestion"
	"smart-focus-suggestion/pkg/log"
)

// Handler is the public interface for the suggestion HTTP delivery layer.
type Handler interface {
	GetSuggestion(c *gin.Context)
	RecordFeedback(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc suggestion.UseCase
}

// New creates a new HTTP handler for the suggestion domain.
func New(l log.Logger, uc suggestion.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
