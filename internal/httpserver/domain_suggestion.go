package httpserver

import (
	"context"

	"smart-focus-suggestion/internal/middleware"
	suggestionHTTP "smart-focus-suggestion/internal/suggestion/delivery/http"
	suggestionRepo "smart-focus-suggestion/internal/suggestion/repository/postgre"
	suggestionUC "smart-focus-suggestion/internal/suggestion/usecase"

	"github.com/gin-gonic/gin"
)

// setupSuggestionDomain initializes the suggestion domain and registers its
// routes under /api/v1/suggestions.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupSuggestionDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository
	repo := suggestionRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := suggestionUC.New(srv.l, repo, srv.llm, nil, suggestionUC.Config{
		Timezone:        srv.suggestion.Timezone,
		LookbackWindow:  srv.suggestion.LookbackWindow,
		RetentionWindow: srv.suggestion.RetentionWindow,
		OracleTopN:      srv.suggestion.OracleTopN,
		OracleTimeout:   srv.suggestion.OracleTimeout,
		CacheTTL:        srv.suggestion.CacheTTL,
		CacheSize:       srv.suggestion.CacheSize,
	})

	// 3. HTTP Handler
	h := suggestionHTTP.New(srv.l, uc)

	// 4. Routes
	mw := middleware.New(srv.l, srv.suggestion.RateLimitPerMin)
	suggestionHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Suggestion domain registered")
	return nil
}
