package http

import (
	"github.com/gin-gonic/gin"

	"smart-focus-suggestion/pkg/response"
	"smart-focus-suggestion/pkg/scope"
)

// GetSuggestion godoc
// @Summary     Get a focus suggestion
// @Description Returns the single best task to work on right now, with ranked alternatives.
// @Tags        Suggestion
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     true  "Requesting user id"
// @Param       body      body   suggestReq false "Optional context overrides"
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     503 {object} response.Resp "Task list unavailable"
// @Router      /api/v1/suggestions [POST]
func (h *handler) GetSuggestion(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromGin(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GetSuggestion(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSuggestion: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSuggestResp(output))
}

// RecordFeedback godoc
// @Summary     Record suggestion feedback
// @Description Stores whether a previously delivered suggestion was accepted.
// @Tags        Suggestion
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      true "Requesting user id"
// @Param       id        path   string      true "Suggestion ID"
// @Param       body      body   feedbackReq true "Feedback"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/suggestions/{id}/feedback [POST]
func (h *handler) RecordFeedback(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromGin(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processFeedbackReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.RecordFeedback(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.RecordFeedback: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
