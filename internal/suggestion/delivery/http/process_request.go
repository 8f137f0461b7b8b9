package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processSuggestReq binds the optional request body. An empty body is valid
// and means "estimate everything".
func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	var req suggestReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, req.validate()
}

// processFeedbackReq binds the feedback body plus the suggestion id param.
func (h *handler) processFeedbackReq(c *gin.Context) (feedbackReq, error) {
	var req feedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SuggestionID = c.Param("id")
	if req.SuggestionID == "" {
		return req, errors.New("suggestion id is required")
	}
	return req, req.validate()
}
