package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-focus-suggestion/internal/middleware"
	"smart-focus-suggestion/internal/model"
	"smart-focus-suggestion/internal/suggestion"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockUseCase returns canned outputs and records inputs.
type mockUseCase struct {
	out         suggestion.GetSuggestionOutput
	err         error
	feedbackErr error

	gotScope model.Scope
	gotInput suggestion.GetSuggestionInput
	gotFb    suggestion.RecordFeedbackInput
}

func (m *mockUseCase) GetSuggestion(ctx context.Context, sc model.Scope, input suggestion.GetSuggestionInput) (suggestion.GetSuggestionOutput, error) {
	m.gotScope = sc
	m.gotInput = input
	return m.out, m.err
}

func (m *mockUseCase) RecordFeedback(ctx context.Context, sc model.Scope, input suggestion.RecordFeedbackInput) error {
	m.gotScope = sc
	m.gotFb = input
	return m.feedbackErr
}

func newTestRouter(uc suggestion.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(&mockLogger{}, 1000)
	RegisterRoutes(r.Group("/api/v1"), New(&mockLogger{}, uc), mw)
	return r
}

func TestGetSuggestionHandler(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		uc := &mockUseCase{out: suggestion.GetSuggestionOutput{
			Type:         suggestion.OutputTypeSuggestion,
			SuggestionID: "s1",
			Primary: &suggestion.Primary{
				Task:      model.Task{ID: "t1", Title: "Fix login bug", Status: model.TaskStatusTodo},
				Rationale: "nearly done",
			},
			Source: suggestion.SourceFallback,
		}}
		r := newTestRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/suggestions", strings.NewReader(`{"energy":"low"}`))
		req.Header.Set("X-User-ID", "u1")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if uc.gotScope.UserID != "u1" {
			t.Errorf("scope not propagated, got %q", uc.gotScope.UserID)
		}
		if uc.gotInput.Energy != "low" {
			t.Errorf("energy not bound, got %q", uc.gotInput.Energy)
		}

		var body struct {
			Data struct {
				Type         string `json:"type"`
				SuggestionID string `json:"suggestion_id"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Data.Type != "suggestion" || body.Data.SuggestionID != "s1" {
			t.Errorf("unexpected payload: %+v", body.Data)
		}
	})

	t.Run("Empty Body Is Valid", func(t *testing.T) {
		uc := &mockUseCase{out: suggestion.GetSuggestionOutput{Type: suggestion.OutputTypeNoTasks, Source: suggestion.SourceFallback}}
		r := newTestRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/suggestions", nil)
		req.Header.Set("X-User-ID", "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
	})

	t.Run("Missing User Header", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/suggestions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("Task List Unavailable", func(t *testing.T) {
		uc := &mockUseCase{err: suggestion.ErrTaskListUnavailable}
		r := newTestRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/suggestions", nil)
		req.Header.Set("X-User-ID", "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", w.Code)
		}
	})
}

func TestRecordFeedbackHandler(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/suggestions/s1/feedback", strings.NewReader(`{"accepted":true,"comment":"great pick"}`))
		req.Header.Set("X-User-ID", "u1")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if uc.gotFb.SuggestionID != "s1" || !uc.gotFb.Accepted {
			t.Errorf("feedback input not bound: %+v", uc.gotFb)
		}
	})

	t.Run("Missing Accepted Field", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/suggestions/s1/feedback", strings.NewReader(`{"comment":"no verdict"}`))
		req.Header.Set("X-User-ID", "u1")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("Unknown Suggestion", func(t *testing.T) {
		uc := &mockUseCase{feedbackErr: suggestion.ErrSuggestionNotFound}
		r := newTestRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/suggestions/ghost/feedback", strings.NewReader(`{"accepted":false}`))
		req.Header.Set("X-User-ID", "u1")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})
}
