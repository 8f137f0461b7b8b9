package http

import (
	"smart-focus-suggestion/internal/model"
	"smart-focus-suggestion/internal/suggestion"
	"smart-focus-suggestion/pkg/response"
)

// --- Request DTOs ---

type suggestReq struct {
	Energy       string `json:"energy"     binding:"omitempty,oneof=high medium low"`
	FocusMinutes int    `json:"focus_time" binding:"omitempty,min=1,max=480"`
	Mood         string `json:"mood"       binding:"omitempty,oneof=great good neutral tired stressed"`
	Strategy     string `json:"strategy"   binding:"omitempty,oneof=quick_win"`
}

func (r suggestReq) validate() error { return nil }

func (r suggestReq) toInput() suggestion.GetSuggestionInput {
	return suggestion.GetSuggestionInput{
		Energy:       r.Energy,
		FocusMinutes: r.FocusMinutes,
		Mood:         r.Mood,
		Strategy:     r.Strategy,
	}
}

// ---

type feedbackReq struct {
	SuggestionID string `json:"-"` // populated from URI param
	Accepted     *bool  `json:"accepted" binding:"required"`
	Comment      string `json:"comment"  binding:"max=1000"`
}

func (r feedbackReq) validate() error { return nil }

func (r feedbackReq) toInput() suggestion.RecordFeedbackInput {
	return suggestion.RecordFeedbackInput{
		SuggestionID: r.SuggestionID,
		Accepted:     *r.Accepted,
		Comment:      r.Comment,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	ProjectID      string             `json:"project_id,omitempty"`
	Status         string             `json:"status"`
	Priority       string             `json:"priority"`
	DueAt          *response.DateTime `json:"due_at,omitempty"`
	EstimatedHours *float64           `json:"estimated_hours,omitempty"`
	SpentHours     float64            `json:"spent_hours"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:             t.ID,
		Title:          t.Title,
		ProjectID:      t.ProjectID,
		Status:         string(t.Status),
		Priority:       string(t.EffectivePriority()),
		EstimatedHours: t.EstimatedHours,
		SpentHours:     t.SpentHours,
	}
	if t.DueAt != nil {
		due := response.DateTime(*t.DueAt)
		resp.DueAt = &due
	}
	return resp
}

type breakdownResp struct {
	Urgency        float64 `json:"urgency"`
	Priority       float64 `json:"priority"`
	Momentum       float64 `json:"momentum"`
	Completion     float64 `json:"completion"`
	ContextFit     float64 `json:"context_fit"`
	RecencyPenalty float64 `json:"recency_penalty"`
	Total          float64 `json:"total"`
}

func newBreakdownResp(b suggestion.ScoreBreakdown) breakdownResp {
	return breakdownResp{
		Urgency:        b.Urgency,
		Priority:       b.Priority,
		Momentum:       b.Momentum,
		Completion:     b.Completion,
		ContextFit:     b.ContextFit,
		RecencyPenalty: b.RecencyPenalty,
		Total:          b.Total(),
	}
}

type primaryResp struct {
	Task               taskResp      `json:"task"`
	Score              float64       `json:"score"`
	Breakdown          breakdownResp `json:"breakdown"`
	Rationale          string        `json:"rationale"`
	Action             string        `json:"action"`
	EstimatedMinutes   int           `json:"estimated_minutes"`
	SuccessProbability float64       `json:"success_probability"`
}

type alternativeResp struct {
	Task     taskResp `json:"task"`
	Category string   `json:"category"`
	Reason   string   `json:"reason"`
}

type contextResp struct {
	Energy           string  `json:"energy"`
	Mood             string  `json:"mood"`
	FocusMinutes     int     `json:"focus_minutes"`
	HoursWorkedToday float64 `json:"hours_worked_today"`
	OpenTaskCount    int     `json:"open_task_count"`
}

type suggestResp struct {
	Type         string            `json:"type"`
	SuggestionID string            `json:"suggestion_id,omitempty"`
	Message      string            `json:"message,omitempty"`
	Primary      *primaryResp      `json:"primary_task,omitempty"`
	Alternatives []alternativeResp `json:"alternatives,omitempty"`
	Motivation   string            `json:"motivation,omitempty"`
	Warning      string            `json:"warning,omitempty"`
	Context      contextResp       `json:"context_summary"`
	Source       string            `json:"source"`
}

func (h *handler) newSuggestResp(out suggestion.GetSuggestionOutput) suggestResp {
	resp := suggestResp{
		Type:         string(out.Type),
		SuggestionID: out.SuggestionID,
		Message:      out.Message,
		Motivation:   out.Motivation,
		Warning:      out.Warning,
		Source:       string(out.Source),
		Context: contextResp{
			Energy:           string(out.Context.Energy),
			Mood:             string(out.Context.Mood),
			FocusMinutes:     out.Context.FocusMinutes,
			HoursWorkedToday: out.Context.HoursWorkedToday,
			OpenTaskCount:    out.Context.OpenTaskCount,
		},
	}

	if out.Primary != nil {
		resp.Primary = &primaryResp{
			Task:               newTaskResp(out.Primary.Task),
			Score:              out.Primary.Score,
			Breakdown:          newBreakdownResp(out.Primary.Breakdown),
			Rationale:          out.Primary.Rationale,
			Action:             out.Primary.Action,
			EstimatedMinutes:   out.Primary.EstimatedMinutes,
			SuccessProbability: out.Primary.SuccessProbability,
		}
	}

	if len(out.Alternatives) > 0 {
		resp.Alternatives = make([]alternativeResp, len(out.Alternatives))
		for i, alt := range out.Alternatives {
			resp.Alternatives[i] = alternativeResp{
				Task:     newTaskResp(alt.Task),
				Category: string(alt.Category),
				Reason:   alt.Reason,
			}
		}
	}

	return resp
}
