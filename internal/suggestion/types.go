package suggestion

import (
	"smart-focus-suggestion/internal/model"
)

// GetSuggestionInput carries optional context overrides from the caller.
// Zero values mean "not provided" and trigger estimation.
type GetSuggestionInput struct {
	Energy       string // high | medium | low
	FocusMinutes int    // positive minutes
	Mood         string // great | good | neutral | tired | stressed
	Strategy     string // quick_win
}

// OutputType discriminates the three possible suggestion results.
type OutputType string

const (
	OutputTypeSuggestion OutputType = "suggestion"
	OutputTypeNoTasks    OutputType = "no_tasks"
)

// Source tags where the primary recommendation came from.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// Category labels a task bucket. A task may carry several; alternatives carry
// exactly one explaining why they were offered.
type Category string

const (
	CategoryOverdue     Category = "overdue"
	CategoryDueToday    Category = "due_today"
	CategoryDueSoon     Category = "due_soon"
	CategoryInProgress  Category = "in_progress"
	CategoryQuickWin    Category = "quick_win"
	CategoryImportant   Category = "important"
	CategoryEasyStart   Category = "easy_start"
	CategoryDeepWork    Category = "deep_work"
	CategoryMomentum    Category = "momentum"
	CategoryUrgent      Category = "urgent"
	CategoryEnergyMatch Category = "energy_match"
	CategoryNextBest    Category = "next_best"
)

// ScoreBreakdown is the per-dimension contribution of a task's score.
// Kept purely so the UI can explain the recommendation.
type ScoreBreakdown struct {
	Urgency        float64
	Priority       float64
	Momentum       float64
	Completion     float64
	ContextFit     float64
	RecencyPenalty float64
}

// Total sums all contributions of the breakdown.
func (b ScoreBreakdown) Total() float64 {
	return b.Urgency + b.Priority + b.Momentum + b.Completion + b.ContextFit + b.RecencyPenalty
}

// ScoredTask is a task annotated with its desirability score.
type ScoredTask struct {
	Task       model.Task
	Score      float64
	Breakdown  ScoreBreakdown
	Categories []Category
}

// Primary is the single recommended task with its explanation.
type Primary struct {
	Task               model.Task
	Score              float64
	Breakdown          ScoreBreakdown
	Rationale          string
	Action             string
	EstimatedMinutes   int
	SuccessProbability float64
}

// Alternative is one ranked fallback option.
type Alternative struct {
	Task     model.Task
	Category Category
	Reason   string
}

// ContextSummary echoes the context the suggestion was computed against.
type ContextSummary struct {
	Energy           model.EnergyLevel
	Mood             model.Mood
	FocusMinutes     int
	HoursWorkedToday float64
	OpenTaskCount    int
}

// GetSuggestionOutput is the full result of a suggestion request.
type GetSuggestionOutput struct {
	Type         OutputType
	SuggestionID string // stable id for feedback correlation, empty for no_tasks
	Message      string // set for no_tasks
	Primary      *Primary
	Alternatives []Alternative
	Motivation   string
	Warning      string
	Context      ContextSummary
	Source       Source
}

// RecordFeedbackInput correlates user feedback with a prior suggestion.
type RecordFeedbackInput struct {
	SuggestionID string
	Accepted     bool
	Comment      string
}
