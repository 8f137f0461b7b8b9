package model

// EnergyLevel is the user's current (declared or estimated) capacity.
type EnergyLevel string

const (
	EnergyHigh   EnergyLevel = "high"
	EnergyMedium EnergyLevel = "medium"
	EnergyLow    EnergyLevel = "low"
)

// Mood is the user's self-reported mood.
type Mood string

const (
	MoodGreat    Mood = "great"
	MoodGood     Mood = "good"
	MoodNeutral  Mood = "neutral"
	MoodTired    Mood = "tired"
	MoodStressed Mood = "stressed"
)

// Strategy is an explicit selection strategy requested by the caller.
type Strategy string

const (
	StrategyQuickWin Strategy = "quick_win"
)

// SuggestionContext is the situational snapshot a suggestion is computed
// against. Built per request, never persisted.
type SuggestionContext struct {
	Hour             int // 0-23
	Weekday          int // 1=Monday … 7=Sunday
	Energy           EnergyLevel
	FocusMinutes     int
	Mood             Mood
	HoursWorkedToday float64
	Strategy         Strategy // empty unless explicitly requested

	// EnergyEstimated marks Energy as derived rather than user-declared.
	EnergyEstimated bool
}
