package model

import "time"

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusInReview   TaskStatus = "in-review"
	TaskStatusDone       TaskStatus = "done"
)

// TaskPriority is the declared priority of a task. Absent priority is treated
// as medium everywhere downstream.
type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// Task is a read-only view of a task owned by the CRUD layer.
// The suggestion core never mutates tasks.
type Task struct {
	ID             string
	Title          string
	ProjectID      string
	Status         TaskStatus
	Priority       *TaskPriority // nil → medium
	DueAt          *time.Time    // nil → no deadline
	EstimatedHours *float64      // nil → unknown
	SpentHours     float64
}

// EffectivePriority resolves a nil priority to medium.
func (t Task) EffectivePriority() TaskPriority {
	if t.Priority == nil {
		return TaskPriorityMedium
	}
	return *t.Priority
}

// CompletionFraction derives how far along a task is, in [0, 1].
// With a positive estimate it is spent/estimated capped at 1; otherwise a
// fixed fraction per status stands in.
func (t Task) CompletionFraction() float64 {
	if t.EstimatedHours != nil && *t.EstimatedHours > 0 {
		frac := t.SpentHours / *t.EstimatedHours
		if frac > 1 {
			return 1
		}
		return frac
	}

	switch t.Status {
	case TaskStatusInProgress:
		return 0.5
	case TaskStatusInReview:
		return 0.85
	default:
		return 0
	}
}

// RemainingHours estimates the hours left on a task. Returns false when there
// is no estimate to subtract from.
func (t Task) RemainingHours() (float64, bool) {
	if t.EstimatedHours == nil || *t.EstimatedHours <= 0 {
		return 0, false
	}
	remaining := *t.EstimatedHours - t.SpentHours
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// IsOpen reports whether the task is a suggestion candidate.
func (t Task) IsOpen() bool {
	return t.Status != TaskStatusDone
}
