package usecase

import (
	"testing"
	"time"

	"smart-focus-suggestion/internal/model"
)

func mediumContext() model.SuggestionContext {
	return model.SuggestionContext{
		Energy:       model.EnergyMedium,
		Mood:         model.MoodNeutral,
		FocusMinutes: 45,
	}
}

func TestScoreTaskUrgencyMonotonic(t *testing.T) {
	w := DefaultWeights()
	sctx := mediumContext()

	dueAt := func(d time.Duration) model.Task {
		return model.Task{ID: "t", Status: model.TaskStatusTodo, DueAt: ptrTime(testNow.Add(d))}
	}

	overdue := scoreTask(dueAt(-time.Hour), sctx, nil, testNow, w)
	today := scoreTask(dueAt(12*time.Hour), sctx, nil, testNow, w)
	soon := scoreTask(dueAt(2*24*time.Hour), sctx, nil, testNow, w)
	week := scoreTask(dueAt(6*24*time.Hour), sctx, nil, testNow, w)
	later := scoreTask(dueAt(30*24*time.Hour), sctx, nil, testNow, w)

	if !(overdue.Urgency > today.Urgency && today.Urgency > soon.Urgency &&
		soon.Urgency > week.Urgency && week.Urgency > later.Urgency) {
		t.Errorf("urgency must strictly decrease with deadline distance: %.0f %.0f %.0f %.0f %.0f",
			overdue.Urgency, today.Urgency, soon.Urgency, week.Urgency, later.Urgency)
	}
	if later.Urgency != 0 {
		t.Errorf("a distant deadline should contribute no urgency, got %.0f", later.Urgency)
	}
}

func TestScoreTaskNoDueDateNoUrgency(t *testing.T) {
	b := scoreTask(model.Task{Status: model.TaskStatusTodo}, mediumContext(), nil, testNow, DefaultWeights())
	if b.Urgency != 0 {
		t.Errorf("urgency without a due date = %.0f, want 0", b.Urgency)
	}
}

func TestScoreTaskRecencyPenalty(t *testing.T) {
	w := DefaultWeights()
	sctx := mediumContext()
	task := model.Task{ID: "r1", Status: model.TaskStatusTodo}

	fresh := scoreTask(task, sctx, nil, testNow, w)
	recent := scoreTask(task, sctx, map[string]struct{}{"r1": {}}, testNow, w)

	if recent.Total() >= fresh.Total() {
		t.Errorf("recently suggested task should score lower: %.0f vs %.0f", recent.Total(), fresh.Total())
	}
	if diff := fresh.Total() - recent.Total(); diff != w.RecencyPenalty {
		t.Errorf("penalty delta = %.0f, want %.0f", diff, w.RecencyPenalty)
	}
}

func TestScoreTaskContextFit(t *testing.T) {
	w := DefaultWeights()

	// Small remainder fits the focus window and the task demands low energy.
	task := model.Task{
		Status:         model.TaskStatusInProgress,
		EstimatedHours: ptrFloat(1),
		SpentHours:     0.8,
	}
	sctx := model.SuggestionContext{Energy: model.EnergyLow, FocusMinutes: 25}

	b := scoreTask(task, sctx, nil, testNow, w)
	if b.ContextFit != w.EnergyMatchBonus+w.FocusFitBonus {
		t.Errorf("expected both fit bonuses, got %.0f", b.ContextFit)
	}
}

func TestScoreTasksSortedDescending(t *testing.T) {
	tasks := threeTasks()
	scored := scoreTasks(tasks, mediumContext(), nil, testNow, DefaultWeights())

	if len(scored) != len(tasks) {
		t.Fatalf("scored %d of %d tasks", len(scored), len(tasks))
	}
	for i := 1; i < len(scored); i++ {
		if scored[i].Score > scored[i-1].Score {
			t.Errorf("scores not descending at %d: %.0f > %.0f", i, scored[i].Score, scored[i-1].Score)
		}
	}
	// The overdue, high-priority, nearly-done task must outscore the rest.
	if scored[0].Task.ID != "t1" {
		t.Errorf("expected t1 on top, got %s", scored[0].Task.ID)
	}
}

func TestScoreTasksStableForEqualScores(t *testing.T) {
	a := model.Task{ID: "a", Status: model.TaskStatusTodo}
	b := model.Task{ID: "b", Status: model.TaskStatusTodo}

	scored := scoreTasks([]model.Task{a, b}, mediumContext(), nil, testNow, DefaultWeights())
	if scored[0].Task.ID != "a" || scored[1].Task.ID != "b" {
		t.Errorf("equal scores must keep input order, got %s then %s", scored[0].Task.ID, scored[1].Task.ID)
	}
}
