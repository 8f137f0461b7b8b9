package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"smart-focus-suggestion/internal/model"
	"smart-focus-suggestion/internal/suggestion"
	"smart-focus-suggestion/pkg/llmprovider"
)

const oracleSystemPrompt = `You are a focus assistant for users who struggle with attention regulation.
Given a list of candidate tasks with scores and the user's current state, choose the single best task to work on right now.
Respond with JSON only, no prose, in exactly this shape:
{
  "task_id": "<id of the chosen task, must be one of the candidates>",
  "rationale": "<one or two sentences, warm and concrete>",
  "action": "<one concrete first step>",
  "estimated_minutes": <integer>,
  "success_probability": <number between 0 and 1>,
  "alternatives": [{"task_id": "<candidate id>", "category": "<short tag>"}]
}`

// oracleAnswer is the validated oracle output. Only the primary slot is taken
// from it; alternatives always come from the deterministic composer.
type oracleAnswer struct {
	TaskID             string
	Rationale          string
	Action             string
	EstimatedMinutes   int
	SuccessProbability float64
}

// oraclePayload is the wire shape the oracle is asked to produce.
type oraclePayload struct {
	TaskID             string  `json:"task_id"`
	Rationale          string  `json:"rationale"`
	Action             string  `json:"action"`
	EstimatedMinutes   int     `json:"estimated_minutes"`
	SuccessProbability float64 `json:"success_probability"`
	Alternatives       []struct {
		TaskID   string `json:"task_id"`
		Category string `json:"category"`
	} `json:"alternatives"`
}

// tryOracle attempts an AI-backed recommendation for the top candidates.
// Every failure path returns ok=false and the caller proceeds with the
// deterministic result — nothing here may error out to the user.
func (uc *implUseCase) tryOracle(
	ctx context.Context,
	sc model.Scope,
	sctx model.SuggestionContext,
	scored []suggestion.ScoredTask,
) (oracleAnswer, bool) {
	if uc.llm == nil {
		return oracleAnswer{}, false
	}

	topN := uc.cfg.OracleTopN
	if topN > len(scored) {
		topN = len(scored)
	}
	candidates := scored[:topN]

	candidateIDs := make(map[string]struct{}, len(candidates))
	for _, st := range candidates {
		candidateIDs[st.Task.ID] = struct{}{}
	}

	key := uc.oracleCacheKey(sc.UserID, sctx, candidates)
	if cached, ok := uc.oracleCache.Get(key); ok {
		// A cached answer is only reusable while its task is still a candidate.
		if _, stillValid := candidateIDs[cached.TaskID]; stillValid {
			return cached, true
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.cfg.OracleTimeout)
	defer cancel()

	resp, err := uc.llm.GenerateContent(callCtx, &llmprovider.Request{
		SystemInstruction: oracleSystemPrompt,
		Prompt:            buildOraclePrompt(sctx, candidates),
		Temperature:       0.4,
		MaxTokens:         512,
	})
	if err != nil {
		uc.l.Warnf(ctx, "oracle call failed, using fallback: %v", err)
		return oracleAnswer{}, false
	}

	answer, err := parseOracleResponse(resp.Text, candidateIDs)
	if err != nil {
		uc.l.Warnf(ctx, "oracle response rejected, using fallback: %v", err)
		return oracleAnswer{}, false
	}

	uc.oracleCache.Add(key, answer)
	return answer, true
}

// oracleCacheKey fingerprints the user + context + candidate set so identical
// situations within the TTL reuse a prior answer.
func (uc *implUseCase) oracleCacheKey(userID string, sctx model.SuggestionContext, candidates []suggestion.ScoredTask) string {
	var b strings.Builder
	b.WriteString(userID)
	b.WriteByte('|')
	b.WriteString(string(sctx.Energy))
	b.WriteByte('|')
	b.WriteString(string(sctx.Mood))
	b.WriteByte('|')
	b.WriteString(string(sctx.Strategy))
	fmt.Fprintf(&b, "|%d", sctx.FocusMinutes/15)
	for _, st := range candidates {
		b.WriteByte('|')
		b.WriteString(st.Task.ID)
	}
	return b.String()
}

// buildOraclePrompt serializes context and candidates compactly.
func buildOraclePrompt(sctx model.SuggestionContext, candidates []suggestion.ScoredTask) string {
	var b strings.Builder

	fmt.Fprintf(&b, "User state: energy=%s mood=%s focus_minutes=%d hours_worked_today=%.1f",
		sctx.Energy, sctx.Mood, sctx.FocusMinutes, sctx.HoursWorkedToday)
	if sctx.Strategy != "" {
		fmt.Fprintf(&b, " requested_strategy=%s", sctx.Strategy)
	}
	b.WriteString("\n\nCandidate tasks:\n")

	for _, st := range candidates {
		t := st.Task
		fmt.Fprintf(&b, "- id=%s title=%q status=%s priority=%s score=%.0f completion=%.0f%%",
			t.ID, t.Title, t.Status, t.EffectivePriority(), st.Score, t.CompletionFraction()*100)
		if t.DueAt != nil {
			fmt.Fprintf(&b, " due=%s", t.DueAt.Format(time.RFC3339))
		}
		if remaining, ok := t.RemainingHours(); ok {
			fmt.Fprintf(&b, " remaining_hours=%.1f", remaining)
		}
		if len(st.Categories) > 0 {
			tags := make([]string, len(st.Categories))
			for i, c := range st.Categories {
				tags[i] = string(c)
			}
			fmt.Fprintf(&b, " tags=%s", strings.Join(tags, ","))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// parseOracleResponse validates and repairs the raw oracle output. Anything
// that cannot be fully validated is an error and triggers the fallback.
func parseOracleResponse(text string, candidateIDs map[string]struct{}) (oracleAnswer, error) {
	text = stripCodeFences(text)

	var payload oraclePayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return oracleAnswer{}, fmt.Errorf("malformed JSON: %w", err)
	}

	if payload.TaskID == "" || payload.Rationale == "" {
		return oracleAnswer{}, fmt.Errorf("missing required fields")
	}
	if _, ok := candidateIDs[payload.TaskID]; !ok {
		return oracleAnswer{}, fmt.Errorf("task id %q not among candidates", payload.TaskID)
	}
	for _, alt := range payload.Alternatives {
		if _, ok := candidateIDs[alt.TaskID]; !ok {
			return oracleAnswer{}, fmt.Errorf("alternative task id %q not among candidates", alt.TaskID)
		}
	}

	// Repairable fields get sane bounds instead of rejection.
	if payload.EstimatedMinutes <= 0 {
		payload.EstimatedMinutes = focusMinutesDefault
	}
	if payload.SuccessProbability <= 0 || payload.SuccessProbability > 1 {
		payload.SuccessProbability = 0.7
	}
	if payload.Action == "" {
		payload.Action = "Start with the first small step."
	}

	return oracleAnswer{
		TaskID:             payload.TaskID,
		Rationale:          payload.Rationale,
		Action:             payload.Action,
		EstimatedMinutes:   payload.EstimatedMinutes,
		SuccessProbability: payload.SuccessProbability,
	}, nil
}

// stripCodeFences removes a surrounding markdown code block if present.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
