// Package evaluation turns a finished role-play transcript into a structured
// coaching score. The heavy lifting is done by the language model; this
// package builds the grading prompt, parses the model's JSON, and falls back
// to a deterministic score when the model returns something unparsable.
package evaluation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dealercoach/dealercoach/internal/ai"
	"github.com/dealercoach/dealercoach/internal/checklist"
)

// CategoryScore grades one coaching dimension on a 0-100 scale.
type CategoryScore struct {
	Score        int      `json:"score"`
	Label        string   `json:"label"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Tip          string   `json:"tip"`
}

// Categories are the four graded coaching dimensions.
type Categories struct {
	Rapport             CategoryScore `json:"rapport"`
	InfoGathering       CategoryScore `json:"infoGathering"`
	NeedsIdentification CategoryScore `json:"needsIdentification"`
	CNACompletion       CategoryScore `json:"cnaCompletion"`
}

// Result is the full evaluation returned to the client. The flattened Score,
// Strengths, and Improvements fields duplicate the overall values for older
// clients that predate the per-category shape.
type Result struct {
	OverallScore int        `json:"overallScore"`
	Categories   Categories `json:"categories"`
	OverallTip   string     `json:"overallTip"`

	// Legacy flattened fields.
	Score        int      `json:"score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// systemPrompt instructs the model to respond with nothing but the JSON shape
// Parse expects.
const systemPrompt = `You are a sales trainer grading a car-dealership role-play session.
Grade the SALESPERSON (the "user" role), not the customer.
Respond with a single JSON object and nothing else, using this exact shape:
{
  "overallScore": 0-100,
  "categories": {
    "rapport": {"score": 0-100, "label": "...", "strengths": ["..."], "improvements": ["..."], "tip": "..."},
    "infoGathering": {"score": 0-100, "label": "...", "strengths": ["..."], "improvements": ["..."], "tip": "..."},
    "needsIdentification": {"score": 0-100, "label": "...", "strengths": ["..."], "improvements": ["..."], "tip": "..."},
    "cnaCompletion": {"score": 0-100, "label": "...", "strengths": ["..."], "improvements": ["..."], "tip": "..."}
  },
  "overallTip": "..."
}`

// BuildPrompt assembles the grading request for the model.
func BuildPrompt(
	scenario string,
	turns []checklist.Turn,
	progress int,
	durationSeconds int,
) (string, []ai.Message) {
	var b strings.Builder
	fmt.Fprintf(&b, "Scenario: %s\n", scenario)
	fmt.Fprintf(&b, "Session length: %d seconds\n", durationSeconds)
	fmt.Fprintf(&b, "Checklist completion: %d%%\n\n", progress)
	b.WriteString("Transcript:\n")
	for _, turn := range turns {
		speaker := "Salesperson"
		if turn.Role == checklist.RoleAssistant {
			speaker = "Customer"
		}
		fmt.Fprintf(&b, "%s: %s\n", speaker, turn.Content)
	}
	messages := []ai.Message{{Role: "user", Content: b.String()}}
	return systemPrompt, messages
}

// Parse extracts the evaluation JSON from the model output. Models sometimes
// wrap the object in prose or a code fence, so we parse from the first '{' to
// the last '}'. The second return value reports whether parsing succeeded;
// callers should substitute Fallback on failure rather than erroring.
func Parse(raw string) (Result, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return Result{}, false
	}

	var result Result
	if err := json.Unmarshal([]byte(raw[start:end+1]), &result); err != nil {
		return Result{}, false
	}
	if result.OverallScore <= 0 {
		return Result{}, false
	}
	return flatten(result), true
}

// Fallback is the deterministic score used when the model response cannot be
// parsed. It grades purely on checklist completion so the trainee still gets
// a consistent, explainable number.
func Fallback(progress int, durationSeconds int) Result {
	score := 40 + progress/2
	if score > 90 {
		score = 90
	}
	// A session under a minute cannot demonstrate a full discovery
	// conversation no matter what the checklist says.
	if durationSeconds < 60 && score > 50 {
		score = 50
	}
	category := CategoryScore{
		Score:        score,
		Label:        scoreLabel(score),
		Strengths:    []string{"Completed a full practice session"},
		Improvements: []string{"Work through more of the checklist next time"},
		Tip:          "Slow down and ask one discovery question at a time.",
	}
	cna := category
	cna.Score = progress
	cna.Label = scoreLabel(progress)

	result := Result{
		OverallScore: score,
		Categories: Categories{
			Rapport:             category,
			InfoGathering:       category,
			NeedsIdentification: category,
			CNACompletion:       cna,
		},
		OverallTip: "Keep practicing: aim to cover every checklist item before closing the session.",
	}
	return flatten(result)
}

// flatten fills the legacy fields from the structured ones.
func flatten(result Result) Result {
	result.Score = result.OverallScore
	result.Strengths = nil
	result.Improvements = nil
	for _, category := range []CategoryScore{
		result.Categories.Rapport,
		result.Categories.InfoGathering,
		result.Categories.NeedsIdentification,
		result.Categories.CNACompletion,
	} {
		result.Strengths = append(result.Strengths, category.Strengths...)
		result.Improvements = append(result.Improvements, category.Improvements...)
	}
	return result
}

func scoreLabel(score int) string {
	switch {
	case score >= 75:
		return "Strong"
	case score >= 50:
		return "Getting there"
	default:
		return "Needs work"
	}
}
