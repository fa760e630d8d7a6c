package evaluation_test

import (
	"strings"
	"testing"

	"github.com/dealercoach/dealercoach/internal/checklist"
	"github.com/dealercoach/dealercoach/internal/evaluation"
	"github.com/stretchr/testify/require"
)

const validModelOutput = `{
  "overallScore": 82,
  "categories": {
    "rapport": {"score": 90, "label": "Strong", "strengths": ["Warm greeting"], "improvements": [], "tip": "Keep it up."},
    "infoGathering": {"score": 80, "label": "Strong", "strengths": ["Asked open questions"], "improvements": ["Dig into budget earlier"], "tip": "Lead with open questions."},
    "needsIdentification": {"score": 78, "label": "Strong", "strengths": [], "improvements": [], "tip": "Confirm what you heard."},
    "cnaCompletion": {"score": 73, "label": "Getting there", "strengths": [], "improvements": ["Missed the trade-in question"], "tip": "Always ask about a trade."}
  },
  "overallTip": "Solid session."
}`

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantOK bool
	}{
		{name: "bare json", raw: validModelOutput, wantOK: true},
		{name: "fenced json", raw: "```json\n" + validModelOutput + "\n```", wantOK: true},
		{name: "json with prose", raw: "Here is your evaluation:\n" + validModelOutput + "\nGood luck!", wantOK: true},
		{name: "empty", raw: "", wantOK: false},
		{name: "no json", raw: "I cannot grade this session.", wantOK: false},
		{name: "broken json", raw: "{\"overallScore\": 82,", wantOK: false},
		{name: "zero score treated as unparsable", raw: `{"overallScore": 0}`, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := evaluation.Parse(tt.raw)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			require.Equal(t, 82, result.OverallScore)
			require.Equal(t, 90, result.Categories.Rapport.Score)
			require.Equal(t, "Solid session.", result.OverallTip)

			// Legacy fields are flattened from the categories.
			require.Equal(t, 82, result.Score)
			require.Contains(t, result.Strengths, "Warm greeting")
			require.Contains(t, result.Improvements, "Missed the trade-in question")
		})
	}
}

func TestFallback(t *testing.T) {
	result := evaluation.Fallback(80, 300)
	require.Equal(t, 80, result.Categories.CNACompletion.Score)
	require.Equal(t, 80, result.OverallScore)
	require.Equal(t, result.OverallScore, result.Score)
	require.NotEmpty(t, result.OverallTip)

	// Deterministic: same inputs, same result.
	require.Equal(t, result, evaluation.Fallback(80, 300))

	// Completion never pushes the score past the cap.
	require.Equal(t, 90, evaluation.Fallback(100, 300).OverallScore)

	// A sub-minute session is capped regardless of completion.
	require.Equal(t, 50, evaluation.Fallback(100, 30).OverallScore)
}

func TestBuildPrompt(t *testing.T) {
	turns := []checklist.Turn{
		{Role: checklist.RoleUser, Content: "Welcome in!"},
		{Role: checklist.RoleAssistant, Content: "Thanks, just looking."},
	}
	system, messages := evaluation.BuildPrompt("Nervous first-time buyer", turns, 45, 180)

	require.Contains(t, system, "single JSON object")
	require.Len(t, messages, 1)
	content := messages[0].Content
	require.Contains(t, content, "Scenario: Nervous first-time buyer")
	require.Contains(t, content, "Checklist completion: 45%")
	require.Contains(t, content, "Salesperson: Welcome in!")
	require.Contains(t, content, "Customer: Thanks, just looking.")
	require.True(t, strings.Contains(content, "180 seconds"))
}
