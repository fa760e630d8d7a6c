package models

import (
	"time"

	"github.com/dealercoach/dealercoach/internal/checklist"
	"github.com/dealercoach/dealercoach/internal/evaluation"
)

// TrainingSession is one evaluated role-play session. The transcript and the
// structured evaluation are stored as JSON so the dashboard can replay them.
type TrainingSession struct {
	ID              string
	UserID          string
	ChecklistID     string
	PersonaID       string
	OverallScore    int
	DurationSeconds int
	Transcript      []checklist.Turn
	Evaluation      evaluation.Result
	CreatedAt       time.Time
}
