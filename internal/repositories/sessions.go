package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/dealercoach/dealercoach/internal/errors"
	"github.com/dealercoach/dealercoach/internal/models"
	"github.com/dealercoach/dealercoach/internal/sqlite"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type SessionRepository struct {
	readWrite *sql.DB
	read      *sqlx.DB
	logger    *slog.Logger
}

func NewSessionRepository(dbs *sqlite.Database, logger *slog.Logger) *SessionRepository {
	return &SessionRepository{
		readWrite: dbs.ReadWrite,
		read:      sqlx.NewDb(dbs.ReadOnly, "sqlite3"),
		logger:    logger.With("source", "SessionRepository"),
	}
}

// Create persists an evaluated session and returns it with its assigned ID.
func (r *SessionRepository) Create(
	ctx context.Context,
	session models.TrainingSession,
) (models.TrainingSession, error) {
	session.ID = uuid.NewString()

	transcript, err := json.Marshal(session.Transcript)
	if err != nil {
		return models.TrainingSession{}, errors.Wrap(err, "marshal transcript")
	}
	result, err := json.Marshal(session.Evaluation)
	if err != nil {
		return models.TrainingSession{}, errors.Wrap(err, "marshal evaluation")
	}

	stmt := `INSERT INTO training_sessions
	(id, user_id, checklist_id, persona_id, overall_score, duration_seconds, transcript, evaluation)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.readWrite.ExecContext(ctx, stmt,
		session.ID, session.UserID, session.ChecklistID, session.PersonaID,
		session.OverallScore, session.DurationSeconds, string(transcript), string(result))
	if err != nil {
		return models.TrainingSession{}, errors.Wrap(err, "insert training session",
			slog.String("id", session.ID))
	}
	return session, nil
}

type sessionRow struct {
	ID              string `db:"id"`
	UserID          string `db:"user_id"`
	ChecklistID     string `db:"checklist_id"`
	PersonaID       string `db:"persona_id"`
	OverallScore    int    `db:"overall_score"`
	DurationSeconds int    `db:"duration_seconds"`
	Transcript      string `db:"transcript"`
	Evaluation      string `db:"evaluation"`
	CreatedAt       string `db:"created_at"`
}

// ListRecent returns the user's most recent sessions, newest first.
func (r *SessionRepository) ListRecent(
	ctx context.Context,
	userID string,
	limit int,
) ([]models.TrainingSession, error) {
	rows := []sessionRow{}
	stmt := `SELECT id, user_id, checklist_id, persona_id, overall_score, duration_seconds,
	transcript, evaluation, created_at
	FROM training_sessions WHERE user_id = ?
	ORDER BY created_at DESC, id LIMIT ?`
	if err := r.read.SelectContext(ctx, &rows, stmt, userID, limit); err != nil {
		return nil, errors.Wrap(err, "select training sessions")
	}

	sessions := make([]models.TrainingSession, 0, len(rows))
	for _, row := range rows {
		session := models.TrainingSession{
			ID:              row.ID,
			UserID:          row.UserID,
			ChecklistID:     row.ChecklistID,
			PersonaID:       row.PersonaID,
			OverallScore:    row.OverallScore,
			DurationSeconds: row.DurationSeconds,
		}
		if err := json.Unmarshal([]byte(row.Transcript), &session.Transcript); err != nil {
			return nil, errors.Wrap(err, "unmarshal transcript", slog.String("id", row.ID))
		}
		if err := json.Unmarshal([]byte(row.Evaluation), &session.Evaluation); err != nil {
			return nil, errors.Wrap(err, "unmarshal evaluation", slog.String("id", row.ID))
		}
		createdAt, err := time.Parse(time.DateTime, row.CreatedAt)
		if err != nil {
			return nil, errors.Wrap(err, "parse created_at", slog.String("id", row.ID))
		}
		session.CreatedAt = createdAt
		sessions = append(sessions, session)
	}
	return sessions, nil
}
