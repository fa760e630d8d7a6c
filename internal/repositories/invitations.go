package repositories

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/dealercoach/dealercoach/internal/errors"
	"github.com/dealercoach/dealercoach/internal/models"
	"github.com/dealercoach/dealercoach/internal/sqlite"
	"github.com/jmoiron/sqlx"
)

type InvitationRepository struct {
	readWrite *sql.DB
	read      *sqlx.DB
	logger    *slog.Logger
}

func NewInvitationRepository(dbs *sqlite.Database, logger *slog.Logger) *InvitationRepository {
	return &InvitationRepository{
		readWrite: dbs.ReadWrite,
		read:      sqlx.NewDb(dbs.ReadOnly, "sqlite3"),
		logger:    logger.With("source", "InvitationRepository"),
	}
}

// Exists reports whether the email has an invitation. Matching is
// case-insensitive; addresses are stored lowercased.
func (r *InvitationRepository) Exists(ctx context.Context, email string) (bool, error) {
	var count int
	stmt := `SELECT COUNT(*) FROM invitations WHERE email = ?`
	if err := r.read.GetContext(ctx, &count, stmt, normalizeEmail(email)); err != nil {
		return false, errors.Wrap(err, "select invitation")
	}
	return count > 0, nil
}

// Create records an invitation. Inviting an already-invited address is a
// no-op, not an error.
func (r *InvitationRepository) Create(ctx context.Context, email string, invitedBy string) error {
	stmt := `INSERT OR IGNORE INTO invitations (email, invited_by) VALUES (?, ?)`
	_, err := r.readWrite.ExecContext(ctx, stmt, normalizeEmail(email), invitedBy)
	if err != nil {
		return errors.Wrap(err, "insert invitation")
	}
	return nil
}

type invitationRow struct {
	Email     string `db:"email"`
	InvitedBy string `db:"invited_by"`
	CreatedAt string `db:"created_at"`
}

// List returns every invitation, newest first.
func (r *InvitationRepository) List(ctx context.Context) ([]models.Invitation, error) {
	rows := []invitationRow{}
	stmt := `SELECT email, invited_by, created_at FROM invitations ORDER BY created_at DESC, email`
	if err := r.read.SelectContext(ctx, &rows, stmt); err != nil {
		return nil, errors.Wrap(err, "select invitations")
	}

	invitations := make([]models.Invitation, 0, len(rows))
	for _, row := range rows {
		createdAt, err := time.Parse(time.DateTime, row.CreatedAt)
		if err != nil {
			return nil, errors.Wrap(err, "parse created_at", slog.String("email", row.Email))
		}
		invitations = append(invitations, models.Invitation{
			Email:     row.Email,
			InvitedBy: row.InvitedBy,
			CreatedAt: createdAt,
		})
	}
	return invitations, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
