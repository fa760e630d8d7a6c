package repositories

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/dealercoach/dealercoach/internal/errors"
	"github.com/dealercoach/dealercoach/internal/funnel"
	"github.com/dealercoach/dealercoach/internal/sqlite"
	"github.com/jmoiron/sqlx"
)

// GoalRepository stores monthly goals and the manual walk-in counters. Both
// are single-row-per-user tables, so reads return zero values instead of
// ErrNotFound when nothing has been saved yet.
type GoalRepository struct {
	readWrite *sql.DB
	read      *sqlx.DB
	logger    *slog.Logger
}

func NewGoalRepository(dbs *sqlite.Database, logger *slog.Logger) *GoalRepository {
	return &GoalRepository{
		readWrite: dbs.ReadWrite,
		read:      sqlx.NewDb(dbs.ReadOnly, "sqlite3"),
		logger:    logger.With("source", "GoalRepository"),
	}
}

type goalRow struct {
	Sales         int     `db:"sales"`
	ShowRate      float64 `db:"show_rate"`
	CloseRate     float64 `db:"close_rate"`
	InternetLeads int     `db:"internet_leads"`
	PhoneLeads    int     `db:"phone_leads"`
	WalkIns       int     `db:"walk_ins"`
}

// Goals returns the user's monthly goals, zero-valued when never set.
func (r *GoalRepository) Goals(ctx context.Context, userID string) (funnel.Goals, error) {
	var row goalRow
	stmt := `SELECT sales, show_rate, close_rate, internet_leads, phone_leads, walk_ins
	FROM goals WHERE user_id = ?`
	err := r.read.GetContext(ctx, &row, stmt, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return funnel.Goals{}, nil
	}
	if err != nil {
		return funnel.Goals{}, errors.Wrap(err, "select goals")
	}
	return funnel.Goals{
		Sales:         row.Sales,
		ShowRate:      row.ShowRate,
		CloseRate:     row.CloseRate,
		InternetLeads: row.InternetLeads,
		PhoneLeads:    row.PhoneLeads,
		WalkIns:       row.WalkIns,
	}, nil
}

// UpsertGoals replaces the user's monthly goals.
func (r *GoalRepository) UpsertGoals(ctx context.Context, userID string, goals funnel.Goals) error {
	stmt := `INSERT INTO goals (user_id, sales, show_rate, close_rate, internet_leads, phone_leads, walk_ins)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (user_id) DO UPDATE SET
		sales = excluded.sales,
		show_rate = excluded.show_rate,
		close_rate = excluded.close_rate,
		internet_leads = excluded.internet_leads,
		phone_leads = excluded.phone_leads,
		walk_ins = excluded.walk_ins`
	_, err := r.readWrite.ExecContext(ctx, stmt, userID,
		goals.Sales, goals.ShowRate, goals.CloseRate,
		goals.InternetLeads, goals.PhoneLeads, goals.WalkIns)
	if err != nil {
		return errors.Wrap(err, "upsert goals")
	}
	return nil
}

// WalkIn returns the user's walk-in counters, zero-valued when never set.
func (r *GoalRepository) WalkIn(ctx context.Context, userID string) (funnel.WalkIn, error) {
	var walkIn funnel.WalkIn
	stmt := `SELECT visits, sales FROM walk_ins WHERE user_id = ?`
	err := r.read.GetContext(ctx, &walkIn, stmt, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return funnel.WalkIn{}, nil
	}
	if err != nil {
		return funnel.WalkIn{}, errors.Wrap(err, "select walk-ins")
	}
	return walkIn, nil
}

// UpsertWalkIn replaces the user's walk-in counters.
func (r *GoalRepository) UpsertWalkIn(ctx context.Context, userID string, walkIn funnel.WalkIn) error {
	stmt := `INSERT INTO walk_ins (user_id, visits, sales) VALUES (?, ?, ?)
	ON CONFLICT (user_id) DO UPDATE SET visits = excluded.visits, sales = excluded.sales`
	_, err := r.readWrite.ExecContext(ctx, stmt, userID, walkIn.Visits, walkIn.Sales)
	if err != nil {
		return errors.Wrap(err, "upsert walk-ins")
	}
	return nil
}

type walkInRow struct {
	UserID string `db:"user_id"`
	Visits int    `db:"visits"`
	Sales  int    `db:"sales"`
}

// AllWalkIns returns every user's walk-in counters, keyed by user ID. Used by
// the team metrics aggregation.
func (r *GoalRepository) AllWalkIns(ctx context.Context) (map[string]funnel.WalkIn, error) {
	rows := []walkInRow{}
	if err := r.read.SelectContext(ctx, &rows, `SELECT user_id, visits, sales FROM walk_ins`); err != nil {
		return nil, errors.Wrap(err, "select all walk-ins")
	}
	walkIns := make(map[string]funnel.WalkIn, len(rows))
	for _, row := range rows {
		walkIns[row.UserID] = funnel.WalkIn{Visits: row.Visits, Sales: row.Sales}
	}
	return walkIns, nil
}
