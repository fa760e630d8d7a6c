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

type LeadRepository struct {
	readWrite *sql.DB
	read      *sqlx.DB
	logger    *slog.Logger
}

func NewLeadRepository(dbs *sqlite.Database, logger *slog.Logger) *LeadRepository {
	return &LeadRepository{
		readWrite: dbs.ReadWrite,
		read:      sqlx.NewDb(dbs.ReadOnly, "sqlite3"),
		logger:    logger.With("source", "LeadRepository"),
	}
}

// List returns the user's leads ordered by creation.
func (r *LeadRepository) List(ctx context.Context, userID string) ([]funnel.Lead, error) {
	leads := []funnel.Lead{}
	stmt := `SELECT id, name, source, status FROM leads WHERE user_id = ? ORDER BY id`
	if err := r.read.SelectContext(ctx, &leads, stmt, userID); err != nil {
		return nil, errors.Wrap(err, "select leads")
	}
	return leads, nil
}

// Create inserts a lead and returns it with its assigned ID.
func (r *LeadRepository) Create(
	ctx context.Context,
	userID string,
	name string,
	source funnel.Source,
	status funnel.Status,
) (funnel.Lead, error) {
	stmt := `INSERT INTO leads (user_id, name, source, status) VALUES (?, ?, ?, ?)`
	res, err := r.readWrite.ExecContext(ctx, stmt, userID, name, source, status)
	if err != nil {
		return funnel.Lead{}, errors.Wrap(err, "insert lead")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return funnel.Lead{}, errors.Wrap(err, "last insert id")
	}
	return funnel.Lead{ID: id, Name: name, Source: source, Status: status}, nil
}

// Update patches the given fields of a lead. Nil fields are left unchanged.
// Returns ErrNotFound when the lead does not exist or belongs to another user.
func (r *LeadRepository) Update(
	ctx context.Context,
	userID string,
	id int64,
	name *string,
	source *funnel.Source,
	status *funnel.Status,
) error {
	stmt := `UPDATE leads
	SET name = COALESCE(?, name), source = COALESCE(?, source), status = COALESCE(?, status)
	WHERE id = ? AND user_id = ?`
	res, err := r.readWrite.ExecContext(ctx, stmt, name, source, status, id, userID)
	if err != nil {
		return errors.Wrap(err, "update lead", slog.Int64("id", id))
	}
	return requireRowAffected(res, "update lead")
}

// Delete removes a lead. Returns ErrNotFound when nothing was deleted.
func (r *LeadRepository) Delete(ctx context.Context, userID string, id int64) error {
	res, err := r.readWrite.ExecContext(ctx,
		`DELETE FROM leads WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return errors.Wrap(err, "delete lead", slog.Int64("id", id))
	}
	return requireRowAffected(res, "delete lead")
}

type teamCounterRow struct {
	UserID               string `db:"user_id"`
	InternetLeads        int    `db:"internet_leads"`
	InternetAppointments int    `db:"internet_appointments"`
	InternetShows        int    `db:"internet_shows"`
	InternetSales        int    `db:"internet_sales"`
	PhoneLeads           int    `db:"phone_leads"`
	PhoneAppointments    int    `db:"phone_appointments"`
	PhoneShows           int    `db:"phone_shows"`
	PhoneSales           int    `db:"phone_sales"`
}

// TeamCounters aggregates every user's funnel counters straight in SQL. The
// walk-in counters live in a separate table; see GoalRepository.AllWalkIns.
func (r *LeadRepository) TeamCounters(ctx context.Context) (map[string]funnel.TeamMemberCounters, error) {
	stmt := `SELECT user_id,
	SUM(CASE WHEN source = 'internet' THEN 1 ELSE 0 END) AS internet_leads,
	SUM(CASE WHEN source = 'internet' AND status IN ('appt-set', 'showed', 'sold') THEN 1 ELSE 0 END) AS internet_appointments,
	SUM(CASE WHEN source = 'internet' AND status IN ('showed', 'sold') THEN 1 ELSE 0 END) AS internet_shows,
	SUM(CASE WHEN source = 'internet' AND status = 'sold' THEN 1 ELSE 0 END) AS internet_sales,
	SUM(CASE WHEN source = 'phone' THEN 1 ELSE 0 END) AS phone_leads,
	SUM(CASE WHEN source = 'phone' AND status IN ('appt-set', 'showed', 'sold') THEN 1 ELSE 0 END) AS phone_appointments,
	SUM(CASE WHEN source = 'phone' AND status IN ('showed', 'sold') THEN 1 ELSE 0 END) AS phone_shows,
	SUM(CASE WHEN source = 'phone' AND status = 'sold' THEN 1 ELSE 0 END) AS phone_sales
	FROM leads GROUP BY user_id`

	rows := []teamCounterRow{}
	if err := r.read.SelectContext(ctx, &rows, stmt); err != nil {
		return nil, errors.Wrap(err, "select team counters")
	}

	counters := make(map[string]funnel.TeamMemberCounters, len(rows))
	for _, row := range rows {
		counters[row.UserID] = funnel.TeamMemberCounters{
			InternetLeads:        row.InternetLeads,
			InternetAppointments: row.InternetAppointments,
			InternetShows:        row.InternetShows,
			InternetSales:        row.InternetSales,
			PhoneLeads:           row.PhoneLeads,
			PhoneAppointments:    row.PhoneAppointments,
			PhoneShows:           row.PhoneShows,
			PhoneSales:           row.PhoneSales,
		}
	}
	return counters, nil
}

func requireRowAffected(res sql.Result, operation string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if affected == 0 {
		return errors.Wrap(ErrNotFound, operation)
	}
	return nil
}
