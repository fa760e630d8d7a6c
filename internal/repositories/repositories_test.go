package repositories_test

import (
	"context"
	"io"
	"testing"

	"github.com/dealercoach/dealercoach/internal/checklist"
	"github.com/dealercoach/dealercoach/internal/evaluation"
	"github.com/dealercoach/dealercoach/internal/funnel"
	"github.com/dealercoach/dealercoach/internal/models"
	"github.com/dealercoach/dealercoach/internal/repositories"
	"github.com/dealercoach/dealercoach/internal/sqlite"
	"github.com/dealercoach/dealercoach/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) *sqlite.Database {
	t.Helper()
	db, err := sqlite.NewDatabase(context.Background(), ":memory:", testhelpers.NewLogger(io.Discard))
	require.NoError(t, err)
	return db
}

func TestLeadRepository(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDatabase(t)
	repo := repositories.NewLeadRepository(db, testhelpers.NewLogger(io.Discard))

	leads, err := repo.List(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, leads)

	created, err := repo.Create(ctx, "alice", "John Smith", funnel.SourceInternet, funnel.StatusLead)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	_, err = repo.Create(ctx, "bob", "Jane Doe", funnel.SourcePhone, funnel.StatusSold)
	require.NoError(t, err)

	// Listing is scoped to the user.
	leads, err = repo.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "John Smith", leads[0].Name)

	// Partial update: only the status changes.
	status := funnel.StatusApptSet
	require.NoError(t, repo.Update(ctx, "alice", created.ID, nil, nil, &status))
	leads, err = repo.List(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, funnel.StatusApptSet, leads[0].Status)
	assert.Equal(t, "John Smith", leads[0].Name)

	// Another user cannot touch the lead.
	err = repo.Update(ctx, "bob", created.ID, nil, nil, &status)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	err = repo.Delete(ctx, "bob", created.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "alice", created.ID))
	leads, err = repo.List(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestLeadRepositoryTeamCounters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDatabase(t)
	repo := repositories.NewLeadRepository(db, testhelpers.NewLogger(io.Discard))

	seed := []struct {
		userID string
		source funnel.Source
		status funnel.Status
	}{
		{"alice", funnel.SourceInternet, funnel.StatusSold},
		{"alice", funnel.SourceInternet, funnel.StatusLead},
		{"alice", funnel.SourcePhone, funnel.StatusShowed},
		{"bob", funnel.SourcePhone, funnel.StatusApptSet},
		{"bob", funnel.SourceWalkIn, funnel.StatusSold},
	}
	for _, lead := range seed {
		_, err := repo.Create(ctx, lead.userID, "Lead", lead.source, lead.status)
		require.NoError(t, err)
	}

	counters, err := repo.TeamCounters(ctx)
	require.NoError(t, err)
	require.Len(t, counters, 2)

	alice := counters["alice"]
	assert.Equal(t, 2, alice.InternetLeads)
	assert.Equal(t, 1, alice.InternetAppointments)
	assert.Equal(t, 1, alice.InternetShows)
	assert.Equal(t, 1, alice.InternetSales)
	assert.Equal(t, 1, alice.PhoneLeads)
	assert.Equal(t, 1, alice.PhoneShows)
	assert.Equal(t, 0, alice.PhoneSales)

	// Walk-in leads never count toward the internet or phone columns.
	bob := counters["bob"]
	assert.Equal(t, 0, bob.InternetLeads)
	assert.Equal(t, 1, bob.PhoneLeads)
	assert.Equal(t, 1, bob.PhoneAppointments)
}

func TestGoalRepository(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDatabase(t)
	repo := repositories.NewGoalRepository(db, testhelpers.NewLogger(io.Discard))

	// Unset goals read back as zero values.
	goals, err := repo.Goals(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, funnel.Goals{}, goals)

	want := funnel.Goals{
		Sales:         15,
		ShowRate:      60,
		CloseRate:     30,
		InternetLeads: 80,
		PhoneLeads:    40,
		WalkIns:       25,
	}
	require.NoError(t, repo.UpsertGoals(ctx, "alice", want))
	goals, err = repo.Goals(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, want, goals)

	// Upsert replaces rather than accumulates.
	want.Sales = 20
	require.NoError(t, repo.UpsertGoals(ctx, "alice", want))
	goals, err = repo.Goals(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 20, goals.Sales)
}

func TestGoalRepositoryWalkIns(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDatabase(t)
	repo := repositories.NewGoalRepository(db, testhelpers.NewLogger(io.Discard))

	walkIn, err := repo.WalkIn(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, funnel.WalkIn{}, walkIn)

	require.NoError(t, repo.UpsertWalkIn(ctx, "alice", funnel.WalkIn{Visits: 12, Sales: 3}))
	require.NoError(t, repo.UpsertWalkIn(ctx, "bob", funnel.WalkIn{Visits: 5, Sales: 1}))

	walkIn, err = repo.WalkIn(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, funnel.WalkIn{Visits: 12, Sales: 3}, walkIn)

	all, err := repo.AllWalkIns(ctx)
	require.NoError(t, err)
	assert.Equal(t, funnel.WalkIn{Visits: 5, Sales: 1}, all["bob"])
}

func TestInvitationRepository(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDatabase(t)
	repo := repositories.NewInvitationRepository(db, testhelpers.NewLogger(io.Discard))

	exists, err := repo.Exists(ctx, "new.hire@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, "New.Hire@Example.com", "manager-1"))

	// Lookup is case-insensitive.
	exists, err = repo.Exists(ctx, "NEW.HIRE@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	// Re-inviting is a no-op and keeps the original inviter.
	require.NoError(t, repo.Create(ctx, "new.hire@example.com", "manager-2"))

	invitations, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, invitations, 1)
	assert.Equal(t, "new.hire@example.com", invitations[0].Email)
	assert.Equal(t, "manager-1", invitations[0].InvitedBy)
	assert.False(t, invitations[0].CreatedAt.IsZero())
}

func TestSessionRepository(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDatabase(t)
	repo := repositories.NewSessionRepository(db, testhelpers.NewLogger(io.Discard))

	session := models.TrainingSession{
		UserID:          "alice",
		ChecklistID:     "cna",
		PersonaID:       "first-time-buyer",
		OverallScore:    82,
		DurationSeconds: 300,
		Transcript: []checklist.Turn{
			{Role: checklist.RoleUser, Content: "Welcome in, what brings you by?"},
			{Role: checklist.RoleAssistant, Content: "Just looking at SUVs."},
		},
		Evaluation: evaluation.Fallback(50, 300),
	}

	created, err := repo.Create(ctx, session)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = repo.Create(ctx, models.TrainingSession{UserID: "bob", ChecklistID: "phone-up"})
	require.NoError(t, err)

	sessions, err := repo.ListRecent(ctx, "alice", 10)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, created.ID, sessions[0].ID)
	assert.Equal(t, 82, sessions[0].OverallScore)
	assert.Equal(t, "first-time-buyer", sessions[0].PersonaID)
	assert.Equal(t, session.Transcript, sessions[0].Transcript)
	assert.Equal(t, session.Evaluation, sessions[0].Evaluation)
	assert.False(t, sessions[0].CreatedAt.IsZero())
}
