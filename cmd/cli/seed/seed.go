// Package seed fills a database with demo data for local development.
package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dealercoach/dealercoach/internal/funnel"
	"github.com/dealercoach/dealercoach/internal/repositories"
	"github.com/dealercoach/dealercoach/internal/sqlite"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "seed",
	Title: "Database seeding",
}

func init() {
	Demo.Flags().String("sqlite-url", "./dealercoach.sqlite", "SQLite URL")
	Demo.Flags().String("user", "demo-user", "user ID to seed data for")
	Invite.Flags().String("sqlite-url", "./dealercoach.sqlite", "SQLite URL")
	Invite.Flags().String("invited-by", "cli", "user ID recorded as the inviter")
}

var demoLeads = []struct {
	name   string
	source funnel.Source
	status funnel.Status
}{
	{"John Smith", funnel.SourceInternet, funnel.StatusSold},
	{"Maria Garcia", funnel.SourceInternet, funnel.StatusShowed},
	{"Wei Chen", funnel.SourceInternet, funnel.StatusApptSet},
	{"Fatima Khan", funnel.SourceInternet, funnel.StatusLead},
	{"Robert Jones", funnel.SourcePhone, funnel.StatusSold},
	{"Linda Brown", funnel.SourcePhone, funnel.StatusApptSet},
	{"Ahmed Ali", funnel.SourcePhone, funnel.StatusLost},
}

var Demo = &cobra.Command{
	Use:     "demo",
	GroupID: "seed",
	Short:   "Seed demo leads, goals and walk-in counters",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		sqliteURL, err := cmd.Flags().GetString("sqlite-url")
		if err != nil {
			return err
		}
		userID, err := cmd.Flags().GetString("user")
		if err != nil {
			return err
		}

		db, err := sqlite.NewDatabase(ctx, sqliteURL, logger)
		if err != nil {
			return err
		}

		leads := repositories.NewLeadRepository(db, logger)
		for _, lead := range demoLeads {
			if _, err = leads.Create(ctx, userID, lead.name, lead.source, lead.status); err != nil {
				return err
			}
		}

		goals := repositories.NewGoalRepository(db, logger)
		if err = goals.UpsertGoals(ctx, userID, funnel.Goals{
			Sales:         12,
			ShowRate:      60,
			CloseRate:     30,
			InternetLeads: 60,
			PhoneLeads:    30,
			WalkIns:       20,
		}); err != nil {
			return err
		}
		if err = goals.UpsertWalkIn(ctx, userID, funnel.WalkIn{Visits: 8, Sales: 2}); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "seeded %d leads, goals and walk-ins for %s\n",
			len(demoLeads), userID)
		return nil
	},
}

var Invite = &cobra.Command{
	Use:     "invite [email...]",
	GroupID: "seed",
	Short:   "Record invitations for the given email addresses",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		sqliteURL, err := cmd.Flags().GetString("sqlite-url")
		if err != nil {
			return err
		}
		invitedBy, err := cmd.Flags().GetString("invited-by")
		if err != nil {
			return err
		}

		db, err := sqlite.NewDatabase(ctx, sqliteURL, logger)
		if err != nil {
			return err
		}

		invitations := repositories.NewInvitationRepository(db, logger)
		for _, email := range args {
			if err = invitations.Create(ctx, email, invitedBy); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(os.Stdout, "invited %s\n", email)
		}
		return nil
	},
}
