package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"github.com/dealercoach/dealercoach/internal/ai"
	"github.com/dealercoach/dealercoach/internal/auth"
	"github.com/dealercoach/dealercoach/internal/envstruct"
	"github.com/dealercoach/dealercoach/internal/errors"
	"github.com/dealercoach/dealercoach/internal/logging"
	"github.com/dealercoach/dealercoach/internal/pprofserver"
	"github.com/dealercoach/dealercoach/internal/repositories"
	"github.com/dealercoach/dealercoach/internal/sqlite"
	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"
)

type application struct {
	logger            *slog.Logger
	anthropic         *ai.AnthropicClient
	tts               *ai.ElevenLabsClient
	transcriber       *ai.Transcriber
	verifier          *auth.Verifier
	leads             *repositories.LeadRepository
	goals             *repositories.GoalRepository
	invitations       *repositories.InvitationRepository
	sessions          *repositories.SessionRepository
	paceWarnThreshold int
}

type config struct {
	// Addr is the address the server listens on, e.g. "localhost:4000".
	// Use port 0 to let the OS assign a free port.
	Addr string `env:"DEALERCOACH_ADDR" envDefault:"localhost:4000"`
	// SQLiteURL is the path to the SQLite database file or ":memory:".
	SQLiteURL string `env:"DEALERCOACH_SQLITE_URL" envDefault:"./dealercoach.sqlite"`
	// AuthSecret is the HS256 signing secret shared with the identity provider.
	AuthSecret string `env:"DEALERCOACH_AUTH_SECRET"`
	// AnthropicAPIKey authenticates the chat and evaluation proxy calls.
	AnthropicAPIKey string `env:"DEALERCOACH_ANTHROPIC_API_KEY" envDefault:""`
	AnthropicModel  string `env:"DEALERCOACH_ANTHROPIC_MODEL" envDefault:"claude-3-5-sonnet-20241022"`
	// AnthropicBaseURL overrides the messages API endpoint, used in tests.
	AnthropicBaseURL string `env:"DEALERCOACH_ANTHROPIC_BASE_URL" envDefault:""`
	ElevenLabsAPIKey string `env:"DEALERCOACH_ELEVENLABS_API_KEY" envDefault:""`
	// ElevenLabsBaseURL overrides the text-to-speech endpoint, used in tests.
	ElevenLabsBaseURL string `env:"DEALERCOACH_ELEVENLABS_BASE_URL" envDefault:""`
	OpenAIAPIKey string `env:"DEALERCOACH_OPENAI_API_KEY" envDefault:""`
	// OpenAIBaseURL overrides the transcription endpoint, used in tests.
	OpenAIBaseURL string `env:"DEALERCOACH_OPENAI_BASE_URL" envDefault:""`
	// PaceWarnThreshold is the sales deficit tolerated before the pace status
	// flips from warning to behind.
	PaceWarnThreshold string `env:"DEALERCOACH_PACE_WARN_THRESHOLD" envDefault:"2"`
}

func main() {
	ctx := context.Background()

	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
	logger := slog.New(loggerHandler)

	// Initialise pprof listening on localhost so that it's not open to the world.
	pprofserver.Launch(":6060", logger)

	// Missing .env is fine, the environment may be configured externally.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.LogAttrs(ctx, slog.LevelError, "load .env", errors.SlogError(err))
		os.Exit(1)
	}

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server failed", errors.SlogError(err))
		os.Exit(1)
	}
}

// run wires the application and serves until ctx is cancelled or the process
// receives an interrupt. It takes its dependencies as arguments so tests can
// start the full server in-process.
func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "parse environment")
	}

	paceWarnThreshold, err := strconv.Atoi(cfg.PaceWarnThreshold)
	if err != nil {
		return errors.Wrap(err, "parse pace warn threshold",
			slog.String("value", cfg.PaceWarnThreshold))
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SQLiteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open database", slog.String("url", cfg.SQLiteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to database")

	anthropic := ai.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	if cfg.AnthropicBaseURL != "" {
		anthropic.SetBaseURL(cfg.AnthropicBaseURL)
	}
	tts := ai.NewElevenLabsClient(cfg.ElevenLabsAPIKey)
	if cfg.ElevenLabsBaseURL != "" {
		tts.SetBaseURL(cfg.ElevenLabsBaseURL)
	}
	transcriber := ai.NewTranscriber(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		transcriberConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
		transcriberConfig.BaseURL = cfg.OpenAIBaseURL
		transcriber = ai.NewTranscriberWithConfig(transcriberConfig)
	}

	app := application{
		logger:            logger,
		anthropic:         anthropic,
		tts:               tts,
		transcriber:       transcriber,
		verifier:          auth.NewVerifier(cfg.AuthSecret),
		leads:             repositories.NewLeadRepository(db, logger),
		goals:             repositories.NewGoalRepository(db, logger),
		invitations:       repositories.NewInvitationRepository(db, logger),
		sessions:          repositories.NewSessionRepository(db, logger),
		paceWarnThreshold: paceWarnThreshold,
	}

	return app.configureAndStartServer(ctx, cfg.Addr)
}
