package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"newsbriefing/internal/config"
	"newsbriefing/internal/infrastructure/feed"
	"newsbriefing/internal/infrastructure/slack"
	"newsbriefing/internal/logging"
	"newsbriefing/internal/ports"
	"newsbriefing/internal/usecase"
)

// Application wires configuration into the fetch-format-send pipeline.
type Application struct {
	cfg      config.Config
	briefing *usecase.Briefing
	notifier ports.Notifier
	logger   *slog.Logger
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	fetcher := feed.NewFetcher(nil, baseLogger.With("component", "fetcher"))

	briefing := usecase.NewBriefing(usecase.BriefingDeps{
		Fetcher:    fetcher,
		Categories: cfg.Categories,
		PerFeed:    cfg.Briefing.ArticlesPerFeed,
		Logger:     baseLogger.With("component", "briefing"),
	})

	notifier := slack.NewNotifier(cfg.Slack)

	return &Application{
		cfg:      cfg,
		briefing: briefing,
		notifier: notifier,
		logger:   baseLogger,
	}
}

// Run executes one complete cycle. An empty briefing (every feed down) is
// still delivered; only a failed delivery makes the run fail.
func (a *Application) Run(ctx context.Context) error {
	now := time.Now().In(a.cfg.Briefing.Location())

	message, total := a.briefing.Build(ctx, now)
	a.logger.Info("briefing assembled", "articles", total)

	if err := a.notifier.Send(ctx, message); err != nil {
		return fmt.Errorf("send briefing: %w", err)
	}

	a.logger.Info("briefing delivered")
	return nil
}
