package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"venue-booking/internal/infra/monitoring"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/usecase/commands"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"
)

var MonitoringModule = fx.Module("monitoring",
	fx.Provide(
		NewErrorReporter,
	),
)

// NewErrorReporter initializes the global Sentry hub that the gin middleware
// clones per request. Without a DSN failures are only logged.
func NewErrorReporter(lc fx.Lifecycle, cfg config.Config) commands.ErrorReporter {
	if cfg.Sentry.DSN == "" {
		return monitoring.LogReporter{}
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		Environment:      cfg.Sentry.Environment,
		EnableTracing:    true,
		TracesSampleRate: 0.2,
	}); err != nil {
		slog.Error("sentry init failed", "error", err)
		return monitoring.LogReporter{}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sentry.Flush(2 * time.Second)
			return nil
		},
	})
	return monitoring.NewSentryReporter(sentry.CurrentHub())
}
