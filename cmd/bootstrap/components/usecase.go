package components

import (
	"log/slog"

	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewSchedule,
	NewAvailabilityOptions,
	func(cfg config.Config) config.StripeConfig { return cfg.Stripe },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewCreditCommands,
		commands.NewMembershipCommands,
		commands.NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewAccountQueries,
		queries.NewAvailabilityQueries,
		queries.NewCatalogQueries,
	),
)

func NewSchedule(cfg config.Config) venue.Schedule {
	return venue.NewSchedule(cfg.Venue.Location(), cfg.Venue.OpenHour, cfg.Venue.CloseHour)
}

// Demo data must never reach production callers.
func NewAvailabilityOptions(cfg config.Config) queries.AvailabilityOptions {
	if cfg.Venue.DemoFallback && gin.Mode() == gin.ReleaseMode {
		slog.Warn("AVAILABILITY_DEMO_FALLBACK ignored in release mode")
		return queries.AvailabilityOptions{}
	}
	return queries.AvailabilityOptions{DemoFallback: cfg.Venue.DemoFallback}
}
