package queries

import (
	"context"
	"log/slog"
	"time"

	"venue-booking/internal/domain/availability"
	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/errs"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability_mock.go -package=queriesmock

type AvailabilityQueries interface {
	GetAvailability(ctx context.Context, date time.Time, station equipment.Station) (*availability.Day, error)
}

type AvailabilityReadStore interface {
	Occupancy(ctx context.Context, date time.Time, station equipment.Station) ([]availability.Occupancy, error)
}

// AvailabilityCache stores raw occupancy so the passed flags are always recomputed against now.
type AvailabilityCache interface {
	Get(ctx context.Context, date time.Time, station equipment.Station) ([]availability.Occupancy, bool, error)
	Set(ctx context.Context, date time.Time, station equipment.Station, occ []availability.Occupancy) error
	Invalidate(ctx context.Context, date time.Time, station equipment.Station) error
}

type AvailabilityOptions struct {
	// DemoFallback serves synthesized data when the store is unreachable.
	DemoFallback bool
}

type availabilityQueriesImpl struct {
	readStore AvailabilityReadStore
	cache     AvailabilityCache
	schedule  venue.Schedule
	clock     clock.Clock
	opts      AvailabilityOptions
}

func NewAvailabilityQueries(
	readStore AvailabilityReadStore,
	cache AvailabilityCache,
	schedule venue.Schedule,
	clock clock.Clock,
	opts AvailabilityOptions,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		readStore: readStore,
		cache:     cache,
		schedule:  schedule,
		clock:     clock,
		opts:      opts,
	}
}

func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, date time.Time, station equipment.Station) (*availability.Day, error) {
	if !station.IsValid() {
		return nil, errs.Mark(equipment.ErrInvalidStation, errs.ErrDomainValidation)
	}
	now := q.clock.Now()
	date = q.schedule.Date(date)

	occ, hit, err := q.cache.Get(ctx, date, station)
	if err != nil {
		slog.Warn("availability cache read failed", "date", date.Format(venue.DateLayout), "station", station, "error", err.Error())
	}
	if err == nil && hit {
		day := availability.Resolve(q.schedule, now, date, station, occ)
		return &day, nil
	}

	occ, err = q.readStore.Occupancy(ctx, date, station)
	if err != nil {
		if q.opts.DemoFallback {
			slog.Warn("availability store unavailable, serving demo data",
				"date", date.Format(venue.DateLayout), "station", station, "error", err.Error())
			day := availability.Demo(q.schedule, now, date, station)
			return &day, nil
		}
		return nil, errs.Mark(err, errs.ErrUpstreamFailure)
	}

	if err := q.cache.Set(ctx, date, station, occ); err != nil {
		slog.Warn("availability cache write failed", "station", station, "error", err.Error())
	}

	day := availability.Resolve(q.schedule, now, date, station, occ)
	return &day, nil
}
