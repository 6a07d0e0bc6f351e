package readstore

import (
	"context"
	"time"

	"venue-booking/internal/domain/availability"
	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/sqlstore"
	"venue-booking/internal/pkg/pgconv"
)

type AvailabilityReadQueries interface {
	ListActiveOccupancy(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListActiveOccupancyParams) ([]sqlstore.ListActiveOccupancyRow, error)
}

type AvailabilityReadStore struct {
	queries AvailabilityReadQueries
	db      sqlstore.DBTX
}

func NewAvailabilityReadStore(queries AvailabilityReadQueries, db sqlstore.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

// Occupancy lists the footprint of every confirmed booking on (date, station).
func (r *AvailabilityReadStore) Occupancy(ctx context.Context, date time.Time, station equipment.Station) ([]availability.Occupancy, error) {
	rows, err := r.queries.ListActiveOccupancy(ctx, r.db, sqlstore.ListActiveOccupancyParams{
		BookingDate: pgconv.DateToPgtype(date),
		Station:     station.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read slot occupancy", err)
	}

	out := make([]availability.Occupancy, 0, len(rows))
	for _, row := range rows {
		out = append(out, availability.Occupancy{
			Hour:  int(row.SlotHour),
			Hours: int(row.Hours),
			Units: int(row.Units),
		})
	}
	return out, nil
}
