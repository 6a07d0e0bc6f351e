package repository

import (
	"context"

	"venue-booking/internal/infra"
	"venue-booking/internal/infra/sqlstore"
	"venue-booking/internal/pkg/pgconv"
	"venue-booking/internal/usecase/shared"
)

type SlotWriteQueries interface {
	ReserveSlot(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ReserveSlotParams) (int32, error)
	ReleaseSlot(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ReleaseSlotParams) error
}

type SlotRepository struct {
	queries SlotWriteQueries
	db      sqlstore.DBTX
}

func NewSlotRepository(queries SlotWriteQueries, db sqlstore.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

// Reserve increments the cell only while it stays within capacity. The statement
// returns no row when the cap would be crossed.
func (r *SlotRepository) Reserve(ctx context.Context, cell shared.SlotCell, units, capacity int) (bool, error) {
	_, err := r.queries.ReserveSlot(ctx, r.db, sqlstore.ReserveSlotParams{
		BookingDate: pgconv.DateToPgtype(cell.Date),
		SlotHour:    int16(cell.Hour), // #nosec G115 -- 0..23
		Station:     cell.Station.String(),
		Units:       int32(units),    // #nosec G115
		Capacity:    int32(capacity), // #nosec G115
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to reserve slot", err)
	}
	return true, nil
}

func (r *SlotRepository) Release(ctx context.Context, cell shared.SlotCell, units int) error {
	err := r.queries.ReleaseSlot(ctx, r.db, sqlstore.ReleaseSlotParams{
		BookingDate: pgconv.DateToPgtype(cell.Date),
		SlotHour:    int16(cell.Hour), // #nosec G115
		Station:     cell.Station.String(),
		Units:       int32(units), // #nosec G115
	})
	if err != nil {
		return infra.WrapRepoErr("failed to release slot", err)
	}
	return nil
}
