package repository

import (
	"context"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/repository/converter"
	"venue-booking/internal/infra/sqlstore"
	"venue-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	InsertReservation(ctx context.Context, db sqlstore.DBTX, arg sqlstore.InsertReservationParams) (uuid.UUID, error)
	FindReservationForUpdate(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Reservations, error)
	CancelReservation(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CancelReservationParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlstore.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlstore.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	id, err := r.queries.InsertReservation(ctx, r.db, converter.BookingToInsertParams(b))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.FindReservationForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking row", err)
	}
	return b, nil
}

func (r *BookingRepository) MarkCancelled(ctx context.Context, b *booking.Booking) error {
	cancelledAt := b.UpdatedAt()
	if b.CancelledAt() != nil {
		cancelledAt = *b.CancelledAt()
	}

	n, err := r.queries.CancelReservation(ctx, r.db, sqlstore.CancelReservationParams{
		ID:          b.ID(),
		CancelledAt: pgconv.TimeToPgtype(cancelledAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to cancel booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not in a cancellable state", nil, infra.KindNotFound)
	}
	return nil
}
