package readstore

import (
	"context"
	"time"

	"venue-booking/internal/domain/venue"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/sqlstore"
	"venue-booking/internal/pkg/pgconv"
	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	FindReservationByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Reservations, error)
	ListReservationsByUser(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListReservationsByUserParams) ([]sqlstore.Reservations, error)
	ListReservationsByDate(ctx context.Context, db sqlstore.DBTX, bookingDate pgtype.Date) ([]sqlstore.Reservations, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlstore.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlstore.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.FindReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListReservationsByUser(ctx, r.db, sqlstore.ListReservationsByUserParams{
		UserID: userID,
		Limit:  int32(limit), // #nosec G115 -- clamped by the caller
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) ListByDate(ctx context.Context, date time.Time) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListReservationsByDate(ctx, r.db, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by date", err)
	}
	return toBookingViews(rows), nil
}

func toBookingViews(rows []sqlstore.Reservations) []*queries.BookingView {
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBookingView(row))
	}
	return views
}

func toBookingView(row sqlstore.Reservations) *queries.BookingView {
	return &queries.BookingView{
		ID:               row.ID,
		UserID:           row.UserID,
		Date:             pgconv.DateFromPgtype(row.BookingDate).Format(venue.DateLayout),
		Time:             venue.FormatSlotTime(int(row.SlotHour)),
		Hours:            int(row.Hours),
		Station:          row.Station,
		Drivers:          int(row.Drivers),
		ContactName:      row.ContactName,
		ContactEmail:     row.ContactEmail,
		ContactPhone:     row.ContactPhone,
		PaymentMethod:    row.PaymentMethod,
		PaymentReference: pgconv.StringPtrFromPgtype(row.PaymentReference),
		Status:           row.Status,
		Notes:            row.Notes,
		CreditsConsumed:  int(row.CreditsConsumed),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
		CancelledAt:      pgconv.TimePtrFromPgtype(row.CancelledAt),
	}
}
