package queries

import (
	"context"
	"time"

	"venue-booking/internal/domain/user"
	"venue-booking/internal/infra"
	"venue-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const defaultBookingListLimit = 50

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queriesmock

type BookingQueries interface {
	GetBooking(ctx context.Context, id, actorID uuid.UUID, role user.Role) (*BookingView, error)
	// GetBookingSystem skips the ownership check; used to replay idempotent requests.
	GetBookingSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListMyBookings(ctx context.Context, userID uuid.UUID, limit int) ([]*BookingView, error)
	ListBookingsByDate(ctx context.Context, date time.Time) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*BookingView, error)
	ListByDate(ctx context.Context, date time.Time) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id, actorID uuid.UUID, role user.Role) (*BookingView, error) {
	view, err := q.GetBookingSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	// Another user's booking reads as missing so ids cannot be enumerated.
	if view.UserID != actorID && role != user.RoleAdmin {
		return nil, errs.ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetBookingSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListMyBookings(ctx context.Context, userID uuid.UUID, limit int) ([]*BookingView, error) {
	if limit <= 0 || limit > defaultBookingListLimit {
		limit = defaultBookingListLimit
	}
	return q.readStore.ListByUser(ctx, userID, limit)
}

func (q *bookingQueriesImpl) ListBookingsByDate(ctx context.Context, date time.Time) ([]*BookingView, error) {
	return q.readStore.ListByDate(ctx, date)
}
