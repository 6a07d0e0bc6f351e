//go:build unit

package commands_test

import (
	"context"
	"time"

	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/usecase/shared"
	sharedmock "venue-booking/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var venueZone = mustZone("America/New_York")

func mustZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// txFixture runs every Within callback against one set of repository mocks.
type txFixture struct {
	ctrl        *gomock.Controller
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	reads       *sharedmock.MockCommandReads
	users       *sharedmock.MockUserRepository
	credits     *sharedmock.MockCreditRepository
	memberships *sharedmock.MockMembershipRepository
	bookings    *sharedmock.MockBookingRepository
	slots       *sharedmock.MockSlotRepository
	webhooks    *sharedmock.MockWebhookEventRepository
	idempotency *sharedmock.MockIdempotencyRepository
	clock       *clock.MockClock
	schedule    venue.Schedule
}

func newTxFixture(ctrl *gomock.Controller) *txFixture {
	f := &txFixture{
		ctrl:        ctrl,
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		tx:          sharedmock.NewMockTx(ctrl),
		reads:       sharedmock.NewMockCommandReads(ctrl),
		users:       sharedmock.NewMockUserRepository(ctrl),
		credits:     sharedmock.NewMockCreditRepository(ctrl),
		memberships: sharedmock.NewMockMembershipRepository(ctrl),
		bookings:    sharedmock.NewMockBookingRepository(ctrl),
		slots:       sharedmock.NewMockSlotRepository(ctrl),
		webhooks:    sharedmock.NewMockWebhookEventRepository(ctrl),
		idempotency: sharedmock.NewMockIdempotencyRepository(ctrl),
		// 2026-01-25 12:00 in the venue zone
		clock:    clock.NewMockClock(time.Date(2026, 1, 25, 12, 0, 0, 0, venueZone)),
		schedule: venue.NewSchedule(venueZone, 10, 22),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()

	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.tx.EXPECT().Credits().Return(f.credits).AnyTimes()
	f.tx.EXPECT().Memberships().Return(f.memberships).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Slots().Return(f.slots).AnyTimes()
	f.tx.EXPECT().WebhookEvents().Return(f.webhooks).AnyTimes()
	f.tx.EXPECT().Idempotency().Return(f.idempotency).AnyTimes()
	return f
}
