package shared

import (
	"context"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/credit"
	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/domain/membership"
	"venue-booking/internal/domain/user"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for checks outside transactions
	CommandReads() CommandReads
}

// Tx hands out repositories bound to one transaction.
type Tx interface {
	Users() UserRepository
	Credits() CreditRepository
	Memberships() MembershipRepository
	Bookings() BookingRepository
	Slots() SlotRepository
	WebhookEvents() WebhookEventRepository
	Idempotency() IdempotencyRepository
}

type CommandReads interface {
	WebhookEventProcessed(ctx context.Context, eventID string) (bool, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type UserRepository interface {
	// Lock takes the row lock that serializes credit and membership writes for a user.
	Lock(ctx context.Context, id uuid.UUID) error
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

type CreditRepository interface {
	Balances(ctx context.Context, userID uuid.UUID) (credit.Balances, error)
	SaveBalance(ctx context.Context, userID uuid.UUID, t equipment.Type, balance int) error
	AppendEntry(ctx context.Context, entry credit.Entry) error
}

type MembershipRepository interface {
	Upsert(ctx context.Context, ms *membership.Membership) error
	// SubscriptionRef reports found=false when the user has no membership of that type.
	SubscriptionRef(ctx context.Context, userID uuid.UUID, t equipment.Type) (ref string, found bool, err error)
	// Deactivate reports false when no membership of that type is bound to
	// subscriptionRef. An empty subscriptionRef matches any.
	Deactivate(ctx context.Context, userID uuid.UUID, t equipment.Type, subscriptionRef string, now time.Time) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	MarkCancelled(ctx context.Context, b *booking.Booking) error
}

type SlotRepository interface {
	// Reserve reports false when units would push the cell past capacity.
	Reserve(ctx context.Context, cell SlotCell, units, capacity int) (bool, error)
	Release(ctx context.Context, cell SlotCell, units int) error
}

type WebhookEventRepository interface {
	// MarkProcessed reports false when the event id was already recorded.
	MarkProcessed(ctx context.Context, eventID, eventType string) (bool, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	ClaimExpired(ctx context.Context, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
	MarkCompleted(ctx context.Context, key, userID, bookingID uuid.UUID) error
}
