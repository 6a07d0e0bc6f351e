package shared

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=notifier.go -destination=../../../tests/mock/shared/notifier_mock.go -package=sharedmock

// BookingNotifier delivers confirmations after commit. Callers treat failures as best-effort.
type BookingNotifier interface {
	BookingConfirmed(ctx context.Context, c BookingConfirmation) error
}

type BookingConfirmation struct {
	BookingID     uuid.UUID
	To            string
	Name          string
	Date          string
	Time          string
	Hours         int
	Station       string
	Drivers       int
	PaymentMethod string
}
