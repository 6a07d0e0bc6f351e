package commands

import (
	"context"
	"time"

	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/domain/payment"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// EventVerifier authenticates a raw processor callback before anything reads it.
type EventVerifier interface {
	Verify(payload []byte, header string) (payment.Envelope, error)
}

// PaymentProcessor decodes verified events and reaches back to the processor.
type PaymentProcessor interface {
	DecodeCheckout(raw []byte) (payment.CheckoutCompleted, error)
	DecodeInvoice(raw []byte) (payment.InvoicePaid, error)
	DecodeSubscriptionDeleted(raw []byte) (payment.SubscriptionDeleted, error)
	Subscription(ctx context.Context, id string) (payment.Subscription, error)
	CancelSubscription(ctx context.Context, id string) error
}

// AvailabilityInvalidator drops cached occupancy after a booking changes it.
type AvailabilityInvalidator interface {
	Invalidate(ctx context.Context, date time.Time, station equipment.Station) error
}

// ErrorReporter forwards failures that must reach an operator, not just the log.
type ErrorReporter interface {
	Report(ctx context.Context, err error, tags map[string]string)
}
