package payment

import (
	"errors"
	"time"

	"venue-booking/internal/domain/membership"

	"github.com/google/uuid"
)

var (
	ErrMissingMetadata = errors.New("event metadata is missing user or tier")
	ErrInvalidUserRef  = errors.New("event metadata carries an invalid user id")
)

type Kind string

const (
	KindCheckoutCompleted   Kind = "checkout.session.completed"
	KindInvoicePaid         Kind = "invoice.paid"
	KindInvoiceSucceeded    Kind = "invoice.payment_succeeded"
	KindSubscriptionDeleted Kind = "customer.subscription.deleted"
)

// Metadata keys the checkout session and subscription carry.
const (
	MetaUserID            = "userId"
	MetaTierID            = "tierId"
	MetaOldSubscriptionID = "oldSubscriptionId"
)

// Envelope is a verified processor event before kind-specific decoding.
type Envelope struct {
	ID   string
	Kind Kind
	Raw  []byte
}

// Subject identifies whose membership an event concerns.
type Subject struct {
	UserID uuid.UUID
	TierID membership.TierID
}

// SubjectFrom reads userId and tierId from event metadata.
func SubjectFrom(meta map[string]string) (Subject, error) {
	rawUser, rawTier := meta[MetaUserID], meta[MetaTierID]
	if rawUser == "" || rawTier == "" {
		return Subject{}, ErrMissingMetadata
	}
	id, err := uuid.Parse(rawUser)
	if err != nil {
		return Subject{}, ErrInvalidUserRef
	}
	return Subject{UserID: id, TierID: membership.TierID(rawTier)}, nil
}

type CheckoutCompleted struct {
	Metadata        map[string]string
	SubscriptionRef string
}

// OldSubscriptionID is set when the checkout upgrades an existing subscription.
func (c CheckoutCompleted) OldSubscriptionID() string {
	return c.Metadata[MetaOldSubscriptionID]
}

// InvoicePaid is a renewal unless Initial is set; the initial invoice is
// handled by the checkout event and skipped here. Metadata may be empty, in
// which case the subscription itself is consulted.
type InvoicePaid struct {
	Metadata        map[string]string
	SubscriptionRef string
	Initial         bool
	PeriodEnd       time.Time
}

type SubscriptionDeleted struct {
	Metadata        map[string]string
	SubscriptionRef string
}

// Subscription is the processor's view of a recurring charge.
type Subscription struct {
	ID        string
	Metadata  map[string]string
	PeriodEnd time.Time
}

// Outcome is what a reconciliation did, for logs and the webhook response.
type Outcome string

const (
	OutcomeApplied   Outcome = "applied"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeIgnored   Outcome = "ignored"
)

// DefaultPeriodEnd is used when the processor cannot report the period end.
func DefaultPeriodEnd(now time.Time) time.Time {
	return now.AddDate(0, 1, 0)
}
