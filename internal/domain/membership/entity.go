package membership

import (
	"errors"
	"time"

	"venue-booking/internal/domain/equipment"

	"github.com/google/uuid"
)

var ErrMissingSubscription = errors.New("subscription reference is required")

type State string

const (
	StateNone     State = "none"
	StateActive   State = "active"
	StateInactive State = "inactive"
)

// Membership is keyed by (UserID, Type). Deactivation keeps the record.
type Membership struct {
	userID          uuid.UUID
	equipmentType   equipment.Type
	tierID          TierID
	active          bool
	subscriptionRef string
	nextBillingDate time.Time
	updatedAt       time.Time
}

// Activate builds the state written by both first activation and upgrade/renewal.
func Activate(userID uuid.UUID, tier Tier, subscriptionRef string, periodEnd, now time.Time) (*Membership, error) {
	if subscriptionRef == "" {
		return nil, ErrMissingSubscription
	}
	if !tier.Type.IsValid() {
		return nil, equipment.ErrInvalidEquipmentType
	}
	return &Membership{
		userID:          userID,
		equipmentType:   tier.Type,
		tierID:          tier.ID,
		active:          true,
		subscriptionRef: subscriptionRef,
		nextBillingDate: periodEnd,
		updatedAt:       now,
	}, nil
}

func Reconstruct(userID uuid.UUID, t equipment.Type, tierID TierID, active bool, subscriptionRef string, nextBillingDate, updatedAt time.Time) *Membership {
	return &Membership{
		userID:          userID,
		equipmentType:   t,
		tierID:          tierID,
		active:          active,
		subscriptionRef: subscriptionRef,
		nextBillingDate: nextBillingDate,
		updatedAt:       updatedAt,
	}
}

func (m *Membership) Deactivate(now time.Time) {
	m.active = false
	m.updatedAt = now
}

func (m *Membership) State() State {
	if m == nil {
		return StateNone
	}
	if m.active {
		return StateActive
	}
	return StateInactive
}

func (m *Membership) UserID() uuid.UUID          { return m.userID }
func (m *Membership) Type() equipment.Type       { return m.equipmentType }
func (m *Membership) TierID() TierID             { return m.tierID }
func (m *Membership) Active() bool               { return m.active }
func (m *Membership) SubscriptionRef() string    { return m.subscriptionRef }
func (m *Membership) NextBillingDate() time.Time { return m.nextBillingDate }
func (m *Membership) UpdatedAt() time.Time       { return m.updatedAt }
