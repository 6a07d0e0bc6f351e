package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	ExternalUID string    `json:"-"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
}

// BookingView is a reservation as shown to its owner or an admin.
type BookingView struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user_id"`
	Date             string     `json:"date"`
	Time             string     `json:"time"`
	Hours            int        `json:"hours"`
	Station          string     `json:"station"`
	Drivers          int        `json:"drivers"`
	ContactName      string     `json:"contact_name"`
	ContactEmail     string     `json:"contact_email"`
	ContactPhone     string     `json:"contact_phone"`
	PaymentMethod    string     `json:"payment_method"`
	PaymentReference *string    `json:"payment_reference,omitempty"`
	Status           string     `json:"status"`
	Notes            string     `json:"notes"`
	CreditsConsumed  int        `json:"credits_consumed"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
}

type CreditHistoryItem struct {
	Type         string    `json:"type"`
	Amount       int       `json:"amount"`
	Kind         string    `json:"kind"`
	BalanceAfter int       `json:"balance_after"`
	Source       string    `json:"source"`
	CreatedAt    time.Time `json:"created_at"`
}

type MembershipView struct {
	Type            string    `json:"type"`
	TierID          string    `json:"tier_id"`
	Active          bool      `json:"active"`
	SubscriptionRef string    `json:"subscription_ref"`
	NextBillingDate time.Time `json:"next_billing_date"`
	UpdatedAt       time.Time `json:"updated_at"`
}
