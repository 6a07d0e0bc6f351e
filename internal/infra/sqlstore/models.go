package sqlstore

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID           uuid.UUID
	ExternalUid  pgtype.Text
	Email        string
	PasswordHash pgtype.Text
	Name         string
	Phone        string
	Role         string
	IsActive     bool
	LastLogin    pgtype.Timestamptz
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type UserCredits struct {
	UserID        uuid.UUID
	EquipmentType string
	Balance       int32
	UpdatedAt     pgtype.Timestamptz
}

type CreditAudit struct {
	ID            int64
	UserID        uuid.UUID
	EquipmentType string
	Amount        int32
	Kind          string
	BalanceAfter  int32
	Source        string
	CreatedAt     pgtype.Timestamptz
}

type Memberships struct {
	UserID          uuid.UUID
	EquipmentType   string
	TierID          string
	Active          bool
	SubscriptionRef string
	NextBillingDate pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

type Reservations struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	BookingDate      pgtype.Date
	SlotHour         int16
	Hours            int16
	Station          string
	Drivers          int32
	Units            int32
	ContactName      string
	ContactEmail     string
	ContactPhone     string
	PaymentMethod    string
	PaymentReference pgtype.Text
	Status           string
	Notes            string
	CreditsConsumed  int32
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
	CancelledAt      pgtype.Timestamptz
}

type ProcessedWebhookEvents struct {
	EventID     string
	EventType   string
	ProcessedAt pgtype.Timestamptz
}

type IdempotencyKeys struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Endpoint        string
	RequestHash     string
	Status          string
	ResultBookingID pgtype.UUID
	ExpiresAt       pgtype.Timestamptz
	CreatedAt       pgtype.Timestamptz
}
