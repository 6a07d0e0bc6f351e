package shared

import (
	"time"

	"venue-booking/internal/domain/equipment"

	"github.com/google/uuid"
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

// SlotCell addresses one (date, hour, station) capacity counter.
type SlotCell struct {
	Date    time.Time
	Hour    int
	Station equipment.Station
}

// Minimal snapshot for command read operations
type UserSnapshot struct {
	ID       uuid.UUID
	Email    string
	Name     string
	Role     string
	IsActive bool
}
