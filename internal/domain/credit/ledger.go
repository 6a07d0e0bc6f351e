package credit

import (
	"errors"
	"time"

	"venue-booking/internal/domain/equipment"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount       = errors.New("credit amount must be a positive whole number")
	ErrNegativeBalance     = errors.New("credit balance cannot be negative")
	ErrInsufficientCredits = errors.New("insufficient credits")
)

type EntryKind string

const (
	KindAdd     EntryKind = "credit_add"
	KindSet     EntryKind = "credit_set"
	KindConsume EntryKind = "credit_consume"
)

// Source names who asked for a mutation; it is stored verbatim in the audit trail.
type Source string

const (
	SourceCheckout     Source = "checkout"
	SourceRenewal      Source = "renewal"
	SourceBooking      Source = "booking"
	SourceCancellation Source = "cancellation"
	SourceAdmin        Source = "admin"
)

// Balances is a user's credit map. Missing types read as zero and every stored value is >= 0.
type Balances map[equipment.Type]int

func (b Balances) Get(t equipment.Type) int {
	return b[t]
}

// Add returns the new balance for t.
func (b Balances) Add(t equipment.Type, amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	b[t] = b[t] + amount
	return b[t], nil
}

// Set overwrites t only. Zero is allowed here because a renewal may grant nothing.
func (b Balances) Set(t equipment.Type, amount int) (int, error) {
	if amount < 0 {
		return 0, ErrNegativeBalance
	}
	b[t] = amount
	return amount, nil
}

// Correction is the add or consume entry that moves t to target.
// A zero amount means t already holds target.
func (b Balances) Correction(t equipment.Type, target int) (EntryKind, int, error) {
	if target < 0 {
		return "", 0, ErrNegativeBalance
	}
	delta := target - b[t]
	if delta < 0 {
		return KindConsume, -delta, nil
	}
	return KindAdd, delta, nil
}

// Consume leaves b unchanged when the balance cannot cover amount.
func (b Balances) Consume(t equipment.Type, amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	current := b[t]
	if current < amount {
		return current, ErrInsufficientCredits
	}
	b[t] = current - amount
	return b[t], nil
}

// Filled returns a copy containing every equipment type, zero-filled.
func (b Balances) Filled() Balances {
	out := make(Balances, len(equipment.Types))
	for _, t := range equipment.Types {
		out[t] = b[t]
	}
	return out
}

// Entry is one immutable audit record.
type Entry struct {
	UserID       uuid.UUID
	Type         equipment.Type
	Amount       int
	Kind         EntryKind
	BalanceAfter int
	Source       Source
	CreatedAt    time.Time
}

func NewEntry(userID uuid.UUID, t equipment.Type, amount int, kind EntryKind, balanceAfter int, source Source, now time.Time) Entry {
	return Entry{
		UserID:       userID,
		Type:         t,
		Amount:       amount,
		Kind:         kind,
		BalanceAfter: balanceAfter,
		Source:       source,
		CreatedAt:    now,
	}
}
