package booking

import (
	"errors"
	"time"

	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidDrivers         = errors.New("drivers must be at least one and fit the station")
	ErrInvalidHours           = errors.New("hours must be between 1 and 3")
	ErrSlotPassed             = errors.New("slot has already started")
	ErrDateInPast             = errors.New("booking date is in the past")
	ErrAlreadyCancelled       = errors.New("booking is already cancelled")
	ErrCreditsNotAllowed      = errors.New("credits cannot pay for this station")
	ErrMissingPaymentRef      = errors.New("payment reference is required for this payment method")
	ErrCancelAfterDatePassed  = errors.New("booking date has already passed")
	ErrInvalidStatusForCancel = errors.New("booking cannot be cancelled in its current status")
)

type Services struct {
	Clock    clock.Clock
	Schedule venue.Schedule
}

// Request is the validated shape of a booking before it is admitted.
type Request struct {
	UserID  uuid.UUID
	Date    time.Time
	Hour    int
	Hours   int
	Station equipment.Station
	Drivers int
	Contact Contact
	Payment PaymentMethod
	Notes   Notes
}

type Booking struct {
	id              uuid.UUID
	userID          uuid.UUID
	date            time.Time
	hour            int
	hours           int
	station         equipment.Station
	drivers         int
	contact         Contact
	payment         PaymentMethod
	status          Status
	notes           Notes
	creditsConsumed int
	createdAt       time.Time
	updatedAt       time.Time
	cancelledAt     *time.Time
}

func NewBooking(services *Services, req Request) (*Booking, error) {
	sched := services.Schedule
	now := services.Clock.Now()

	if !req.Station.IsValid() {
		return nil, equipment.ErrInvalidStation
	}
	if req.Drivers < MinDrivers || req.Drivers > MaxDrivers {
		return nil, ErrInvalidDrivers
	}
	if unitsFor(req.Station, req.Drivers) > req.Station.Units() {
		return nil, ErrInvalidDrivers
	}
	if req.Hours < MinHours || req.Hours > MaxHours {
		return nil, ErrInvalidHours
	}
	if req.Payment == nil {
		return nil, ErrInvalidPaymentMethod
	}

	date := sched.Date(req.Date)
	if date.Before(sched.Today(now)) {
		return nil, ErrDateInPast
	}
	if !sched.Contains(req.Hour, req.Hours) {
		return nil, venue.ErrOutsideHours
	}
	if sched.IsPassed(now, date, req.Hour) {
		return nil, ErrSlotPassed
	}

	err := MatchPayment(req.Payment, PaymentCases[error]{
		Venue: func(Venue) error { return nil },
		Credits: func(Credits) error {
			if _, ok := equipment.TypeOf(req.Station); !ok {
				return ErrCreditsNotAllowed
			}
			return nil
		},
		Deposit: func(d Deposit) error {
			if d.TransactionID == "" {
				return ErrMissingPaymentRef
			}
			return nil
		},
		PayPalFull: func(p PayPalFull) error {
			if p.TransactionID == "" {
				return ErrMissingPaymentRef
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	b := &Booking{
		id:        uuid.New(),
		userID:    req.UserID,
		date:      date,
		hour:      req.Hour,
		hours:     req.Hours,
		station:   req.Station,
		drivers:   req.Drivers,
		contact:   req.Contact,
		payment:   req.Payment,
		status:    StatusConfirmed,
		notes:     req.Notes,
		createdAt: now,
		updatedAt: now,
	}
	if _, ok := req.Payment.(Credits); ok {
		b.creditsConsumed = b.CreditsRequired()
	}
	return b, nil
}

func Reconstruct(
	id, userID uuid.UUID,
	date time.Time,
	hour, hours int,
	station equipment.Station,
	drivers int,
	contact Contact,
	payment PaymentMethod,
	status Status,
	notes Notes,
	creditsConsumed int,
	createdAt, updatedAt time.Time,
	cancelledAt *time.Time,
) *Booking {
	return &Booking{
		id:              id,
		userID:          userID,
		date:            date,
		hour:            hour,
		hours:           hours,
		station:         station,
		drivers:         drivers,
		contact:         contact,
		payment:         payment,
		status:          status,
		notes:           notes,
		creditsConsumed: creditsConsumed,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		cancelledAt:     cancelledAt,
	}
}

// Cancel evaluates the refund policy and flips the status. The booking is never removed.
func (b *Booking) Cancel(services *Services) (Refund, error) {
	if b.status == StatusCancelled {
		return Refund{}, ErrAlreadyCancelled
	}
	if b.status != StatusConfirmed {
		return Refund{}, ErrInvalidStatusForCancel
	}

	now := services.Clock.Now()
	days := clock.DaysUntil(now, b.date, services.Schedule.Location)
	if days < 0 {
		return Refund{}, ErrCancelAfterDatePassed
	}

	policy := EvaluatePolicy(days, b.payment, b.IsEvent())
	refund := Refund{Policy: policy, Credits: map[equipment.Type]int{}}
	switch policy {
	case PolicyCredit50:
		refund.Credits = CreditBack(b.station, b.hours, b.drivers)
	case PolicyFullRefund:
		if b.creditsConsumed > 0 {
			if t, ok := equipment.TypeOf(b.station); ok {
				refund.Credits[t] = b.creditsConsumed
			}
		}
	}

	b.status = StatusCancelled
	b.updatedAt = now
	b.cancelledAt = &now
	return refund, nil
}

// CoveredHours lists every slot hour the booking occupies.
func (b *Booking) CoveredHours() []int {
	out := make([]int, 0, b.hours)
	for h := b.hour; h < b.hour+b.hours; h++ {
		out = append(out, h)
	}
	return out
}

func (b *Booking) IsEvent() bool {
	return b.drivers >= EventThreshold
}

// Units is how much of the station's capacity the booking occupies per hour.
func (b *Booking) Units() int {
	return unitsFor(b.station, b.drivers)
}

func (b *Booking) CreditsRequired() int {
	return b.drivers * b.hours
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func unitsFor(s equipment.Station, drivers int) int {
	if s == equipment.StationGroup {
		return 1
	}
	return drivers
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) UserID() uuid.UUID          { return b.userID }
func (b *Booking) Date() time.Time            { return b.date }
func (b *Booking) Hour() int                  { return b.hour }
func (b *Booking) Hours() int                 { return b.hours }
func (b *Booking) Station() equipment.Station { return b.station }
func (b *Booking) Drivers() int               { return b.drivers }
func (b *Booking) Contact() Contact           { return b.contact }
func (b *Booking) Payment() PaymentMethod     { return b.payment }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) Notes() Notes               { return b.notes }
func (b *Booking) CreditsConsumed() int       { return b.creditsConsumed }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }
func (b *Booking) CancelledAt() *time.Time    { return b.cancelledAt }
