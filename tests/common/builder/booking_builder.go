//go:build unit || e2e

package builder

import (
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/domain/venue"
	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Date             time.Time
	Hour             int
	Hours            int
	Station          equipment.Station
	Drivers          int
	ContactName      string
	ContactEmail     string
	ContactPhone     string
	PaymentMethod    booking.PaymentTag
	PaymentReference string
	Status           booking.Status
	Notes            string
	CreditsConsumed  int
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Date:          time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC),
		Hour:          14,
		Hours:         1,
		Station:       equipment.StationKart,
		Drivers:       2,
		ContactName:   "Dana Driver",
		ContactEmail:  "dana@example.com",
		PaymentMethod: booking.TagCredits,
		Status:        booking.StatusConfirmed,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithUser(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithDate(date time.Time) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithStation(s equipment.Station, drivers int) *BookingBuilder {
	b.Station = s
	b.Drivers = drivers
	return b
}

func (b *BookingBuilder) WithPayment(tag booking.PaymentTag, ref string) *BookingBuilder {
	b.PaymentMethod = tag
	b.PaymentReference = ref
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = booking.StatusCancelled
	return b
}

// BuildDomain reconstructs a persisted booking; admission rules are not re-run.
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	contact, err := booking.NewContact(b.ContactName, b.ContactEmail, b.ContactPhone)
	if err != nil {
		panic(err)
	}
	payment, err := booking.ParsePaymentMethod(string(b.PaymentMethod), b.PaymentReference)
	if err != nil {
		panic(err)
	}
	notes, _ := booking.NewNotes(b.Notes)
	consumed := b.CreditsConsumed
	if consumed == 0 && b.PaymentMethod == booking.TagCredits {
		consumed = b.Drivers * b.Hours
	}
	created := b.Date.AddDate(0, 0, -10)
	return booking.Reconstruct(
		b.ID, b.UserID, b.Date, b.Hour, b.Hours, b.Station, b.Drivers,
		contact, payment, b.Status, notes, consumed, created, created, nil,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	req := reqdto.CreateBookingRequest{
		Date:    b.Date.Format(venue.DateLayout),
		Time:    venue.FormatSlotTime(b.Hour),
		Hours:   b.Hours,
		Station: b.Station.String(),
		Drivers: b.Drivers,
		Contact: reqdto.ContactRequest{
			Name:  b.ContactName,
			Email: b.ContactEmail,
			Phone: b.ContactPhone,
		},
		PaymentMethod: string(b.PaymentMethod),
	}
	if b.PaymentReference != "" {
		ref := b.PaymentReference
		req.PaymentReference = &ref
	}
	if b.Notes != "" {
		notes := b.Notes
		req.Notes = &notes
	}
	return req
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	view := &queries.BookingView{
		ID:            b.ID,
		UserID:        b.UserID,
		Date:          b.Date.Format(venue.DateLayout),
		Time:          venue.FormatSlotTime(b.Hour),
		Hours:         b.Hours,
		Station:       b.Station.String(),
		Drivers:       b.Drivers,
		ContactName:   b.ContactName,
		ContactEmail:  b.ContactEmail,
		ContactPhone:  b.ContactPhone,
		PaymentMethod: string(b.PaymentMethod),
		Status:        string(b.Status),
		Notes:         b.Notes,
		CreatedAt:     b.Date.AddDate(0, 0, -10),
		UpdatedAt:     b.Date.AddDate(0, 0, -10),
	}
	if b.PaymentReference != "" {
		ref := b.PaymentReference
		view.PaymentReference = &ref
	}
	if b.PaymentMethod == booking.TagCredits {
		view.CreditsConsumed = b.Drivers * b.Hours
	}
	return view
}
