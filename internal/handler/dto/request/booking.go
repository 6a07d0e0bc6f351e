package request

import (
	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

type ContactRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"omitempty,email,max=254"`
	Phone string `json:"phone" binding:"omitempty,max=32"`
}

type CreateBookingRequest struct {
	Date             string         `json:"date" binding:"required,datetime=2006-01-02"`
	Time             string         `json:"time" binding:"required,slot_time"`
	Hours            int            `json:"hours" binding:"omitempty,min=1,max=3"`
	Station          string         `json:"station" binding:"required,station"`
	Drivers          int            `json:"drivers" binding:"required,min=1,max=24"`
	Contact          ContactRequest `json:"contact" binding:"required"`
	PaymentMethod    string         `json:"payment_method" binding:"required,payment_method"`
	PaymentReference *string        `json:"payment_reference,omitempty" binding:"omitempty,max=255"`
	Notes            *string        `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// ToDomain parses wire values; admission rules live in booking.NewBooking.
func (r CreateBookingRequest) ToDomain(userID uuid.UUID, sched venue.Schedule) (booking.Request, error) {
	date, err := sched.ParseDate(r.Date)
	if err != nil {
		return booking.Request{}, err
	}
	hour, err := venue.ParseSlotTime(r.Time)
	if err != nil {
		return booking.Request{}, err
	}
	station, err := equipment.NewStation(r.Station)
	if err != nil {
		return booking.Request{}, err
	}
	contact, err := booking.NewContact(r.Contact.Name, r.Contact.Email, r.Contact.Phone)
	if err != nil {
		return booking.Request{}, err
	}

	payment, err := booking.ParsePaymentMethod(r.PaymentMethod, patch.Text(r.PaymentReference))
	if err != nil {
		return booking.Request{}, err
	}

	notes, err := booking.NewNotes(patch.Text(r.Notes))
	if err != nil {
		return booking.Request{}, err
	}

	hours := r.Hours
	if hours == 0 {
		hours = booking.MinHours
	}

	return booking.Request{
		UserID:  userID,
		Date:    date,
		Hour:    hour,
		Hours:   hours,
		Station: station,
		Drivers: r.Drivers,
		Contact: contact,
		Payment: payment,
		Notes:   notes,
	}, nil
}

// ChargedReference is the processor transaction id when the request says the
// money was already taken, otherwise "".
func (r CreateBookingRequest) ChargedReference() string {
	ref := patch.Text(r.PaymentReference)
	pm, err := booking.ParsePaymentMethod(r.PaymentMethod, ref)
	if err != nil || !booking.ChargedUpfront(pm) {
		return ""
	}
	return ref
}
