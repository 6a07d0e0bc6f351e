package converter

import (
	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/infra/sqlstore"
	"venue-booking/internal/pkg/pgconv"
)

func BookingToInsertParams(b *booking.Booking) sqlstore.InsertReservationParams {
	return sqlstore.InsertReservationParams{
		ID:               b.ID(),
		UserID:           b.UserID(),
		BookingDate:      pgconv.DateToPgtype(b.Date()),
		SlotHour:         int16(b.Hour()),  // #nosec G115 -- bounded by venue hours
		Hours:            int16(b.Hours()), // #nosec G115 -- bounded 1..3
		Station:          b.Station().String(),
		Drivers:          int32(b.Drivers()), // #nosec G115
		Units:            int32(b.Units()),   // #nosec G115
		ContactName:      b.Contact().Name(),
		ContactEmail:     b.Contact().Email(),
		ContactPhone:     b.Contact().Phone(),
		PaymentMethod:    string(b.Payment().Tag()),
		PaymentReference: pgconv.OptionalStringToPgtype(b.Payment().Reference()),
		Status:           b.Status().String(),
		Notes:            b.Notes().String(),
		CreditsConsumed:  int32(b.CreditsConsumed()), // #nosec G115
		CreatedAt:        pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

// BookingFromRow trusts stored values; they were validated on the way in.
func BookingFromRow(row sqlstore.Reservations) (*booking.Booking, error) {
	pm, err := booking.ParsePaymentMethod(row.PaymentMethod, pgconv.StringFromPgtype(row.PaymentReference))
	if err != nil {
		return nil, err
	}
	station, err := equipment.NewStation(row.Station)
	if err != nil {
		return nil, err
	}

	contact, err := booking.NewContact(row.ContactName, row.ContactEmail, row.ContactPhone)
	if err != nil {
		return nil, err
	}
	notes, err := booking.NewNotes(row.Notes)
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(
		row.ID,
		row.UserID,
		pgconv.DateFromPgtype(row.BookingDate),
		int(row.SlotHour),
		int(row.Hours),
		station,
		int(row.Drivers),
		contact,
		pm,
		booking.Status(row.Status),
		notes,
		int(row.CreditsConsumed),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
	), nil
}
