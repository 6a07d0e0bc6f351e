package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, user_id, booking_date, slot_hour, hours, station, drivers, units,
contact_name, contact_email, contact_phone, payment_method, payment_reference, status, notes,
credits_consumed, created_at, updated_at, cancelled_at`

func scanReservation(row interface{ Scan(...any) error }) (Reservations, error) {
	var i Reservations
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.BookingDate,
		&i.SlotHour,
		&i.Hours,
		&i.Station,
		&i.Drivers,
		&i.Units,
		&i.ContactName,
		&i.ContactEmail,
		&i.ContactPhone,
		&i.PaymentMethod,
		&i.PaymentReference,
		&i.Status,
		&i.Notes,
		&i.CreditsConsumed,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CancelledAt,
	)
	return i, err
}

func collectReservations(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
	Close()
}) ([]Reservations, error) {
	defer rows.Close()
	var items []Reservations
	for rows.Next() {
		i, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertReservation = `-- name: InsertReservation :one
INSERT INTO reservations (
    id, user_id, booking_date, slot_hour, hours, station, drivers, units,
    contact_name, contact_email, contact_phone, payment_method, payment_reference,
    status, notes, credits_consumed, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $17)
RETURNING id
`

type InsertReservationParams struct {
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
}

func (q *Queries) InsertReservation(ctx context.Context, db DBTX, arg InsertReservationParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, insertReservation,
		arg.ID,
		arg.UserID,
		arg.BookingDate,
		arg.SlotHour,
		arg.Hours,
		arg.Station,
		arg.Drivers,
		arg.Units,
		arg.ContactName,
		arg.ContactEmail,
		arg.ContactPhone,
		arg.PaymentMethod,
		arg.PaymentReference,
		arg.Status,
		arg.Notes,
		arg.CreditsConsumed,
		arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const findReservationByID = `-- name: FindReservationByID :one
SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1
`

func (q *Queries) FindReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, findReservationByID, id))
}

const findReservationForUpdate = `-- name: FindReservationForUpdate :one
SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE
`

func (q *Queries) FindReservationForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, findReservationForUpdate, id))
}

const listReservationsByUser = `-- name: ListReservationsByUser :many
SELECT ` + reservationColumns + ` FROM reservations
WHERE user_id = $1
ORDER BY booking_date DESC, slot_hour DESC
LIMIT $2
`

type ListReservationsByUserParams struct {
	UserID uuid.UUID
	Limit  int32
}

func (q *Queries) ListReservationsByUser(ctx context.Context, db DBTX, arg ListReservationsByUserParams) ([]Reservations, error) {
	rows, err := db.Query(ctx, listReservationsByUser, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectReservations(rows)
}

const listReservationsByDate = `-- name: ListReservationsByDate :many
SELECT ` + reservationColumns + ` FROM reservations
WHERE booking_date = $1
ORDER BY slot_hour, station, created_at
`

func (q *Queries) ListReservationsByDate(ctx context.Context, db DBTX, bookingDate pgtype.Date) ([]Reservations, error) {
	rows, err := db.Query(ctx, listReservationsByDate, bookingDate)
	if err != nil {
		return nil, err
	}
	return collectReservations(rows)
}

const listActiveOccupancy = `-- name: ListActiveOccupancy :many
SELECT slot_hour, hours, units FROM reservations
WHERE booking_date = $1 AND station = $2 AND status = 'confirmed'
`

type ListActiveOccupancyParams struct {
	BookingDate pgtype.Date
	Station     string
}

type ListActiveOccupancyRow struct {
	SlotHour int16
	Hours    int16
	Units    int32
}

func (q *Queries) ListActiveOccupancy(ctx context.Context, db DBTX, arg ListActiveOccupancyParams) ([]ListActiveOccupancyRow, error) {
	rows, err := db.Query(ctx, listActiveOccupancy, arg.BookingDate, arg.Station)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListActiveOccupancyRow
	for rows.Next() {
		var i ListActiveOccupancyRow
		if err := rows.Scan(&i.SlotHour, &i.Hours, &i.Units); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const cancelReservation = `-- name: CancelReservation :execrows
UPDATE reservations
SET status = 'cancelled', cancelled_at = $2, updated_at = $2
WHERE id = $1 AND status = 'confirmed'
`

type CancelReservationParams struct {
	ID          uuid.UUID
	CancelledAt pgtype.Timestamptz
}

func (q *Queries) CancelReservation(ctx context.Context, db DBTX, arg CancelReservationParams) (int64, error) {
	result, err := db.Exec(ctx, cancelReservation, arg.ID, arg.CancelledAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
