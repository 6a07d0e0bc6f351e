package sqlstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// The WHERE on the conflict branch makes the cap check and increment one atomic statement.
// When the cap would be exceeded no row is returned.
const reserveSlot = `-- name: ReserveSlot :one
INSERT INTO slot_counters AS sc (booking_date, slot_hour, station, booked)
SELECT $1::date, $2::smallint, $3::text, $4::int
WHERE $4::int <= $5::int
ON CONFLICT (booking_date, slot_hour, station) DO UPDATE
SET booked = sc.booked + EXCLUDED.booked
WHERE sc.booked + EXCLUDED.booked <= $5::int
RETURNING booked
`

type ReserveSlotParams struct {
	BookingDate pgtype.Date
	SlotHour    int16
	Station     string
	Units       int32
	Capacity    int32
}

func (q *Queries) ReserveSlot(ctx context.Context, db DBTX, arg ReserveSlotParams) (int32, error) {
	row := db.QueryRow(ctx, reserveSlot,
		arg.BookingDate,
		arg.SlotHour,
		arg.Station,
		arg.Units,
		arg.Capacity,
	)
	var booked int32
	err := row.Scan(&booked)
	return booked, err
}

const releaseSlot = `-- name: ReleaseSlot :exec
UPDATE slot_counters
SET booked = GREATEST(booked - $4::int, 0)
WHERE booking_date = $1 AND slot_hour = $2 AND station = $3
`

type ReleaseSlotParams struct {
	BookingDate pgtype.Date
	SlotHour    int16
	Station     string
	Units       int32
}

func (q *Queries) ReleaseSlot(ctx context.Context, db DBTX, arg ReleaseSlotParams) error {
	_, err := db.Exec(ctx, releaseSlot, arg.BookingDate, arg.SlotHour, arg.Station, arg.Units)
	return err
}
