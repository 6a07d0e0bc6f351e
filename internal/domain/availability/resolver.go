package availability

import (
	"hash/fnv"
	"time"

	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/domain/venue"
)

// Hour is the occupancy of one station during one slot hour.
type Hour struct {
	Time      string
	Booked    int
	Available int
	Total     int
	Passed    bool
}

// Day is the resolver output for one (date, station). Demo marks synthesized data.
type Day struct {
	Date    time.Time
	Station equipment.Station
	Hours   []Hour
	Demo    bool
}

// Occupancy holds a booking's footprint as read from the store.
type Occupancy struct {
	Hour  int
	Hours int
	Units int
}

// Resolve folds active bookings into per-hour availability. A passed hour always
// reports zero available, whatever its occupancy.
func Resolve(sched venue.Schedule, now, date time.Time, station equipment.Station, occupied []Occupancy) Day {
	date = sched.Date(date)
	booked := make(map[int]int, len(occupied))
	for _, o := range occupied {
		for h := o.Hour; h < o.Hour+o.Hours; h++ {
			booked[h] += o.Units
		}
	}
	return build(sched, now, date, station, booked, false)
}

// Demo produces stable placeholder occupancy for a (date, station) when the store is
// unreachable. It is only ever shown, never used to admit a booking.
func Demo(sched venue.Schedule, now, date time.Time, station equipment.Station) Day {
	date = sched.Date(date)
	total := station.Units()
	booked := make(map[int]int)
	for _, h := range sched.Hours() {
		f := fnv.New32a()
		_, _ = f.Write([]byte(date.Format(venue.DateLayout)))
		_, _ = f.Write([]byte(station))
		_, _ = f.Write([]byte{byte(h)})
		booked[h] = int(f.Sum32() % uint32(total+1))
	}
	return build(sched, now, date, station, booked, true)
}

func build(sched venue.Schedule, now, date time.Time, station equipment.Station, booked map[int]int, demo bool) Day {
	total := station.Units()
	hours := make([]Hour, 0, sched.CloseHour-sched.OpenHour)
	for _, h := range sched.Hours() {
		b := booked[h]
		hr := Hour{
			Time:   venue.FormatSlotTime(h),
			Booked: b,
			Total:  total,
			Passed: sched.IsPassed(now, date, h),
		}
		if !hr.Passed {
			hr.Available = max(total-b, 0)
		}
		hours = append(hours, hr)
	}
	return Day{Date: date, Station: station, Hours: hours, Demo: demo}
}
