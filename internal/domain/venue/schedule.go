package venue

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidSlotTime = errors.New("invalid slot time")
	ErrOutsideHours    = errors.New("slot outside operating hours")
)

// Schedule is the venue's operating window. All wall-clock reasoning happens in Location.
type Schedule struct {
	Location  *time.Location
	OpenHour  int
	CloseHour int
}

func NewSchedule(loc *time.Location, openHour, closeHour int) Schedule {
	if loc == nil {
		loc = time.UTC
	}
	return Schedule{Location: loc, OpenHour: openHour, CloseHour: closeHour}
}

// ParseDate reads YYYY-MM-DD as a calendar day in the venue zone.
func (s Schedule) ParseDate(v string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, v, s.Location)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// Date re-anchors any calendar day to midnight in the venue zone.
func (s Schedule) Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.Location)
}

func (s Schedule) Today(now time.Time) time.Time {
	lt := now.In(s.Location)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, s.Location)
}

// Hours lists slot start hours in the operating window.
func (s Schedule) Hours() []int {
	hours := make([]int, 0, s.CloseHour-s.OpenHour)
	for h := s.OpenHour; h < s.CloseHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

func (s Schedule) Contains(hour, duration int) bool {
	return hour >= s.OpenHour && duration >= 1 && hour+duration <= s.CloseHour
}

func (s Schedule) SlotStart(date time.Time, hour int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, s.Location)
}

// IsPassed is true once the slot's hour has started in the venue zone.
func (s Schedule) IsPassed(now, date time.Time, hour int) bool {
	return !now.Before(s.SlotStart(date, hour))
}

// ParseSlotTime accepts "HH:00".
func ParseSlotTime(v string) (int, error) {
	if len(v) != 5 || v[2] != ':' {
		return 0, ErrInvalidSlotTime
	}
	h, err := strconv.Atoi(v[:2])
	if err != nil {
		return 0, ErrInvalidSlotTime
	}
	if h < 0 || h > 23 || v[3:] != "00" {
		return 0, ErrInvalidSlotTime
	}
	return h, nil
}

func FormatSlotTime(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
