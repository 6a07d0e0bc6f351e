package booking

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

const (
	MinDrivers     = 1
	MaxDrivers     = 24
	MinHours       = 1
	MaxHours       = 3
	MaxNotesLength = 1000

	// EventThreshold marks a large party booking for the refund table.
	EventThreshold = 6
)
