package equipment

import "errors"

var (
	ErrInvalidEquipmentType = errors.New("invalid equipment type")
	ErrInvalidStation       = errors.New("invalid station")
)

// Type is a credit bucket. Every credit balance and membership belongs to exactly one Type.
type Type string

const (
	Kart   Type = "kart"
	Rig    Type = "rig"
	Motion Type = "motion"
)

// Types lists every credit bucket in display order.
var Types = []Type{Kart, Rig, Motion}

func (t Type) String() string { return string(t) }

func (t Type) IsValid() bool {
	switch t {
	case Kart, Rig, Motion:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidEquipmentType
	}
	return t, nil
}

// CreditUnitValue is the dollar value of one credit, used only when converting a
// cancelled booking's value back into credits. It is deliberately separate from tier pricing.
var CreditUnitValue = map[Type]int{
	Kart:   25,
	Rig:    20,
	Motion: 30,
}

// Station is a bookable resource kind. Several stations may bill the same credit Type.
type Station string

const (
	StationKart   Station = "kart"
	StationRig    Station = "rig"
	StationMotion Station = "motion"
	StationFlight Station = "flight"
	// StationGroup is the mixed-equipment event package.
	StationGroup Station = "group"
)

var Stations = []Station{StationKart, StationRig, StationMotion, StationFlight, StationGroup}

type StationSpec struct {
	Units      int
	HourlyRate int
}

var stationSpecs = map[Station]StationSpec{
	StationKart:   {Units: 5, HourlyRate: 50},
	StationRig:    {Units: 4, HourlyRate: 40},
	StationMotion: {Units: 1, HourlyRate: 60},
	StationFlight: {Units: 1, HourlyRate: 60},
	StationGroup:  {Units: 1, HourlyRate: 45},
}

func (s Station) String() string { return string(s) }

func (s Station) IsValid() bool {
	_, ok := stationSpecs[s]
	return ok
}

func NewStation(s string) (Station, error) {
	st := Station(s)
	if !st.IsValid() {
		return "", ErrInvalidStation
	}
	return st, nil
}

func (s Station) Units() int      { return stationSpecs[s].Units }
func (s Station) HourlyRate() int { return stationSpecs[s].HourlyRate }

// TypeOf maps a station to the credit bucket it bills. Flight has no bucket of its own
// and bills motion. Group spans every bucket and reports ok=false.
func TypeOf(s Station) (Type, bool) {
	switch s {
	case StationKart:
		return Kart, true
	case StationRig:
		return Rig, true
	case StationMotion, StationFlight:
		return Motion, true
	default:
		return "", false
	}
}
