package membership

import (
	"errors"
	"sort"

	"venue-booking/internal/domain/equipment"
)

var ErrTierNotFound = errors.New("membership tier not found")

type TierID string

// Tier is immutable catalog configuration, not user data.
type Tier struct {
	ID          TierID
	Type        equipment.Type
	Credits     int
	PriceCents  int
	DisplayName string
	Perks       []string
}

var catalog = map[TierID]Tier{
	"kart-rookie": {
		ID: "kart-rookie", Type: equipment.Kart, Credits: 4, PriceCents: 7900,
		DisplayName: "Kart Rookie", Perks: []string{"4 kart hours / month"},
	},
	"kart-pro": {
		ID: "kart-pro", Type: equipment.Kart, Credits: 8, PriceCents: 14900,
		DisplayName: "Kart Pro", Perks: []string{"8 kart hours / month", "priority booking"},
	},
	"rig-rookie": {
		ID: "rig-rookie", Type: equipment.Rig, Credits: 4, PriceCents: 5900,
		DisplayName: "Sim Rig Rookie", Perks: []string{"4 rig hours / month"},
	},
	"rig-pro": {
		ID: "rig-pro", Type: equipment.Rig, Credits: 10, PriceCents: 12900,
		DisplayName: "Sim Rig Pro", Perks: []string{"10 rig hours / month", "league entry"},
	},
	"motion-rookie": {
		ID: "motion-rookie", Type: equipment.Motion, Credits: 2, PriceCents: 4900,
		DisplayName: "Motion Rookie", Perks: []string{"2 motion or flight hours / month"},
	},
	"motion-pro": {
		ID: "motion-pro", Type: equipment.Motion, Credits: 5, PriceCents: 10900,
		DisplayName: "Motion Pro", Perks: []string{"5 motion or flight hours / month"},
	},
}

func LookupTier(id TierID) (Tier, error) {
	t, ok := catalog[id]
	if !ok {
		return Tier{}, ErrTierNotFound
	}
	return t, nil
}

// Tiers returns the catalog ordered by equipment type then price.
func Tiers() []Tier {
	order := map[equipment.Type]int{}
	for i, t := range equipment.Types {
		order[t] = i
	}
	out := make([]Tier, 0, len(catalog))
	for _, t := range catalog {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return order[out[i].Type] < order[out[j].Type]
		}
		return out[i].PriceCents < out[j].PriceCents
	})
	return out
}
