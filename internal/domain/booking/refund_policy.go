package booking

import "venue-booking/internal/domain/equipment"

type Policy string

const (
	PolicyNoCharge   Policy = "no_charge"
	PolicyFullRefund Policy = "full_refund"
	PolicyCredit50   Policy = "credit50"
	PolicyNoRefund   Policy = "no_refund"
)

const (
	fullRefundAfterDays = 7
	noRefundWithinDays  = 2
)

// Refund is the outcome of a cancellation. Credits holds only non-zero grants.
type Refund struct {
	Policy  Policy
	Credits map[equipment.Type]int
}

// EvaluatePolicy is total over daysUntil >= 0.
//
//	venue payment           -> no_charge
//	more than 7 days        -> full_refund
//	event, 0..7 days        -> credit50
//	non-event, 3..7 days    -> credit50
//	non-event, 0..2 days    -> no_refund
func EvaluatePolicy(daysUntil int, pm PaymentMethod, isEvent bool) Policy {
	paid := func() Policy {
		switch {
		case daysUntil > fullRefundAfterDays:
			return PolicyFullRefund
		case isEvent:
			return PolicyCredit50
		case daysUntil > noRefundWithinDays:
			return PolicyCredit50
		default:
			return PolicyNoRefund
		}
	}
	return MatchPayment(pm, PaymentCases[Policy]{
		Venue:      func(Venue) Policy { return PolicyNoCharge },
		Credits:    func(Credits) Policy { return paid() },
		Deposit:    func(Deposit) Policy { return paid() },
		PayPalFull: func(PayPalFull) Policy { return paid() },
	})
}

// CreditBack converts half the booking's dollar value into credits, rounding down.
// The group package splits that value evenly across every credit type.
func CreditBack(station equipment.Station, hours, drivers int) map[equipment.Type]int {
	out := map[equipment.Type]int{}
	halfValue := station.HourlyRate() * hours * drivers / 2

	if t, ok := equipment.TypeOf(station); ok {
		if n := halfValue / equipment.CreditUnitValue[t]; n > 0 {
			out[t] = n
		}
		return out
	}

	// integer math on the doubled value keeps floor(value*0.5/3/unit) exact
	doubled := station.HourlyRate() * hours * drivers
	for _, t := range equipment.Types {
		if n := doubled / (2 * len(equipment.Types) * equipment.CreditUnitValue[t]); n > 0 {
			out[t] = n
		}
	}
	return out
}
