package booking

import "errors"

var ErrInvalidPaymentMethod = errors.New("invalid payment method")

type PaymentTag string

const (
	TagVenue      PaymentTag = "venue"
	TagCredits    PaymentTag = "credits"
	TagDeposit    PaymentTag = "deposit"
	TagPayPalFull PaymentTag = "paypal"
)

// PaymentMethod is closed: only the four variants below implement it.
type PaymentMethod interface {
	Tag() PaymentTag
	// Reference is the processor transaction id, empty for Venue and Credits.
	Reference() string
	paymentMethod()
}

type Venue struct{}

type Credits struct{}

type Deposit struct{ TransactionID string }

type PayPalFull struct{ TransactionID string }

func (Venue) Tag() PaymentTag      { return TagVenue }
func (Credits) Tag() PaymentTag    { return TagCredits }
func (Deposit) Tag() PaymentTag    { return TagDeposit }
func (PayPalFull) Tag() PaymentTag { return TagPayPalFull }

func (Venue) Reference() string        { return "" }
func (Credits) Reference() string      { return "" }
func (d Deposit) Reference() string    { return d.TransactionID }
func (p PayPalFull) Reference() string { return p.TransactionID }

func (Venue) paymentMethod()      {}
func (Credits) paymentMethod()    {}
func (Deposit) paymentMethod()    {}
func (PayPalFull) paymentMethod() {}

// PaymentCases forces every variant to be handled at the call site.
type PaymentCases[T any] struct {
	Venue      func(Venue) T
	Credits    func(Credits) T
	Deposit    func(Deposit) T
	PayPalFull func(PayPalFull) T
}

func MatchPayment[T any](pm PaymentMethod, c PaymentCases[T]) T {
	switch v := pm.(type) {
	case Venue:
		return c.Venue(v)
	case Credits:
		return c.Credits(v)
	case Deposit:
		return c.Deposit(v)
	case PayPalFull:
		return c.PayPalFull(v)
	default:
		panic("booking: unknown payment method variant")
	}
}

func ParsePaymentMethod(tag, reference string) (PaymentMethod, error) {
	switch PaymentTag(tag) {
	case TagVenue:
		return Venue{}, nil
	case TagCredits:
		return Credits{}, nil
	case TagDeposit:
		return Deposit{TransactionID: reference}, nil
	case TagPayPalFull:
		return PayPalFull{TransactionID: reference}, nil
	default:
		return nil, ErrInvalidPaymentMethod
	}
}

// IsPaid is false only for pay-at-venue, where nothing was charged up front.
func IsPaid(pm PaymentMethod) bool {
	return MatchPayment(pm, PaymentCases[bool]{
		Venue:      func(Venue) bool { return false },
		Credits:    func(Credits) bool { return true },
		Deposit:    func(Deposit) bool { return true },
		PayPalFull: func(PayPalFull) bool { return true },
	})
}

// ChargedUpfront reports whether the processor took the money before the
// booking request reached the service.
func ChargedUpfront(pm PaymentMethod) bool {
	return MatchPayment(pm, PaymentCases[bool]{
		Venue:      func(Venue) bool { return false },
		Credits:    func(Credits) bool { return false },
		Deposit:    func(Deposit) bool { return true },
		PayPalFull: func(PayPalFull) bool { return true },
	})
}
