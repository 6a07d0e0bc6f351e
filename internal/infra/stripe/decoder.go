package stripe

import (
	"encoding/json"
	"time"

	"venue-booking/internal/domain/payment"
	"venue-booking/internal/pkg/errs"

	gostripe "github.com/stripe/stripe-go/v82"
)

var ErrMalformedEvent = errs.New("malformed processor event")

func DecodeCheckout(raw []byte) (payment.CheckoutCompleted, error) {
	var cs gostripe.CheckoutSession
	if err := json.Unmarshal(raw, &cs); err != nil {
		return payment.CheckoutCompleted{}, errs.Mark(errs.Wrap(err, "decode checkout session"), ErrMalformedEvent)
	}

	out := payment.CheckoutCompleted{Metadata: cs.Metadata}
	if cs.Subscription != nil {
		out.SubscriptionRef = cs.Subscription.ID
	}
	return out, nil
}

func DecodeInvoice(raw []byte) (payment.InvoicePaid, error) {
	var inv gostripe.Invoice
	if err := json.Unmarshal(raw, &inv); err != nil {
		return payment.InvoicePaid{}, errs.Mark(errs.Wrap(err, "decode invoice"), ErrMalformedEvent)
	}

	out := payment.InvoicePaid{
		Initial:   inv.BillingReason == gostripe.InvoiceBillingReasonSubscriptionCreate,
		PeriodEnd: invoicePeriodEnd(&inv),
	}
	if inv.Parent != nil && inv.Parent.SubscriptionDetails != nil {
		details := inv.Parent.SubscriptionDetails
		out.Metadata = details.Metadata
		if details.Subscription != nil {
			out.SubscriptionRef = details.Subscription.ID
		}
	}
	return out, nil
}

func DecodeSubscriptionDeleted(raw []byte) (payment.SubscriptionDeleted, error) {
	var sub gostripe.Subscription
	if err := json.Unmarshal(raw, &sub); err != nil {
		return payment.SubscriptionDeleted{}, errs.Mark(errs.Wrap(err, "decode subscription"), ErrMalformedEvent)
	}
	return payment.SubscriptionDeleted{Metadata: sub.Metadata, SubscriptionRef: sub.ID}, nil
}

// invoicePeriodEnd prefers the subscription line's service period; the
// invoice-level period only covers what was billed in arrears.
func invoicePeriodEnd(inv *gostripe.Invoice) time.Time {
	if inv.Lines != nil {
		for _, line := range inv.Lines.Data {
			if line != nil && line.Period != nil && line.Period.End > 0 {
				return time.Unix(line.Period.End, 0).UTC()
			}
		}
	}
	return time.Time{}
}

func subscriptionPeriodEnd(sub *gostripe.Subscription) time.Time {
	if sub.Items == nil {
		return time.Time{}
	}
	for _, item := range sub.Items.Data {
		if item != nil && item.CurrentPeriodEnd > 0 {
			return time.Unix(item.CurrentPeriodEnd, 0).UTC()
		}
	}
	return time.Time{}
}
