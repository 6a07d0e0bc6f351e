package stripe

import (
	"context"
	"errors"
	"net/http"

	"venue-booking/internal/domain/payment"
	"venue-booking/internal/pkg/errs"

	gostripe "github.com/stripe/stripe-go/v82"
)

var ErrSubscriptionNotFound = errs.New("subscription not found")

// Gateway is the outbound side of the processor: decoding verified events and
// reading or cancelling subscriptions.
type Gateway struct {
	client *gostripe.Client
}

func NewGateway(client *gostripe.Client) *Gateway {
	return &Gateway{client: client}
}

func (g *Gateway) DecodeCheckout(raw []byte) (payment.CheckoutCompleted, error) {
	return DecodeCheckout(raw)
}

func (g *Gateway) DecodeInvoice(raw []byte) (payment.InvoicePaid, error) {
	return DecodeInvoice(raw)
}

func (g *Gateway) DecodeSubscriptionDeleted(raw []byte) (payment.SubscriptionDeleted, error) {
	return DecodeSubscriptionDeleted(raw)
}

// Subscription returns a zero PeriodEnd when the processor omits it.
func (g *Gateway) Subscription(ctx context.Context, id string) (payment.Subscription, error) {
	sub, err := g.client.V1Subscriptions.Retrieve(ctx, id, nil)
	if err != nil {
		return payment.Subscription{}, classify(err, "retrieve subscription")
	}
	return payment.Subscription{
		ID:        sub.ID,
		Metadata:  sub.Metadata,
		PeriodEnd: subscriptionPeriodEnd(sub),
	}, nil
}

func (g *Gateway) CancelSubscription(ctx context.Context, id string) error {
	if _, err := g.client.V1Subscriptions.Cancel(ctx, id, nil); err != nil {
		return classify(err, "cancel subscription")
	}
	return nil
}

func classify(err error, msg string) error {
	var serr *gostripe.Error
	if errors.As(err, &serr) && serr.HTTPStatusCode == http.StatusNotFound {
		return errs.Mark(errs.Wrap(err, msg), ErrSubscriptionNotFound)
	}
	return errs.Mark(errs.Wrap(err, msg), errs.ErrUpstreamFailure)
}
