package stripe

import (
	"log/slog"

	"venue-booking/internal/domain/payment"
	"venue-booking/internal/pkg/errs"

	"github.com/stripe/stripe-go/v82/webhook"
)

// SignatureHeader carries the processor's HMAC over the raw request body.
const SignatureHeader = "Stripe-Signature"

// MaxBodyBytes bounds the webhook payload the handler will read.
const MaxBodyBytes = int64(65536)

type Verifier struct {
	secret string
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: secret}
}

// Verify authenticates payload against header before anything is decoded.
// The account may be pinned to a different API version than the SDK, so the
// version check is skipped; the fields read here are stable across versions.
func (v *Verifier) Verify(payload []byte, header string) (payment.Envelope, error) {
	if header == "" {
		return payment.Envelope{}, errs.Mark(errs.New("missing signature header"), errs.ErrInvalidSignature)
	}

	event, err := webhook.ConstructEventWithOptions(payload, header, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		slog.Warn("webhook signature rejected", "security", true, "error", err.Error())
		return payment.Envelope{}, errs.Mark(err, errs.ErrInvalidSignature)
	}

	return payment.Envelope{
		ID:   event.ID,
		Kind: payment.Kind(event.Type),
		Raw:  event.Data.Raw,
	}, nil
}
