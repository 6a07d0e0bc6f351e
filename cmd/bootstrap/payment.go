package bootstrap

import (
	"venue-booking/internal/infra/stripe"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/usecase/commands"

	gostripe "github.com/stripe/stripe-go/v82"
	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewStripeClient,
		fx.Annotate(
			stripe.NewGateway,
			fx.As(new(commands.PaymentProcessor)),
		),
		fx.Annotate(
			func(cfg config.Config) *stripe.Verifier { return stripe.NewVerifier(cfg.Stripe.WebhookSecret) },
			fx.As(new(commands.EventVerifier)),
		),
	),
)

func NewStripeClient(cfg config.Config) *gostripe.Client {
	return gostripe.NewClient(cfg.Stripe.SecretKey)
}
