package bootstrap

import (
	"context"
	"log/slog"

	"venue-booking/internal/infra/mail"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/usecase/shared"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		NewBookingNotifier,
	),
)

func NewBookingNotifier(cfg config.Config) (shared.BookingNotifier, error) {
	if !cfg.Mail.Enabled {
		slog.Info("mail disabled, confirmations are logged only")
		return mail.LogNotifier{}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Mail.AWSRegion))
	if err != nil {
		return nil, err
	}
	return mail.NewSESNotifier(ses.NewFromConfig(awsCfg), cfg.Mail.From), nil
}
