package mail

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"

	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const confirmationSubject = "Your booking is confirmed"

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<p>Hi {{.Name}},</p>
<p>Your {{.Station}} booking for {{.Drivers}} driver(s) on {{.Date}} at {{.Time}} ({{.Hours}}h) is confirmed.</p>
<p>Booking reference: {{.BookingID}}</p>
<p>Payment: {{.PaymentMethod}}</p>`))

type sesSender interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SESNotifier struct {
	client sesSender
	from   string
}

func NewSESNotifier(client sesSender, from string) *SESNotifier {
	return &SESNotifier{client: client, from: from}
}

func (n *SESNotifier) BookingConfirmed(ctx context.Context, c shared.BookingConfirmation) error {
	if c.To == "" {
		return nil
	}

	var buf bytes.Buffer
	if err := confirmationTemplate.Execute(&buf, c); err != nil {
		return errs.Wrap(err, "render confirmation")
	}

	input := &ses.SendEmailInput{
		Source: aws.String(n.from),
		Destination: &types.Destination{
			ToAddresses: []string{c.To},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(confirmationSubject)},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(buf.String())},
			},
		},
	}
	if _, err := n.client.SendEmail(ctx, input); err != nil {
		return errs.Wrap(err, "send confirmation")
	}
	return nil
}

// LogNotifier stands in when mail is disabled.
type LogNotifier struct{}

func (LogNotifier) BookingConfirmed(_ context.Context, c shared.BookingConfirmation) error {
	slog.Info("booking confirmation (mail disabled)", "booking_id", c.BookingID, "date", c.Date, "time", c.Time)
	return nil
}
