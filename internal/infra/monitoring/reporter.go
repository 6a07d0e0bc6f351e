package monitoring

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
)

// SentryReporter sends failures to Sentry with their tags. A request hub put on
// the context by the gin middleware wins over the process hub, so the event
// carries the request too.
type SentryReporter struct {
	hub *sentry.Hub
}

func NewSentryReporter(hub *sentry.Hub) *SentryReporter {
	return &SentryReporter{hub: hub}
}

func (r *SentryReporter) Report(ctx context.Context, err error, tags map[string]string) {
	logReport(err, tags)

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = r.hub
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		hub.CaptureException(err)
	})
}

// LogReporter only logs; used when no DSN is configured.
type LogReporter struct{}

func (LogReporter) Report(_ context.Context, err error, tags map[string]string) {
	logReport(err, tags)
}

func logReport(err error, tags map[string]string) {
	attrs := make([]any, 0, 2+2*len(tags))
	attrs = append(attrs, "error", err.Error())
	for k, v := range tags {
		attrs = append(attrs, k, v)
	}
	slog.Error("operator alert", attrs...)
}
