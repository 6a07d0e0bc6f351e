//go:build unit

package monitoring_test

import (
	"context"
	"sync"
	"testing"

	"venue-booking/internal/infra/monitoring"
	"venue-booking/internal/pkg/errs"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capture struct {
	mu     sync.Mutex
	events []*sentry.Event
}

func (c *capture) hub(t *testing.T) *sentry.Hub {
	t.Helper()
	client, err := sentry.NewClient(sentry.ClientOptions{
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.events = append(c.events, event)
			return nil
		},
	})
	require.NoError(t, err)
	return sentry.NewHub(client, sentry.NewScope())
}

func TestSentryReporter_Report(t *testing.T) {
	t.Run("tags reach the event", func(t *testing.T) {
		c := &capture{}
		reporter := monitoring.NewSentryReporter(c.hub(t))

		reporter.Report(context.Background(), errs.New("ledger write failed"), map[string]string{
			"event_id":   "evt_1",
			"event_type": "invoice.paid",
		})

		require.Len(t, c.events, 1)
		assert.Equal(t, "evt_1", c.events[0].Tags["event_id"])
		assert.Equal(t, "invoice.paid", c.events[0].Tags["event_type"])
	})

	t.Run("request hub on the context is preferred", func(t *testing.T) {
		process, request := &capture{}, &capture{}
		reporter := monitoring.NewSentryReporter(process.hub(t))
		ctx := sentry.SetHubOnContext(context.Background(), request.hub(t))

		reporter.Report(ctx, errs.New("boom"), nil)

		assert.Empty(t, process.events)
		assert.Len(t, request.events, 1)
	})

	t.Run("tags do not leak into later events", func(t *testing.T) {
		c := &capture{}
		reporter := monitoring.NewSentryReporter(c.hub(t))

		reporter.Report(context.Background(), errs.New("first"), map[string]string{"event_id": "evt_1"})
		reporter.Report(context.Background(), errs.New("second"), nil)

		require.Len(t, c.events, 2)
		assert.NotContains(t, c.events[1].Tags, "event_id")
	})
}
