package sqlstore

import "context"

const webhookEventExists = `-- name: WebhookEventExists :one
SELECT EXISTS (SELECT 1 FROM processed_webhook_events WHERE event_id = $1)
`

func (q *Queries) WebhookEventExists(ctx context.Context, db DBTX, eventID string) (bool, error) {
	row := db.QueryRow(ctx, webhookEventExists, eventID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const insertProcessedWebhookEvent = `-- name: InsertProcessedWebhookEvent :execrows
INSERT INTO processed_webhook_events (event_id, event_type, processed_at)
VALUES ($1, $2, now())
ON CONFLICT (event_id) DO NOTHING
`

type InsertProcessedWebhookEventParams struct {
	EventID   string
	EventType string
}

func (q *Queries) InsertProcessedWebhookEvent(ctx context.Context, db DBTX, arg InsertProcessedWebhookEventParams) (int64, error) {
	result, err := db.Exec(ctx, insertProcessedWebhookEvent, arg.EventID, arg.EventType)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
