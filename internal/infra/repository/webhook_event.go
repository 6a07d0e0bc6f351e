package repository

import (
	"context"

	"venue-booking/internal/infra"
	"venue-booking/internal/infra/sqlstore"
)

type WebhookEventWriteQueries interface {
	InsertProcessedWebhookEvent(ctx context.Context, db sqlstore.DBTX, arg sqlstore.InsertProcessedWebhookEventParams) (int64, error)
}

type WebhookEventRepository struct {
	queries WebhookEventWriteQueries
	db      sqlstore.DBTX
}

func NewWebhookEventRepository(queries WebhookEventWriteQueries, db sqlstore.DBTX) *WebhookEventRepository {
	return &WebhookEventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *WebhookEventRepository) MarkProcessed(ctx context.Context, eventID, eventType string) (bool, error) {
	n, err := r.queries.InsertProcessedWebhookEvent(ctx, r.db, sqlstore.InsertProcessedWebhookEventParams{
		EventID:   eventID,
		EventType: eventType,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record webhook event", err)
	}
	return n > 0, nil
}
