package readstore

import (
	"context"

	"venue-booking/internal/infra"
	"venue-booking/internal/infra/sqlstore"
)

type WebhookEventReadQueries interface {
	WebhookEventExists(ctx context.Context, db sqlstore.DBTX, eventID string) (bool, error)
}

type WebhookEventReadStore struct {
	queries WebhookEventReadQueries
	db      sqlstore.DBTX
}

func NewWebhookEventReadStore(queries WebhookEventReadQueries, db sqlstore.DBTX) *WebhookEventReadStore {
	return &WebhookEventReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *WebhookEventReadStore) Processed(ctx context.Context, eventID string) (bool, error) {
	ok, err := r.queries.WebhookEventExists(ctx, r.db, eventID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check webhook event", err)
	}
	return ok, nil
}
