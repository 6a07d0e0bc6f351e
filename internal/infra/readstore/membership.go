package readstore

import (
	"context"

	"venue-booking/internal/infra"
	"venue-booking/internal/infra/sqlstore"
	"venue-booking/internal/pkg/pgconv"
	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type MembershipReadQueries interface {
	ListMemberships(ctx context.Context, db sqlstore.DBTX, userID uuid.UUID) ([]sqlstore.Memberships, error)
}

type MembershipReadStore struct {
	queries MembershipReadQueries
	db      sqlstore.DBTX
}

func NewMembershipReadStore(queries MembershipReadQueries, db sqlstore.DBTX) *MembershipReadStore {
	return &MembershipReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MembershipReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.MembershipView, error) {
	rows, err := r.queries.ListMemberships(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list memberships", err)
	}

	views := make([]*queries.MembershipView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.MembershipView{
			Type:            row.EquipmentType,
			TierID:          row.TierID,
			Active:          row.Active,
			SubscriptionRef: row.SubscriptionRef,
			NextBillingDate: pgconv.TimeFromPgtype(row.NextBillingDate),
			UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return views, nil
}
