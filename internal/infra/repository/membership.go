package repository

import (
	"context"
	"time"

	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/domain/membership"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/sqlstore"
	"venue-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MembershipWriteQueries interface {
	UpsertMembership(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpsertMembershipParams) error
	DeactivateMembership(ctx context.Context, db sqlstore.DBTX, arg sqlstore.DeactivateMembershipParams) (int64, error)
	GetMembershipSubscriptionRef(ctx context.Context, db sqlstore.DBTX, arg sqlstore.GetMembershipSubscriptionRefParams) (string, error)
}

type MembershipRepository struct {
	queries MembershipWriteQueries
	db      sqlstore.DBTX
}

func NewMembershipRepository(queries MembershipWriteQueries, db sqlstore.DBTX) *MembershipRepository {
	return &MembershipRepository{
		queries: queries,
		db:      db,
	}
}

// Upsert writes the whole active state in one statement, first activation included.
func (r *MembershipRepository) Upsert(ctx context.Context, ms *membership.Membership) error {
	err := r.queries.UpsertMembership(ctx, r.db, sqlstore.UpsertMembershipParams{
		UserID:          ms.UserID(),
		EquipmentType:   ms.Type().String(),
		TierID:          string(ms.TierID()),
		SubscriptionRef: ms.SubscriptionRef(),
		NextBillingDate: pgconv.TimeToPgtype(ms.NextBillingDate()),
		UpdatedAt:       pgconv.TimeToPgtype(ms.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert membership", err)
	}
	return nil
}

func (r *MembershipRepository) SubscriptionRef(ctx context.Context, userID uuid.UUID, t equipment.Type) (string, bool, error) {
	ref, err := r.queries.GetMembershipSubscriptionRef(ctx, r.db, sqlstore.GetMembershipSubscriptionRefParams{
		UserID:        userID,
		EquipmentType: t.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", false, nil
		}
		return "", false, infra.WrapRepoErr("failed to read membership subscription", err)
	}
	return ref, true, nil
}

// Deactivate only touches the row still bound to subscriptionRef; an empty ref matches any.
func (r *MembershipRepository) Deactivate(ctx context.Context, userID uuid.UUID, t equipment.Type, subscriptionRef string, now time.Time) (bool, error) {
	n, err := r.queries.DeactivateMembership(ctx, r.db, sqlstore.DeactivateMembershipParams{
		UserID:          userID,
		EquipmentType:   t.String(),
		UpdatedAt:       pgconv.TimeToPgtype(now),
		SubscriptionRef: subscriptionRef,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to deactivate membership", err)
	}
	return n > 0, nil
}
