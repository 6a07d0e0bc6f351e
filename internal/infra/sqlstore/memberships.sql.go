package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const upsertMembership = `-- name: UpsertMembership :exec
INSERT INTO memberships (user_id, equipment_type, tier_id, active, subscription_ref, next_billing_date, updated_at)
VALUES ($1, $2, $3, TRUE, $4, $5, $6)
ON CONFLICT (user_id, equipment_type) DO UPDATE
SET tier_id = EXCLUDED.tier_id,
    active = TRUE,
    subscription_ref = EXCLUDED.subscription_ref,
    next_billing_date = EXCLUDED.next_billing_date,
    updated_at = EXCLUDED.updated_at
`

type UpsertMembershipParams struct {
	UserID          uuid.UUID
	EquipmentType   string
	TierID          string
	SubscriptionRef string
	NextBillingDate pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

func (q *Queries) UpsertMembership(ctx context.Context, db DBTX, arg UpsertMembershipParams) error {
	_, err := db.Exec(ctx, upsertMembership,
		arg.UserID,
		arg.EquipmentType,
		arg.TierID,
		arg.SubscriptionRef,
		arg.NextBillingDate,
		arg.UpdatedAt,
	)
	return err
}

const deactivateMembership = `-- name: DeactivateMembership :execrows
UPDATE memberships SET active = FALSE, updated_at = $3
WHERE user_id = $1 AND equipment_type = $2
  AND ($4::text = '' OR subscription_ref = $4::text)
`

// SubscriptionRef empty matches any subscription.
type DeactivateMembershipParams struct {
	UserID          uuid.UUID
	EquipmentType   string
	UpdatedAt       pgtype.Timestamptz
	SubscriptionRef string
}

func (q *Queries) DeactivateMembership(ctx context.Context, db DBTX, arg DeactivateMembershipParams) (int64, error) {
	result, err := db.Exec(ctx, deactivateMembership,
		arg.UserID,
		arg.EquipmentType,
		arg.UpdatedAt,
		arg.SubscriptionRef,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getMembershipSubscriptionRef = `-- name: GetMembershipSubscriptionRef :one
SELECT subscription_ref FROM memberships
WHERE user_id = $1 AND equipment_type = $2
`

type GetMembershipSubscriptionRefParams struct {
	UserID        uuid.UUID
	EquipmentType string
}

func (q *Queries) GetMembershipSubscriptionRef(ctx context.Context, db DBTX, arg GetMembershipSubscriptionRefParams) (string, error) {
	row := db.QueryRow(ctx, getMembershipSubscriptionRef, arg.UserID, arg.EquipmentType)
	var subscriptionRef string
	err := row.Scan(&subscriptionRef)
	return subscriptionRef, err
}

const listMemberships = `-- name: ListMemberships :many
SELECT user_id, equipment_type, tier_id, active, subscription_ref, next_billing_date, updated_at
FROM memberships WHERE user_id = $1 ORDER BY equipment_type
`

func (q *Queries) ListMemberships(ctx context.Context, db DBTX, userID uuid.UUID) ([]Memberships, error) {
	rows, err := db.Query(ctx, listMemberships, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Memberships
	for rows.Next() {
		var i Memberships
		if err := rows.Scan(
			&i.UserID,
			&i.EquipmentType,
			&i.TierID,
			&i.Active,
			&i.SubscriptionRef,
			&i.NextBillingDate,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
