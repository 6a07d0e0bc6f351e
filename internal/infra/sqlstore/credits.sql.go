package sqlstore

import (
	"context"

	"github.com/google/uuid"
)

const listUserCredits = `-- name: ListUserCredits :many
SELECT user_id, equipment_type, balance, updated_at FROM user_credits WHERE user_id = $1
`

func (q *Queries) ListUserCredits(ctx context.Context, db DBTX, userID uuid.UUID) ([]UserCredits, error) {
	rows, err := db.Query(ctx, listUserCredits, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []UserCredits
	for rows.Next() {
		var i UserCredits
		if err := rows.Scan(&i.UserID, &i.EquipmentType, &i.Balance, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertUserCredit = `-- name: UpsertUserCredit :exec
INSERT INTO user_credits (user_id, equipment_type, balance, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (user_id, equipment_type) DO UPDATE
SET balance = EXCLUDED.balance, updated_at = now()
`

type UpsertUserCreditParams struct {
	UserID        uuid.UUID
	EquipmentType string
	Balance       int32
}

func (q *Queries) UpsertUserCredit(ctx context.Context, db DBTX, arg UpsertUserCreditParams) error {
	_, err := db.Exec(ctx, upsertUserCredit, arg.UserID, arg.EquipmentType, arg.Balance)
	return err
}

const insertCreditAudit = `-- name: InsertCreditAudit :exec
INSERT INTO credit_audit (user_id, equipment_type, amount, kind, balance_after, source, created_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
`

type InsertCreditAuditParams struct {
	UserID        uuid.UUID
	EquipmentType string
	Amount        int32
	Kind          string
	BalanceAfter  int32
	Source        string
}

func (q *Queries) InsertCreditAudit(ctx context.Context, db DBTX, arg InsertCreditAuditParams) error {
	_, err := db.Exec(ctx, insertCreditAudit,
		arg.UserID,
		arg.EquipmentType,
		arg.Amount,
		arg.Kind,
		arg.BalanceAfter,
		arg.Source,
	)
	return err
}

const listCreditAudit = `-- name: ListCreditAudit :many
SELECT id, user_id, equipment_type, amount, kind, balance_after, source, created_at
FROM credit_audit
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2
`

type ListCreditAuditParams struct {
	UserID uuid.UUID
	Limit  int32
}

func (q *Queries) ListCreditAudit(ctx context.Context, db DBTX, arg ListCreditAuditParams) ([]CreditAudit, error) {
	rows, err := db.Query(ctx, listCreditAudit, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CreditAudit
	for rows.Next() {
		var i CreditAudit
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.EquipmentType,
			&i.Amount,
			&i.Kind,
			&i.BalanceAfter,
			&i.Source,
			&i.CreatedAt,
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
