package readstore

import (
	"context"

	"venue-booking/internal/domain/credit"
	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/sqlstore"
	"venue-booking/internal/pkg/pgconv"
	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreditReadQueries interface {
	ListUserCredits(ctx context.Context, db sqlstore.DBTX, userID uuid.UUID) ([]sqlstore.UserCredits, error)
	ListCreditAudit(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListCreditAuditParams) ([]sqlstore.CreditAudit, error)
}

type CreditReadStore struct {
	queries CreditReadQueries
	db      sqlstore.DBTX
}

func NewCreditReadStore(queries CreditReadQueries, db sqlstore.DBTX) *CreditReadStore {
	return &CreditReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CreditReadStore) Balances(ctx context.Context, userID uuid.UUID) (credit.Balances, error) {
	rows, err := r.queries.ListUserCredits(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read credit balances", err)
	}
	b := credit.Balances{}
	for _, row := range rows {
		if t, err := equipment.NewType(row.EquipmentType); err == nil {
			b[t] = int(row.Balance)
		}
	}
	return b, nil
}

func (r *CreditReadStore) History(ctx context.Context, userID uuid.UUID, limit int) ([]*queries.CreditHistoryItem, error) {
	rows, err := r.queries.ListCreditAudit(ctx, r.db, sqlstore.ListCreditAuditParams{
		UserID: userID,
		Limit:  int32(limit), // #nosec G115 -- clamped by the caller
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list credit history", err)
	}

	items := make([]*queries.CreditHistoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.CreditHistoryItem{
			Type:         row.EquipmentType,
			Amount:       int(row.Amount),
			Kind:         row.Kind,
			BalanceAfter: int(row.BalanceAfter),
			Source:       row.Source,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items, nil
}
