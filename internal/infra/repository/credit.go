package repository

import (
	"context"

	"venue-booking/internal/domain/credit"
	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/sqlstore"

	"github.com/google/uuid"
)

type CreditWriteQueries interface {
	ListUserCredits(ctx context.Context, db sqlstore.DBTX, userID uuid.UUID) ([]sqlstore.UserCredits, error)
	UpsertUserCredit(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpsertUserCreditParams) error
	InsertCreditAudit(ctx context.Context, db sqlstore.DBTX, arg sqlstore.InsertCreditAuditParams) error
}

type CreditRepository struct {
	queries CreditWriteQueries
	db      sqlstore.DBTX
}

func NewCreditRepository(queries CreditWriteQueries, db sqlstore.DBTX) *CreditRepository {
	return &CreditRepository{
		queries: queries,
		db:      db,
	}
}

// Balances reads every stored bucket. Absent rows read as zero through credit.Balances.
func (r *CreditRepository) Balances(ctx context.Context, userID uuid.UUID) (credit.Balances, error) {
	rows, err := r.queries.ListUserCredits(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read credit balances", err)
	}

	balances := make(credit.Balances, len(rows))
	for _, row := range rows {
		t, err := equipment.NewType(row.EquipmentType)
		if err != nil {
			continue
		}
		balances[t] = int(row.Balance)
	}
	return balances, nil
}

func (r *CreditRepository) SaveBalance(ctx context.Context, userID uuid.UUID, t equipment.Type, balance int) error {
	err := r.queries.UpsertUserCredit(ctx, r.db, sqlstore.UpsertUserCreditParams{
		UserID:        userID,
		EquipmentType: t.String(),
		Balance:       int32(balance), // #nosec G115 -- balances are small positive counts
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save credit balance", err)
	}
	return nil
}

func (r *CreditRepository) AppendEntry(ctx context.Context, entry credit.Entry) error {
	err := r.queries.InsertCreditAudit(ctx, r.db, sqlstore.InsertCreditAuditParams{
		UserID:        entry.UserID,
		EquipmentType: entry.Type.String(),
		Amount:        int32(entry.Amount), // #nosec G115
		Kind:          string(entry.Kind),
		BalanceAfter:  int32(entry.BalanceAfter), // #nosec G115
		Source:        string(entry.Source),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append credit audit entry", err)
	}
	return nil
}
