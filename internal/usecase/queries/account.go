package queries

import (
	"context"

	"venue-booking/internal/domain/credit"

	"github.com/google/uuid"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// AccountQueries exposes a user's own ledger and memberships.
//go:generate mockgen -source=account.go -destination=../../../tests/mock/queries/account_mock.go -package=queriesmock

type AccountQueries interface {
	GetBalances(ctx context.Context, userID uuid.UUID) (credit.Balances, error)
	ListHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*CreditHistoryItem, error)
	ListMemberships(ctx context.Context, userID uuid.UUID) ([]*MembershipView, error)
}

type CreditReadStore interface {
	Balances(ctx context.Context, userID uuid.UUID) (credit.Balances, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]*CreditHistoryItem, error)
}

type MembershipReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*MembershipView, error)
}

type accountQueriesImpl struct {
	credits     CreditReadStore
	memberships MembershipReadStore
}

func NewAccountQueries(credits CreditReadStore, memberships MembershipReadStore) AccountQueries {
	return &accountQueriesImpl{credits: credits, memberships: memberships}
}

func (q *accountQueriesImpl) GetBalances(ctx context.Context, userID uuid.UUID) (credit.Balances, error) {
	b, err := q.credits.Balances(ctx, userID)
	if err != nil {
		return nil, err
	}
	return b.Filled(), nil
}

func (q *accountQueriesImpl) ListHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*CreditHistoryItem, error) {
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}
	return q.credits.History(ctx, userID, limit)
}

func (q *accountQueriesImpl) ListMemberships(ctx context.Context, userID uuid.UUID) ([]*MembershipView, error) {
	return q.memberships.ListByUser(ctx, userID)
}
