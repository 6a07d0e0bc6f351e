//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/sqlstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMembershipWriteQueries struct {
	mock.Mock
}

func (m *MockMembershipWriteQueries) UpsertMembership(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpsertMembershipParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockMembershipWriteQueries) DeactivateMembership(ctx context.Context, db sqlstore.DBTX, arg sqlstore.DeactivateMembershipParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMembershipWriteQueries) GetMembershipSubscriptionRef(ctx context.Context, db sqlstore.DBTX, arg sqlstore.GetMembershipSubscriptionRefParams) (string, error) {
	args := m.Called(ctx, db, arg)
	return args.String(0), args.Error(1)
}

func TestMembershipRepository_SubscriptionRef(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		ref       string
		mockError error
		wantFound bool
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "current subscription", ref: "sub_new", wantFound: true},
		{name: "no membership of that type", mockError: pgx.ErrNoRows},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockMembershipWriteQueries)
			q.On("GetMembershipSubscriptionRef", mock.Anything, mock.Anything, sqlstore.GetMembershipSubscriptionRefParams{
				UserID: userID, EquipmentType: "kart",
			}).Return(tt.ref, tt.mockError)

			repo := NewMembershipRepository(q, nil)
			ref, found, err := repo.SubscriptionRef(context.Background(), userID, equipment.Kart)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantFound, found)
				assert.Equal(t, tt.ref, ref)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestMembershipRepository_Deactivate(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		ref     string
		rows    int64
		wantHit bool
	}{
		{name: "bound to the cancelled subscription", ref: "sub_old", rows: 1, wantHit: true},
		{name: "already moved to another subscription", ref: "sub_old", rows: 0},
		{name: "manual revoke matches any subscription", ref: "", rows: 1, wantHit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockMembershipWriteQueries)
			q.On("DeactivateMembership", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlstore.DeactivateMembershipParams) bool {
				return p.UserID == userID && p.EquipmentType == "rig" && p.SubscriptionRef == tt.ref && p.UpdatedAt.Time.Equal(now)
			})).Return(tt.rows, nil)

			repo := NewMembershipRepository(q, nil)
			hit, err := repo.Deactivate(context.Background(), userID, equipment.Rig, tt.ref, now)

			require.NoError(t, err)
			assert.Equal(t, tt.wantHit, hit)
			q.AssertExpectations(t)
		})
	}
}
