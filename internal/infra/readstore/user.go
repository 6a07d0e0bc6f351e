package readstore

import (
	"context"

	"venue-booking/internal/infra"
	"venue-booking/internal/infra/sqlstore"
	"venue-booking/internal/pkg/pgconv"
	"venue-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Users, error)
	FindUserByEmail(ctx context.Context, db sqlstore.DBTX, email string) (sqlstore.Users, error)
	FindUserByExternalUID(ctx context.Context, db sqlstore.DBTX, externalUid string) (sqlstore.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlstore.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlstore.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toAuthorizedUserView(row), nil
}

// FindByEmail also returns the password hash, empty for externally authenticated users.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return toAuthorizedUserView(row), pgconv.StringFromPgtype(row.PasswordHash), nil
}

func (r *UserReadStore) FindByExternalUID(ctx context.Context, uid string) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByExternalUID(ctx, r.db, uid)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by external uid", err)
	}
	return toAuthorizedUserView(row), nil
}

func toAuthorizedUserView(row sqlstore.Users) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          row.ID,
		ExternalUID: pgconv.StringFromPgtype(row.ExternalUid),
		Email:       row.Email,
		Name:        row.Name,
		Phone:       row.Phone,
		Role:        row.Role,
		IsActive:    row.IsActive,
	}
}
