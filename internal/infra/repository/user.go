package repository

import (
	"context"

	"venue-booking/internal/domain/user"
	"venue-booking/internal/infra"
	"venue-booking/internal/infra/sqlstore"
	"venue-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	LockUser(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (uuid.UUID, error)
	CreateUser(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateUserParams) (uuid.UUID, error)
	UpdateUserLastLogin(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) error
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlstore.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlstore.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Lock(ctx context.Context, id uuid.UUID) error {
	if _, err := r.queries.LockUser(ctx, r.db, id); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock user", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	params := sqlstore.CreateUserParams{
		ID:           u.ID(),
		ExternalUid:  pgconv.OptionalStringToPgtype(u.ExternalUID()),
		Email:        u.Email().Value(),
		PasswordHash: pgconv.OptionalStringToPgtype(u.PasswordHash()),
		Name:         u.Name(),
		Phone:        u.Phone(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
	}

	id, err := r.queries.CreateUser(ctx, r.db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	err := r.queries.UpdateUserLastLogin(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
