package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, external_uid, email, password_hash, name, phone, role, is_active, last_login, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (Users, error) {
	var i Users
	err := row.Scan(
		&i.ID,
		&i.ExternalUid,
		&i.Email,
		&i.PasswordHash,
		&i.Name,
		&i.Phone,
		&i.Role,
		&i.IsActive,
		&i.LastLogin,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createUser = `-- name: CreateUser :one
INSERT INTO users (id, external_uid, email, password_hash, name, phone, role, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id
`

type CreateUserParams struct {
	ID           uuid.UUID
	ExternalUid  pgtype.Text
	Email        string
	PasswordHash pgtype.Text
	Name         string
	Phone        string
	Role         string
	IsActive     bool
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createUser,
		arg.ID,
		arg.ExternalUid,
		arg.Email,
		arg.PasswordHash,
		arg.Name,
		arg.Phone,
		arg.Role,
		arg.IsActive,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const findUserByID = `-- name: FindUserByID :one
SELECT ` + userColumns + ` FROM users WHERE id = $1
`

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	return scanUser(db.QueryRow(ctx, findUserByID, id))
}

const findUserByEmail = `-- name: FindUserByEmail :one
SELECT ` + userColumns + ` FROM users WHERE email = lower($1)
`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (Users, error) {
	return scanUser(db.QueryRow(ctx, findUserByEmail, email))
}

const findUserByExternalUID = `-- name: FindUserByExternalUID :one
SELECT ` + userColumns + ` FROM users WHERE external_uid = $1
`

func (q *Queries) FindUserByExternalUID(ctx context.Context, db DBTX, externalUid string) (Users, error) {
	return scanUser(db.QueryRow(ctx, findUserByExternalUID, externalUid))
}

const lockUser = `-- name: LockUser :one
SELECT id FROM users WHERE id = $1 FOR UPDATE
`

// LockUser serializes every credit and membership mutation for one user.
func (q *Queries) LockUser(ctx context.Context, db DBTX, id uuid.UUID) (uuid.UUID, error) {
	row := db.QueryRow(ctx, lockUser, id)
	var locked uuid.UUID
	err := row.Scan(&locked)
	return locked, err
}

const updateUserLastLogin = `-- name: UpdateUserLastLogin :exec
UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1
`

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, updateUserLastLogin, id)
	return err
}
