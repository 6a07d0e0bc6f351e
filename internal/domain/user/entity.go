package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the identity that owns credits, memberships and bookings. Users are never deleted here.
type User struct {
	id           uuid.UUID
	externalUID  string
	email        Email
	passwordHash string
	name         string
	phone        string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser registers a local account. passwordHash is empty for externally authenticated users.
func NewUser(email Email, passwordHash, name string, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		name:         strings.TrimSpace(name),
		role:         role,
		isActive:     true,
	}
}

// NewExternalUser registers a user first seen through an identity provider.
func NewExternalUser(externalUID string, email Email, name string) (*User, error) {
	if strings.TrimSpace(externalUID) == "" {
		return nil, ErrMissingExternalUID
	}
	u := NewUser(email, "", name, RoleCustomer)
	u.externalUID = externalUID
	return u, nil
}

func Reconstruct(
	id uuid.UUID,
	externalUID string,
	email Email,
	passwordHash, name, phone string,
	role Role,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		externalUID:  externalUID,
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		phone:        phone,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) IsAdmin() bool { return u.role == RoleAdmin }

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) ExternalUID() string   { return u.externalUID }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Name() string          { return u.name }
func (u *User) Phone() string         { return u.phone }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
