//go:build unit

package user_test

import (
	"testing"

	"venue-booking/internal/domain/user"
	"venue-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		expected := user.NewUser(email, "hashed_password", "Test Driver", user.RoleCustomer)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.IsAdmin())
		assert.Nil(t, actual.LastLogin())
		assert.Equal(t, "Test Driver", actual.Name())
	})

	t.Run("keeps the stored hash", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithPasswordHash("$2a$10$stored").BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "$2a$10$stored", actual.PasswordHash())
		assert.Empty(t, actual.ExternalUID())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "malformed email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "admin",
				mutate: func(b *builder.UserBuilder) { b.AsAdmin() },
			},
			{
				name:   "customer",
				mutate: func(b *builder.UserBuilder) { b.WithRole("customer") },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})
}

func TestNewExternalUser(t *testing.T) {
	email, err := user.NewEmail("  Rider@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "rider@example.com", email.Value())

	u, err := user.NewExternalUser("fb-uid-1", email, " Rider ")
	require.NoError(t, err)
	assert.Equal(t, "fb-uid-1", u.ExternalUID())
	assert.Empty(t, u.PasswordHash())
	assert.Equal(t, user.RoleCustomer, u.Role())
	assert.Equal(t, "Rider", u.Name())

	_, err = user.NewExternalUser("  ", email, "Rider")
	assert.ErrorIs(t, err, user.ErrMissingExternalUID)
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("long-enough")
	require.NoError(t, err)
	assert.Equal(t, "long-enough", p.Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.ErrorIs(t, err, c.errIs)
			assert.Nil(t, actual)
		})
	}
}
