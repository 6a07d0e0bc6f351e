//go:build unit

package identity

import (
	"context"
	"errors"
	"testing"

	"venue-booking/internal/pkg/errs"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockIDTokenVerifier struct {
	mock.Mock
}

func (m *MockIDTokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Token), args.Error(1)
}

func TestFirebaseVerifier_Verify(t *testing.T) {
	t.Run("extracts uid and profile claims", func(t *testing.T) {
		client := new(MockIDTokenVerifier)
		client.On("VerifyIDToken", mock.Anything, "good-token").Return(&auth.Token{
			UID:    "fb-uid-1",
			Claims: map[string]interface{}{"email": "driver@example.com", "name": "Dana Driver"},
		}, nil)

		got, err := NewFirebaseVerifier(client).Verify(context.Background(), "good-token")

		require.NoError(t, err)
		assert.Equal(t, Identity{UID: "fb-uid-1", Email: "driver@example.com", Name: "Dana Driver"}, got)
		client.AssertExpectations(t)
	})

	t.Run("missing claims are left empty", func(t *testing.T) {
		client := new(MockIDTokenVerifier)
		client.On("VerifyIDToken", mock.Anything, "bare").Return(&auth.Token{UID: "fb-uid-2"}, nil)

		got, err := NewFirebaseVerifier(client).Verify(context.Background(), "bare")

		require.NoError(t, err)
		assert.Equal(t, "fb-uid-2", got.UID)
		assert.Empty(t, got.Email)
	})

	t.Run("rejected token", func(t *testing.T) {
		client := new(MockIDTokenVerifier)
		client.On("VerifyIDToken", mock.Anything, "bad").Return(nil, errors.New("token expired"))

		_, err := NewFirebaseVerifier(client).Verify(context.Background(), "bad")

		assert.True(t, errs.Is(err, ErrInvalidIDToken))
	})
}
