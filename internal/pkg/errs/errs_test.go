//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"venue-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches the mark and keeps its message", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errors.New("kart 14:00 is full"), errs.ErrCapacityExceeded), "create booking")

		assert.True(t, errs.Is(err, errs.ErrCapacityExceeded))
		assert.False(t, errors.Is(err, errs.ErrCapacityExceeded))
		assert.Equal(t, "create booking: kart 14:00 is full", err.Error())
	})

	t.Run("nil error returns the mark itself", func(t *testing.T) {
		assert.Equal(t, errs.ErrUserNotFound, errs.Mark(nil, errs.ErrUserNotFound))
	})

	t.Run("IsAny", func(t *testing.T) {
		err := errs.Mark(errors.New("slot gone"), errs.ErrBookingInPast)

		assert.True(t, errs.IsAny(err, errs.ErrBookingNotFound, errs.ErrBookingInPast))
		assert.False(t, errs.IsAny(err, errs.ErrBookingNotFound))
	})
}

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))

	err := errs.Wrapf(errs.ErrTierNotFound, "tier %s", "kart-gold")
	assert.True(t, errs.Is(err, errs.ErrTierNotFound))
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "boom")

	all := errs.ExtractStackLines(errs.New("boom"), 0)
	assert.Greater(t, len(all), 3)
}
