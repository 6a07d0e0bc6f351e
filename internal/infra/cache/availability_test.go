//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"venue-booking/internal/domain/availability"
	"venue-booking/internal/domain/equipment"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AvailabilityCacheSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	cache *AvailabilityCache
	ctx   context.Context
	date  time.Time
}

func TestAvailabilityCacheSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityCacheSuite))
}

func (s *AvailabilityCacheSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.T().Cleanup(func() { _ = client.Close() })

	s.cache = NewAvailabilityCache(client, 30*time.Second)
	s.ctx = context.Background()
	s.date = time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)
}

func (s *AvailabilityCacheSuite) TestMissOnEmpty() {
	occ, hit, err := s.cache.Get(s.ctx, s.date, equipment.StationKart)

	s.Require().NoError(err)
	s.False(hit)
	s.Nil(occ)
}

func (s *AvailabilityCacheSuite) TestSetThenGet() {
	want := []availability.Occupancy{{Hour: 14, Hours: 2, Units: 3}, {Hour: 18, Hours: 1, Units: 1}}

	s.Require().NoError(s.cache.Set(s.ctx, s.date, equipment.StationKart, want))
	got, hit, err := s.cache.Get(s.ctx, s.date, equipment.StationKart)

	s.Require().NoError(err)
	s.True(hit)
	if diff := cmp.Diff(want, got); diff != "" {
		s.T().Errorf("occupancy mismatch (-want +got):\n%s", diff)
	}
	s.True(s.mr.Exists("availability:2026-01-30:kart"))
}

func (s *AvailabilityCacheSuite) TestEmptyOccupancyIsAHit() {
	s.Require().NoError(s.cache.Set(s.ctx, s.date, equipment.StationRig, nil))

	got, hit, err := s.cache.Get(s.ctx, s.date, equipment.StationRig)

	s.Require().NoError(err)
	s.True(hit)
	s.Empty(got)
}

func (s *AvailabilityCacheSuite) TestEntriesExpire() {
	s.Require().NoError(s.cache.Set(s.ctx, s.date, equipment.StationKart, []availability.Occupancy{{Hour: 10, Hours: 1, Units: 1}}))

	s.mr.FastForward(31 * time.Second)
	_, hit, err := s.cache.Get(s.ctx, s.date, equipment.StationKart)

	s.Require().NoError(err)
	s.False(hit)
}

func (s *AvailabilityCacheSuite) TestInvalidateBlocksStaleFill() {
	occ := []availability.Occupancy{{Hour: 10, Hours: 1, Units: 1}}
	s.Require().NoError(s.cache.Set(s.ctx, s.date, equipment.StationMotion, occ))

	s.Require().NoError(s.cache.Invalidate(s.ctx, s.date, equipment.StationMotion))
	_, hit, _ := s.cache.Get(s.ctx, s.date, equipment.StationMotion)
	s.False(hit)

	// a reader that loaded before the invalidation tries to write back
	s.Require().NoError(s.cache.Set(s.ctx, s.date, equipment.StationMotion, occ))
	_, hit, _ = s.cache.Get(s.ctx, s.date, equipment.StationMotion)
	s.False(hit)

	s.mr.FastForward(s.cache.invalidationHold() + time.Millisecond)
	s.Require().NoError(s.cache.Set(s.ctx, s.date, equipment.StationMotion, occ))
	_, hit, _ = s.cache.Get(s.ctx, s.date, equipment.StationMotion)
	s.True(hit)
}

func (s *AvailabilityCacheSuite) TestInvalidateOutlastsSlowFill() {
	stale := []availability.Occupancy{{Hour: 14, Hours: 2, Units: 3}}
	s.Require().NoError(s.cache.Invalidate(s.ctx, s.date, equipment.StationKart))

	// the reader's query took longer than a couple of seconds
	s.mr.FastForward(5 * time.Second)
	s.Require().NoError(s.cache.Set(s.ctx, s.date, equipment.StationKart, stale))
	_, hit, _ := s.cache.Get(s.ctx, s.date, equipment.StationKart)
	s.False(hit)

	s.mr.FastForward(26 * time.Second)
	s.Require().NoError(s.cache.Set(s.ctx, s.date, equipment.StationKart, stale))
	_, hit, _ = s.cache.Get(s.ctx, s.date, equipment.StationKart)
	s.True(hit)
}

func TestInvalidationHold(t *testing.T) {
	assert.Equal(t, 30*time.Second, NewAvailabilityCache(nil, 30*time.Second).invalidationHold())
	assert.Equal(t, minInvalidationHold, NewAvailabilityCache(nil, 500*time.Millisecond).invalidationHold())
}

func (s *AvailabilityCacheSuite) TestUnreadableValueIsMiss() {
	s.Require().NoError(s.mr.Set("availability:2026-01-30:flight", "garbage"))

	_, hit, err := s.cache.Get(s.ctx, s.date, equipment.StationFlight)

	s.Require().NoError(err)
	s.False(hit)
}

func (s *AvailabilityCacheSuite) TestServerDown() {
	down, err := miniredis.Run()
	s.Require().NoError(err)
	addr := down.Addr()
	down.Close()
	client := redis.NewClient(&redis.Options{Addr: addr, MaxRetries: -1})
	defer client.Close()

	_, _, err = NewAvailabilityCache(client, time.Second).Get(s.ctx, s.date, equipment.StationKart)

	s.Error(err)
}

func TestNoopCache(t *testing.T) {
	var c NoopCache
	ctx := context.Background()
	date := time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)

	require.NoError(t, c.Set(ctx, date, equipment.StationKart, []availability.Occupancy{{Hour: 10, Hours: 1, Units: 1}}))
	_, hit, err := c.Get(ctx, date, equipment.StationKart)

	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, c.Invalidate(ctx, date, equipment.StationKart))
}
