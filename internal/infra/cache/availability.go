package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"venue-booking/internal/domain/availability"
	"venue-booking/internal/domain/equipment"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// A fill that raced an invalidation must not write back what it read.
// Invalidate leaves a marker that setScript honours for as long as a
// cached value would live, so a slow Postgres read cannot outlast it.
const minInvalidationHold = 2 * time.Second

var setScript = redis.NewScript(`
	if redis.call("EXISTS", KEYS[2]) == 1 then
		return 0
	end
	redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
	return 1
`)

var invalidateScript = redis.NewScript(`
	redis.call("DEL", KEYS[1])
	redis.call("SET", KEYS[2], "1", "PX", ARGV[1])
	return 1
`)

type occupancyEntry struct {
	Hour  int `json:"h"`
	Hours int `json:"d"`
	Units int `json:"u"`
}

// AvailabilityCache keeps raw occupancy per (date, station) in Redis.
type AvailabilityCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewAvailabilityCache(client redis.UniversalClient, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func Key(date time.Time, station equipment.Station) string {
	return fmt.Sprintf("availability:%s:%s", date.Format(venue.DateLayout), station)
}

func (c *AvailabilityCache) invalidationHold() time.Duration {
	return max(c.ttl, minInvalidationHold)
}

func holdKey(date time.Time, station equipment.Station) string {
	return Key(date, station) + ":hold"
}

func (c *AvailabilityCache) Get(ctx context.Context, date time.Time, station equipment.Station) ([]availability.Occupancy, bool, error) {
	raw, err := c.client.Get(ctx, Key(date, station)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrap(err, "availability cache get")
	}

	var entries []occupancyEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		// A value we cannot read is a miss; the next fill overwrites it.
		return nil, false, nil
	}
	occ := make([]availability.Occupancy, len(entries))
	for i, e := range entries {
		occ[i] = availability.Occupancy{Hour: e.Hour, Hours: e.Hours, Units: e.Units}
	}
	return occ, true, nil
}

func (c *AvailabilityCache) Set(ctx context.Context, date time.Time, station equipment.Station, occ []availability.Occupancy) error {
	entries := make([]occupancyEntry, len(occ))
	for i, o := range occ {
		entries[i] = occupancyEntry{Hour: o.Hour, Hours: o.Hours, Units: o.Units}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return errs.Wrap(err, "availability cache encode")
	}

	keys := []string{Key(date, station), holdKey(date, station)}
	if err := setScript.Run(ctx, c.client, keys, payload, c.ttl.Milliseconds()).Err(); err != nil {
		return errs.Wrap(err, "availability cache set")
	}
	return nil
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, date time.Time, station equipment.Station) error {
	keys := []string{Key(date, station), holdKey(date, station)}
	if err := invalidateScript.Run(ctx, c.client, keys, c.invalidationHold().Milliseconds()).Err(); err != nil {
		return errs.Wrap(err, "availability cache invalidate")
	}
	return nil
}

// NoopCache is used when Redis is disabled; every read misses.
type NoopCache struct{}

func (NoopCache) Get(context.Context, time.Time, equipment.Station) ([]availability.Occupancy, bool, error) {
	return nil, false, nil
}

func (NoopCache) Set(context.Context, time.Time, equipment.Station, []availability.Occupancy) error {
	return nil
}

func (NoopCache) Invalidate(context.Context, time.Time, equipment.Station) error {
	return nil
}
