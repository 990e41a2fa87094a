package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/docpoint/doctor-scheduler/internal/models"
)

const locationTTL = time.Hour

// NewClient connects to Redis, or returns nil when no address is
// configured. A nil client just means every location read hits Postgres.
func NewClient(addr string) *redis.Client {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", addr).
			Msg("redis unreachable, location cache disabled")
		return nil
	}

	return rdb
}

// LocationCache serves the city/district directory from Redis with a
// Postgres fallback. Cache failures degrade to DB reads, never to errors.
type LocationCache struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewLocationCache(db *gorm.DB, rdb *redis.Client) *LocationCache {
	return &LocationCache{db: db, rdb: rdb}
}

func (c *LocationCache) Cities(ctx context.Context) ([]models.City, error) {
	var cities []models.City

	if c.fetch(ctx, "locations:cities", &cities) {
		return cities, nil
	}

	if err := c.db.WithContext(ctx).
		Order("name ASC").
		Find(&cities).Error; err != nil {
		return nil, err
	}

	c.put(ctx, "locations:cities", cities)
	return cities, nil
}

func (c *LocationCache) Districts(ctx context.Context, cityCode string) ([]models.District, error) {
	key := "locations:districts:" + cityCode

	var districts []models.District
	if c.fetch(ctx, key, &districts) {
		return districts, nil
	}

	if err := c.db.WithContext(ctx).
		Where("city_code = ?", cityCode).
		Order("name ASC").
		Find(&districts).Error; err != nil {
		return nil, err
	}

	c.put(ctx, key, districts)
	return districts, nil
}

func (c *LocationCache) fetch(ctx context.Context, key string, dest any) bool {
	if c.rdb == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("redis get failed")
		}
		return false
	}

	return json.Unmarshal([]byte(raw), dest) == nil
}

func (c *LocationCache) put(ctx context.Context, key string, value any) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, raw, locationTTL).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis set failed")
	}
}
