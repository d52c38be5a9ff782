// README: Memoizing lookup cache with per-key in-flight de-duplication.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const (
	cityCacheKeyPrefix = "geo:cities:"
	// City lists change rarely; a week keeps the shared cache warm without
	// holding stale data forever.
	cityCacheTTL = 7 * 24 * time.Hour
)

// Cache memoizes country and city lookups for the process lifetime. Concurrent
// requests for the same country code share one underlying fetch; a failed fetch
// leaves the key absent so the next request retries from scratch. An optional
// Redis client adds a shared second-level city cache.
type Cache struct {
	fetcher Fetcher
	redis   *redis.Client // nil disables the L2 cache
	group   singleflight.Group

	mu        sync.Mutex
	countries []Country
	cities    map[string][]City
}

func NewCache(fetcher Fetcher, redisClient *redis.Client) *Cache {
	return &Cache{
		fetcher: fetcher,
		redis:   redisClient,
		cities:  map[string][]City{},
	}
}

// Countries returns the country list, fetched once and sorted case-insensitively
// by display name.
func (c *Cache) Countries(ctx context.Context) ([]Country, error) {
	c.mu.Lock()
	if c.countries != nil {
		cached := c.countries
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do("countries", func() (any, error) {
		list, err := c.fetcher.FetchCountries(ctx)
		if err != nil {
			return nil, fmt.Errorf("load countries: %w", err)
		}
		// Non-nil even when empty: the nil check above means "not fetched yet",
		// so an upstream with zero rows still counts as fetched once.
		if list == nil {
			list = []Country{}
		}
		sort.SliceStable(list, func(i, j int) bool {
			return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
		})
		c.mu.Lock()
		c.countries = list
		c.mu.Unlock()
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Country), nil
}

// Cities returns the city list for a country code. "Already cached" means the
// key is present with a non-pending result; in-flight lookups for the same code
// are coalesced so both callers observe the same list.
func (c *Cache) Cities(ctx context.Context, countryCode string) ([]City, error) {
	c.mu.Lock()
	if cached, ok := c.cities[countryCode]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do("cities:"+countryCode, func() (any, error) {
		list, err := c.loadCities(ctx, countryCode)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.cities[countryCode] = list
		c.mu.Unlock()
		return list, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load cities for %s: %w", countryCode, err)
	}
	return v.([]City), nil
}

func (c *Cache) loadCities(ctx context.Context, countryCode string) ([]City, error) {
	if list, ok := c.citiesFromRedis(ctx, countryCode); ok {
		return list, nil
	}

	list, err := c.fetcher.FetchCities(ctx, countryCode)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	})

	c.citiesToRedis(ctx, countryCode, list)
	return list, nil
}

func (c *Cache) citiesFromRedis(ctx context.Context, countryCode string) ([]City, bool) {
	if c.redis == nil {
		return nil, false
	}
	raw, err := c.redis.Get(ctx, cityCacheKeyPrefix+countryCode).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("geo cache: redis get %s: %v", countryCode, err)
		return nil, false
	}
	var list []City
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		log.Printf("geo cache: discarding bad redis entry for %s: %v", countryCode, err)
		return nil, false
	}
	return list, true
}

func (c *Cache) citiesToRedis(ctx context.Context, countryCode string, list []City) {
	if c.redis == nil {
		return
	}
	data, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, cityCacheKeyPrefix+countryCode, data, cityCacheTTL).Err(); err != nil {
		log.Printf("geo cache: redis set %s: %v", countryCode, err)
	}
}
