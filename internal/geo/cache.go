package geo

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedGeocoder fronts another geocoder with a Redis cache. Geocoding the
// same address twice is common (restaurants recur across orders) and the
// upstream service is rate limited, so hits are worth keeping around.
// Cache failures fall through to the inner geocoder.
type CachedGeocoder struct {
	inner  Geocoder
	client *redis.Client
	ttl    time.Duration
}

func NewCachedGeocoder(inner Geocoder, client *redis.Client, ttl time.Duration) *CachedGeocoder {
	return &CachedGeocoder{inner: inner, client: client, ttl: ttl}
}

func (c *CachedGeocoder) Geocode(ctx context.Context, address string) (*Place, error) {
	key := cacheKey(address)

	if data, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var place Place
		if err := json.Unmarshal(data, &place); err == nil {
			return &place, nil
		}
	}

	place, err := c.inner.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(place); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			log.Printf("geocode cache set failed for %q: %v", address, err)
		}
	}
	return place, nil
}

func cacheKey(address string) string {
	return "geocode:" + strings.ToLower(strings.Join(strings.Fields(address), " "))
}
