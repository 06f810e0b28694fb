package weather

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/khoulihan/weatherfetch/internal/cache"
)

// Fetcher performs one round trip to the weather provider for the
// given query, returning the raw response body.
type Fetcher interface {
	Fetch(ctx context.Context, lat, lon, units, apiKey string) ([]byte, error)
}

// Cache is the contract the on-disk response cache must satisfy.
type Cache interface {
	Lookup(key string, maxAge time.Duration) ([]byte, error)
	Save(key string, payload []byte) error
}

// Service orchestrates the cache, the fetcher and the normalizer. It
// is the single entry point for retrieving weather data.
type Service struct {
	fetcher       Fetcher
	cache         Cache
	apiKey        string
	cacheDuration time.Duration
}

// NewService creates a new Service.
func NewService(fetcher Fetcher, c Cache, apiKey string, cacheDuration time.Duration) *Service {
	return &Service{
		fetcher:       fetcher,
		cache:         c,
		apiKey:        apiKey,
		cacheDuration: cacheDuration,
	}
}

// GetWeather returns the normalized current weather for the given
// coordinates and unit system. A fresh-enough cached response is used
// when available; otherwise one fetch is performed and its raw result
// cached. Any failure surfaces as an *APIError wrapping the cause;
// there is no retry and never a partial report.
func (s *Service) GetWeather(ctx context.Context, lat, lon, units string) (*Report, error) {
	key := cache.Key(lat, lon, units)

	raw, err := s.cache.Lookup(key, s.cacheDuration)
	if err == nil {
		report, err := Normalize(raw)
		if err != nil {
			return nil, &APIError{Message: "cached weather data is unusable", Err: err}
		}
		return report, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		log.Printf("WARN: cache lookup failed, fetching fresh data: %v", err)
	}

	raw, err = s.fetcher.Fetch(ctx, lat, lon, units, s.apiKey)
	if err != nil {
		return nil, &APIError{Message: "failed to retrieve weather data from API", Err: err}
	}

	// A stale cache is acceptable; losing the freshly fetched report
	// to the user is not.
	if err := s.cache.Save(key, raw); err != nil {
		log.Printf("WARN: failed to cache API response: %v", err)
	}

	report, err := Normalize(raw)
	if err != nil {
		return nil, &APIError{Message: "failed to interpret weather data from API", Err: err}
	}
	return report, nil
}
