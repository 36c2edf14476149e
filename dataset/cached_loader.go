package dataset

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"loan-advisor/domain"
	"loan-advisor/logger"
	"loan-advisor/repository"
)

const cacheKey = "dataset:records"

// CachedLoader keeps the parsed dataset in a cache for ttl. Sampling still
// happens per request downstream, so cached records do not fix the sample.
type CachedLoader struct {
	inner    Loader
	cache    repository.CacheRepository
	ttl      time.Duration
	observer FetchObserver
}

func NewCachedLoader(inner Loader, cache repository.CacheRepository, ttl time.Duration, observer FetchObserver) *CachedLoader {
	return &CachedLoader{inner: inner, cache: cache, ttl: ttl, observer: observer}
}

func (l *CachedLoader) Load(ctx context.Context) ([]domain.LoanRecord, error) {
	if records, ok := l.lookup(ctx); ok {
		if l.observer != nil {
			l.observer.ObserveFetch(OutcomeCacheHit, 0, 0)
		}
		return records, nil
	}

	records, err := l.inner.Load(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(records)
	if err != nil {
		logger.Warn(ctx, "failed to encode dataset for cache", slog.Any("error", err))
		return records, nil
	}
	if err := l.cache.Set(ctx, cacheKey, string(payload), l.ttl); err != nil {
		logger.Warn(ctx, "failed to cache dataset", slog.Any("error", err))
	}
	return records, nil
}

func (l *CachedLoader) lookup(ctx context.Context) ([]domain.LoanRecord, bool) {
	payload, ok, err := l.cache.Get(ctx, cacheKey)
	if err != nil {
		logger.Warn(ctx, "dataset cache unavailable, loading fresh", slog.Any("error", err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var records []domain.LoanRecord
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		logger.Warn(ctx, "discarding corrupt dataset cache entry", slog.Any("error", err))
		return nil, false
	}
	return records, true
}
