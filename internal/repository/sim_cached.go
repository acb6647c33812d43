package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/model"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/logger"
)

// AvailableSimsKey holds the JSON snapshot of available listings.
const AvailableSimsKey = "sims:available"

// CachedSimRepository puts a Redis cache-aside in front of ListAvailable. Any
// cache failure falls through to the underlying store.
type CachedSimRepository struct {
	SimRepository
	cache *redis.Client
	ttl   time.Duration

	storeLoads atomic.Int64
}

func NewCachedSimRepository(inner SimRepository, cache *redis.Client, ttl time.Duration) *CachedSimRepository {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CachedSimRepository{SimRepository: inner, cache: cache, ttl: ttl}
}

func (r *CachedSimRepository) ListAvailable(ctx context.Context) ([]*model.Sim, error) {
	if data, err := r.cache.Get(ctx, AvailableSimsKey).Bytes(); err == nil {
		var out []*model.Sim
		if uErr := json.Unmarshal(data, &out); uErr == nil {
			return out, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		logger.Warn("sim cache read failed", zap.Error(err))
	}

	r.storeLoads.Add(1)
	sims, err := r.SimRepository.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(sims); err == nil {
		if err := r.cache.Set(ctx, AvailableSimsKey, payload, r.ttl).Err(); err != nil {
			logger.Warn("sim cache write failed", zap.Error(err))
		}
	}
	return sims, nil
}

// Seed writes through and drops the cached snapshot.
func (r *CachedSimRepository) Seed(ctx context.Context, sims []*model.Sim) error {
	if err := r.SimRepository.Seed(ctx, sims); err != nil {
		return err
	}
	return r.Invalidate(ctx)
}

// Invalidate drops the cached snapshot.
func (r *CachedSimRepository) Invalidate(ctx context.Context) error {
	return r.cache.Del(ctx, AvailableSimsKey).Err()
}

// StoreLoads reports how many times the underlying store was queried.
func (r *CachedSimRepository) StoreLoads() int64 { return r.storeLoads.Load() }
