// integration/fallback_store.go
package integration

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// FallbackStore provides a resilient record store with local cache
type FallbackStore struct {
	redisStore  *RedisStore
	localCache  map[string]*Record
	cacheMutex  sync.RWMutex
	healthCheck func() bool
	logger      *zap.Logger
}

// NewFallbackStore creates a record store with Redis and local fallback
func NewFallbackStore(redisClient redis.UniversalClient, prefix string, healthCheck func() bool, logger *zap.Logger) *FallbackStore {
	return &FallbackStore{
		redisStore:  NewRedisStore(redisClient, prefix),
		localCache:  make(map[string]*Record),
		healthCheck: healthCheck,
		logger:      logger,
	}
}

// SaveRecord stores a record in Redis and local cache
func (s *FallbackStore) SaveRecord(userID string, record *Record) error {
	s.cacheMutex.Lock()
	s.localCache[userID] = record
	s.cacheMutex.Unlock()

	// If Redis is healthy, update it too
	if s.healthCheck() {
		if err := s.redisStore.SaveRecord(userID, record); err != nil {
			s.logger.Warn("failed to save record to redis", zap.String("user_id", userID), zap.Error(err))
			// Continue with just local cache
		}
	}

	return nil
}

// GetRecord retrieves a record, trying Redis first, falling back to local cache
func (s *FallbackStore) GetRecord(userID string) (*Record, error) {
	if s.healthCheck() {
		record, err := s.redisStore.GetRecord(userID)
		if err == nil {
			s.cacheMutex.Lock()
			s.localCache[userID] = record
			s.cacheMutex.Unlock()
			return record, nil
		}
		if err == ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		// Redis failed, log and fall back to cache
		s.logger.Warn("failed to get record from redis", zap.String("user_id", userID), zap.Error(err))
	}

	s.cacheMutex.RLock()
	record, exists := s.localCache[userID]
	s.cacheMutex.RUnlock()

	if exists {
		return record, nil
	}

	return nil, ErrRecordNotFound
}

// DeleteRecord removes a record from both stores
func (s *FallbackStore) DeleteRecord(userID string) error {
	s.cacheMutex.Lock()
	delete(s.localCache, userID)
	s.cacheMutex.Unlock()

	if s.healthCheck() {
		if err := s.redisStore.DeleteRecord(userID); err != nil {
			s.logger.Warn("failed to delete record from redis", zap.String("user_id", userID), zap.Error(err))
			// Continue with just local removal
		}
	}

	return nil
}

// StartReplicationRoutine begins background sync of local cache to Redis
func (s *FallbackStore) StartReplicationRoutine(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !s.healthCheck() {
					continue
				}

				s.cacheMutex.RLock()
				recordsToReplicate := make(map[string]*Record, len(s.localCache))
				for id, record := range s.localCache {
					recordsToReplicate[id] = record
				}
				s.cacheMutex.RUnlock()

				for id, record := range recordsToReplicate {
					if err := s.redisStore.SaveRecord(id, record); err != nil {
						s.logger.Warn("record replication failed", zap.String("user_id", id), zap.Error(err))
					}
				}
			}
		}
	}()
}
