// integration/redis_store.go
package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrRecordNotFound indicates no integration record exists for the user.
var ErrRecordNotFound = errors.New("integration record not found")

// RedisStore implements Store using Redis
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a new Redis-backed integration record store
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

// key generates the Redis key for a user's integration record
func (s *RedisStore) key(userID string) string {
	return fmt.Sprintf("%s:integration:%s", s.prefix, userID)
}

// SaveRecord stores an integration record for a user
func (s *RedisStore) SaveRecord(userID string, record *Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	// Keep records around past token expiry; the refresh token outlives
	// the access token and a disconnected record is still meaningful.
	ttl := time.Until(record.TokenExpiresAt) + (90 * 24 * time.Hour)

	err = s.client.Set(context.Background(), s.key(userID), data, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	return nil
}

// GetRecord retrieves the integration record for a user
func (s *RedisStore) GetRecord(userID string) (*Record, error) {
	data, err := s.client.Get(context.Background(), s.key(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return &record, nil
}

// DeleteRecord removes a user's integration record
func (s *RedisStore) DeleteRecord(userID string) error {
	err := s.client.Del(context.Background(), s.key(userID)).Err()
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	return nil
}
