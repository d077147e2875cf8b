package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/models"
)

var ErrCartNotFound = errors.New("cart not found")

// CartStorage is the key-value medium a cart persists to. One serialized
// record per storage key; the record must round-trip losslessly.
type CartStorage interface {
	Load(ctx context.Context, key string) (*models.CartState, error)
	Save(ctx context.Context, key string, state *models.CartState) error
	Delete(ctx context.Context, key string) error
}

type RedisCartStorage struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartStorage(client *redis.Client, ttl time.Duration) *RedisCartStorage {
	return &RedisCartStorage{client: client, ttl: ttl}
}

func (s *RedisCartStorage) Load(ctx context.Context, key string) (*models.CartState, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}

	var state models.CartState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RedisCartStorage) Save(ctx context.Context, key string, state *models.CartState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, raw, s.ttl).Err()
}

func (s *RedisCartStorage) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// MemoryCartStorage keeps serialized cart records in process memory. It backs
// the cart when Redis is not configured, and the tests.
type MemoryCartStorage struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryCartStorage() *MemoryCartStorage {
	return &MemoryCartStorage{records: make(map[string][]byte)}
}

func (s *MemoryCartStorage) Load(ctx context.Context, key string) (*models.CartState, error) {
	s.mu.RLock()
	raw, ok := s.records[key]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrCartNotFound
	}

	var state models.CartState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *MemoryCartStorage) Save(ctx context.Context, key string, state *models.CartState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.records[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryCartStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.records, key)
	s.mu.Unlock()
	return nil
}
