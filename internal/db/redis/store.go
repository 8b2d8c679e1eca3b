// Package redis implements db.Store via rueidis.
//
// Records live in one hash keyed by id; a companion list preserves insertion
// order. HSETNX gives create-if-absent semantics without a read-modify-write.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"

	"github.com/strdex/strdex/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds connection parameters for a Redis store.
type Config struct {
	Addrs     []string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
}

// Store implements db.Store via rueidis.
type Store struct {
	client   rueidis.Client
	hashKey  string
	orderKey string
}

// NewStore creates a Redis store via rueidis.
func NewStore(cfg Config) (*Store, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "strdex:"
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Store{
		client:   client,
		hashKey:  prefix + "records",
		orderKey: prefix + "records:order",
	}, nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	cmd := s.client.B().Ping().Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close shuts down the client.
func (s *Store) Close() {
	s.client.Close()
}

// WaitForReady polls Ping until the store responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for database: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// PutNX stores data under id, appending it to the insertion-order list.
func (s *Store) PutNX(ctx context.Context, id string, data []byte) error {
	cmd := s.client.B().Hsetnx().Key(s.hashKey).Field(id).Value(string(data)).Build()
	set, err := s.client.Do(ctx, cmd).AsBool()
	if err != nil {
		return &db.Error{Op: db.OpHSetNX, Err: err}
	}
	if !set {
		return db.ErrKeyExists
	}

	push := s.client.B().Rpush().Key(s.orderKey).Element(id).Build()
	if err := s.client.Do(ctx, push).Error(); err != nil {
		// Drop the hash entry again so a failed create leaves no record
		// behind: otherwise Get would find what List omits, and a retry
		// would hit ErrKeyExists. Best effort; List skips orphans anyway.
		del := s.client.B().Hdel().Key(s.hashKey).Field(id).Build()
		_ = s.client.Do(ctx, del).Error()
		return &db.Error{Op: db.OpRPush, Err: err}
	}
	return nil
}

// Get returns the record stored under id.
func (s *Store) Get(ctx context.Context, id string) ([]byte, error) {
	cmd := s.client.B().Hget().Key(s.hashKey).Field(id).Build()
	data, err := s.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, db.ErrKeyNotFound
		}
		return nil, &db.Error{Op: db.OpHGet, Err: err}
	}
	return data, nil
}

// Delete removes the record stored under id and its order-list entry.
func (s *Store) Delete(ctx context.Context, id string) error {
	cmd := s.client.B().Hdel().Key(s.hashKey).Field(id).Build()
	removed, err := s.client.Do(ctx, cmd).AsInt64()
	if err != nil {
		return &db.Error{Op: db.OpHDel, Err: err}
	}
	if removed == 0 {
		return db.ErrKeyNotFound
	}

	rem := s.client.B().Lrem().Key(s.orderKey).Count(0).Element(id).Build()
	if err := s.client.Do(ctx, rem).Error(); err != nil {
		return &db.Error{Op: db.OpLRem, Err: err}
	}
	return nil
}

// List returns all records in insertion order.
func (s *Store) List(ctx context.Context) ([][]byte, error) {
	cmd := s.client.B().Lrange().Key(s.orderKey).Start(0).Stop(-1).Build()
	ids, err := s.client.Do(ctx, cmd).AsStrSlice()
	if err != nil {
		return nil, &db.Error{Op: db.OpLRange, Err: err}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	get := s.client.B().Hmget().Key(s.hashKey).Field(ids...).Build()
	values, err := s.client.Do(ctx, get).ToArray()
	if err != nil {
		return nil, &db.Error{Op: db.OpHMGet, Err: err}
	}

	out := make([][]byte, 0, len(values))
	for _, v := range values {
		if v.IsNil() {
			// Order-list entry without a hash field: skip the orphan.
			continue
		}
		str, err := v.ToString()
		if err != nil {
			return nil, &db.Error{Op: db.OpHMGet, Err: err}
		}
		out = append(out, []byte(str))
	}
	return out, nil
}
