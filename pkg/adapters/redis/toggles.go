// Package redis provides a Redis-backed toggle source, so the trace categories of every process
// sharing a Redis can be switched from one place.
package redis

import (
	"context"
	"fmt"

	"github.com/aretw0/nodetrace/pkg/domain"
	"github.com/mitchellh/mapstructure"
	backend "github.com/redis/go-redis/v9"
)

// DefaultKey is the hash holding the toggles.
const DefaultKey = "nodetrace:toggles"

// ToggleSource implements toggles.Source over a Redis hash whose fields are the
// ToggleSet keys ("enabled", "node_start", ...) and whose values are booleans.
type ToggleSource struct {
	client *backend.Client
	key    string
}

// Option configures a ToggleSource.
type Option func(*ToggleSource)

// WithKey sets the hash key.
func WithKey(key string) Option {
	return func(s *ToggleSource) {
		s.key = key
	}
}

// New creates a ToggleSource with its own client.
func New(address, password string, db int, opts ...Option) *ToggleSource {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a ToggleSource from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *ToggleSource {
	s := &ToggleSource{
		client: client,
		key:    DefaultKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the hash. Missing fields keep their default (enabled); unknown fields are ignored.
func (s *ToggleSource) Load(ctx context.Context) (domain.ToggleSet, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return domain.ToggleSet{}, fmt.Errorf("failed to read toggles from redis: %w", err)
	}

	ts := domain.DefaultToggles()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &ts,
	})
	if err != nil {
		return domain.ToggleSet{}, err
	}
	if err := dec.Decode(fields); err != nil {
		return domain.ToggleSet{}, fmt.Errorf("invalid toggles in %s: %w", s.key, err)
	}
	return ts, nil
}

// Save writes every switch of ts to the hash.
func (s *ToggleSource) Save(ctx context.Context, ts domain.ToggleSet) error {
	values := map[string]any{"enabled": ts.Enabled}
	for _, c := range domain.Categories() {
		values[string(c)] = ts.Flag(c)
	}
	if err := s.client.HSet(ctx, s.key, values).Err(); err != nil {
		return fmt.Errorf("failed to save toggles to redis: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (s *ToggleSource) Close() error {
	return s.client.Close()
}
