// ABOUTME: Store interface and JSON helpers for key-value persistence
// ABOUTME: Defines the minimal get/set contract all StoryWizard state flows through

package kv

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned when no value is stored under the requested key.
var ErrNotFound = errors.New("key not found")

// Store is the minimal durable key-value contract. Set replaces any prior
// value for the key and is synchronous from the caller's perspective.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// GetJSON decodes the value stored under key into v. When the key is absent
// or the stored value does not decode, v is left set to fallback and no error
// is returned; callers always receive a usable value.
func GetJSON(ctx context.Context, s Store, key string, v any, fallback func()) error {
	data, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			fallback()
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		fallback()
		return nil
	}
	return nil
}

// SetJSON encodes v and persists it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, data)
}
