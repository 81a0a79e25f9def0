package progress

import (
	"context"
	"fmt"
)

// StorageKey is the single well-known key the aggregate lives under.
const StorageKey = "user_progress"

// Blobs is the key-value storage surface the store needs. Implemented by
// storage.DB; tests supply an in-memory map.
type Blobs interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store loads and saves the UserProgress aggregate. Load never fails.
// Save reports failures but callers treat them as non-fatal; the
// in-memory aggregate stays authoritative for the running session.
type Store struct {
	blobs Blobs
}

// NewStore creates a Store over the given blob storage.
func NewStore(blobs Blobs) *Store {
	return &Store{blobs: blobs}
}

// Load reads the persisted aggregate to a usable value. A missing key,
// a read error, or a corrupt payload all yield the default aggregate.
func (s *Store) Load(ctx context.Context) *UserProgress {
	raw, ok, err := s.blobs.Get(ctx, StorageKey)
	if err != nil || !ok {
		return New()
	}
	return Decode(raw)
}

// Save serializes the full aggregate and overwrites the previous value
// (last writer wins, no merge).
func (s *Store) Save(ctx context.Context, p *UserProgress) error {
	raw, err := Encode(p)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := s.blobs.Set(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// Reset deletes the persisted aggregate.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.blobs.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}
