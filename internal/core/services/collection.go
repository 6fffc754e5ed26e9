package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/lumina-app/lumina-engine/internal/core/domain"
)

// loadCollection reads and decodes one persisted collection. A missing key
// or malformed blob degrades to the zero value: the journal must keep
// working even if stored data was hand-edited or truncated.
func loadCollection[T any](ctx context.Context, store domain.BlobStore, key string) (T, error) {
	var out T

	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return out, err
	}
	if !ok {
		return out, nil
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("[STORE] Corrupted blob under %q, starting empty: %v", key, err)
		var zero T
		return zero, nil
	}
	return out, nil
}

// saveCollection serializes and writes through one collection. Writes are
// whole-blob and synchronous; there is no batching.
func saveCollection(ctx context.Context, store domain.BlobStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, raw)
}
