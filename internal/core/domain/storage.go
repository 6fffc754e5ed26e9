package domain

import (
	"context"
	"fmt"
)

// Collection keys. The exact strings mirror the browser build's
// localStorage keys so imported backups land in the same slots.
const (
	KeyMoods    = "lumina_moods"
	KeySettings = "lumina_settings"
	KeyMeds     = "lumina_meds"
	KeyTasks    = "lumina_tasks"

	// KeyPrefix namespaces every key the engine owns, cached reports included.
	KeyPrefix = "lumina_"
)

// ReportKey is the composite key for a cached monthly AI report.
func ReportKey(userName string, year, month int) string {
	return fmt.Sprintf("lumina_report_%s_%d_%d", userName, year, month)
}

// BlobStore is the persistence port: a durable string-keyed store holding
// one JSON blob per logical collection. Writes are synchronous and
// whole-blob; there is no partial update.
type BlobStore interface {
	// Get retrieves the blob stored under key. The second return value is
	// false when the key has never been written.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set durably replaces the blob under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a single key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// DeleteAll wipes every key the engine owns. Used by clear-all.
	DeleteAll(ctx context.Context) error
}
