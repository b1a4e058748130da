// Package gateway is the sync boundary of the application: an append,
// live-snapshot, and delete store over the shared family log. The rest of
// the code treats it as opaque; everything that reads the log reads the
// latest snapshot it serves, never an incrementally merged view.
package gateway

import (
	"errors"

	"github.com/quietfawn/nestling/internal/models"
)

var ErrRecordNotFound = errors.New("log record not found")

// SnapshotFunc receives the full family-filtered record list, newest first.
// Each call replaces whatever the subscriber held before.
type SnapshotFunc func(records []models.LogRecord)

// Gateway is the sync-store contract. All operations may fail and surface a
// distinguishable error; none of them panic past the call boundary.
type Gateway interface {
	Append(record *models.LogRecord) (string, error)
	Query(familyID string) ([]models.LogRecord, error)
	Delete(recordID string) error
	Subscribe(familyID string, onSnapshot SnapshotFunc) (unsubscribe func())
}
