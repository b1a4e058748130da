package gateway

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/quietfawn/nestling/internal/db"
	"github.com/quietfawn/nestling/internal/models"
)

// Store is the SQLite-backed Gateway. Subscribers get the whole family
// partition pushed to them after every mutation; a slow snapshot only delays
// visibility, it never corrupts the subscriber's state.
type Store struct {
	logs *db.LogRepository

	mu          sync.Mutex
	subscribers map[int]subscription
	nextSubID   int
}

type subscription struct {
	familyID   string
	onSnapshot SnapshotFunc
}

func NewStore(logs *db.LogRepository) *Store {
	return &Store{
		logs:        logs,
		subscribers: make(map[int]subscription),
	}
}

func (store *Store) Append(record *models.LogRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	if err := store.logs.Create(record); err != nil {
		return "", fmt.Errorf("append log record: %w", err)
	}

	store.publish(record.FamilyID)
	return record.ID, nil
}

func (store *Store) Query(familyID string) ([]models.LogRecord, error) {
	records, err := store.logs.ListByFamily(familyID)
	if err != nil {
		return nil, fmt.Errorf("query log records: %w", err)
	}
	return records, nil
}

func (store *Store) Delete(recordID string) error {
	record, found, err := store.logs.FindByID(recordID)
	if err != nil {
		return fmt.Errorf("find log record: %w", err)
	}
	if !found {
		return ErrRecordNotFound
	}

	if err := store.logs.DeleteByID(recordID); err != nil {
		return fmt.Errorf("delete log record: %w", err)
	}

	store.publish(record.FamilyID)
	return nil
}

// Subscribe registers a snapshot listener for one family and immediately
// delivers the current snapshot, mirroring a live-query attach.
func (store *Store) Subscribe(familyID string, onSnapshot SnapshotFunc) func() {
	store.mu.Lock()
	id := store.nextSubID
	store.nextSubID++
	store.subscribers[id] = subscription{familyID: familyID, onSnapshot: onSnapshot}
	store.mu.Unlock()

	store.deliver(familyID, onSnapshot)

	return func() {
		store.mu.Lock()
		delete(store.subscribers, id)
		store.mu.Unlock()
	}
}

func (store *Store) publish(familyID string) {
	store.mu.Lock()
	listeners := make([]SnapshotFunc, 0, len(store.subscribers))
	for _, sub := range store.subscribers {
		if sub.familyID == familyID {
			listeners = append(listeners, sub.onSnapshot)
		}
	}
	store.mu.Unlock()

	for _, listener := range listeners {
		store.deliver(familyID, listener)
	}
}

func (store *Store) deliver(familyID string, onSnapshot SnapshotFunc) {
	records, err := store.logs.ListByFamily(familyID)
	if err != nil {
		log.Printf("snapshot query for family %s failed: %v", familyID, err)
		return
	}
	onSnapshot(records)
}
