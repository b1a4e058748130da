package services

import (
	"fmt"
	"log"
	"time"

	"github.com/quietfawn/nestling/internal/gateway"
	"github.com/quietfawn/nestling/internal/models"
)

type DedupService struct {
	store gateway.Gateway
}

func NewDedupService(store gateway.Gateway) *DedupService {
	return &DedupService{store: store}
}

// Fingerprint derives the content identity used for duplicate detection.
// It deliberately ignores id, userId, and notes: two records that agree on
// type, timestamp, subtype, amount, duration, and side are duplicates even
// if different devices wrote them.
func Fingerprint(record models.LogRecord) string {
	return fmt.Sprintf("%s|%s|%s|%v|%v|%s",
		record.Type,
		record.Timestamp.UTC().Format(time.RFC3339),
		record.SubType,
		record.Amount,
		record.TotalDuration,
		record.Side,
	)
}

// RemoveDuplicates scans the family's records in retrieval order, keeps the
// first record per distinct fingerprint, and deletes the rest one at a time.
// Zero duplicates is a normal result, not an error.
func (service *DedupService) RemoveDuplicates(familyID string) (int, error) {
	records, err := service.store.Query(familyID)
	if err != nil {
		return 0, fmt.Errorf("fetch logs for deduplication: %w", err)
	}

	seen := make(map[string]struct{}, len(records))
	duplicateIDs := make([]string, 0)
	for _, record := range records {
		fingerprint := Fingerprint(record)
		if _, exists := seen[fingerprint]; exists {
			duplicateIDs = append(duplicateIDs, record.ID)
			continue
		}
		seen[fingerprint] = struct{}{}
	}

	log.Printf("dedup: found %d duplicates out of %d logs for family %s", len(duplicateIDs), len(records), familyID)

	deleted := 0
	for _, recordID := range duplicateIDs {
		if err := service.store.Delete(recordID); err != nil {
			return deleted, fmt.Errorf("delete duplicate %s: %w", recordID, err)
		}
		deleted++
	}
	return deleted, nil
}
