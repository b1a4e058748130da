package services

import (
	"fmt"

	"github.com/quietfawn/nestling/internal/gateway"
	"github.com/quietfawn/nestling/internal/models"
)

// memoryGateway is an in-memory stand-in for the sync store. Query returns
// records in insertion order, which doubles as the retrieval order the
// dedup scan sees.
type memoryGateway struct {
	records   []models.LogRecord
	nextID    int
	appendErr error
	deleteErr error
}

func (g *memoryGateway) Append(record *models.LogRecord) (string, error) {
	if g.appendErr != nil {
		return "", g.appendErr
	}
	if record.ID == "" {
		g.nextID++
		record.ID = fmt.Sprintf("mem-%d", g.nextID)
	}
	g.records = append(g.records, *record)
	return record.ID, nil
}

func (g *memoryGateway) Query(familyID string) ([]models.LogRecord, error) {
	matched := make([]models.LogRecord, 0, len(g.records))
	for _, record := range g.records {
		if record.FamilyID == familyID {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

func (g *memoryGateway) Delete(recordID string) error {
	if g.deleteErr != nil {
		return g.deleteErr
	}
	for index, record := range g.records {
		if record.ID == recordID {
			g.records = append(g.records[:index], g.records[index+1:]...)
			return nil
		}
	}
	return fmt.Errorf("record %s not found", recordID)
}

func (g *memoryGateway) Subscribe(familyID string, onSnapshot gateway.SnapshotFunc) func() {
	records, _ := g.Query(familyID)
	onSnapshot(records)
	return func() {}
}
