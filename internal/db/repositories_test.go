package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/quietfawn/nestling/internal/models"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return database
}

func TestLogRepositoryListOrder(t *testing.T) {
	repo := NewLogRepository(newTestDB(t))
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	for index, offset := range []int{0, 20, 10} {
		record := models.LogRecord{
			ID:        string(rune('a' + index)),
			FamilyID:  "fam",
			Type:      models.TypeDiaper,
			Status:    models.DiaperWet,
			Timestamp: base.Add(time.Duration(offset) * time.Minute),
		}
		if err := repo.Create(&record); err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
	}

	records, err := repo.ListByFamily("fam")
	if err != nil {
		t.Fatalf("ListByFamily() unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].ID != "b" || records[1].ID != "c" || records[2].ID != "a" {
		t.Fatalf("expected newest-first order b,c,a, got %s,%s,%s", records[0].ID, records[1].ID, records[2].ID)
	}
}

func TestLogRepositoryFindByID(t *testing.T) {
	repo := NewLogRepository(newTestDB(t))

	if _, found, err := repo.FindByID("nope"); err != nil || found {
		t.Fatalf("expected miss without error, found=%v err=%v", found, err)
	}

	record := models.LogRecord{ID: "r1", FamilyID: "fam", Type: models.TypeSleep, Duration: 30, Timestamp: time.Now()}
	if err := repo.Create(&record); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	fetched, found, err := repo.FindByID("r1")
	if err != nil || !found {
		t.Fatalf("expected hit, found=%v err=%v", found, err)
	}
	if fetched.FamilyID != "fam" || fetched.Duration != 30 {
		t.Fatalf("unexpected record: %+v", fetched)
	}

	if err := repo.DeleteByID("r1"); err != nil {
		t.Fatalf("DeleteByID() unexpected error: %v", err)
	}
	if _, found, _ := repo.FindByID("r1"); found {
		t.Fatalf("expected record gone after delete")
	}
}

func TestPreferenceRepositoryUpsert(t *testing.T) {
	repo := NewPreferenceRepository(newTestDB(t))

	if _, found, err := repo.Get("dev", "volumeUnit"); err != nil || found {
		t.Fatalf("expected miss on empty store, found=%v err=%v", found, err)
	}

	if err := repo.Set("dev", "volumeUnit", "ml"); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}
	if err := repo.Set("dev", "volumeUnit", "oz"); err != nil {
		t.Fatalf("Set() on existing key unexpected error: %v", err)
	}

	value, found, err := repo.Get("dev", "volumeUnit")
	if err != nil || !found {
		t.Fatalf("expected hit, found=%v err=%v", found, err)
	}
	if value != "oz" {
		t.Fatalf("expected last write to win, got %q", value)
	}

	if err := repo.Set("dev", "darkMode", "true"); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}
	values, err := repo.ListByDevice("dev")
	if err != nil {
		t.Fatalf("ListByDevice() unexpected error: %v", err)
	}
	if len(values) != 2 || values["darkMode"] != "true" {
		t.Fatalf("unexpected listing: %v", values)
	}

	// Another device's keys are invisible.
	other, err := repo.ListByDevice("other")
	if err != nil {
		t.Fatalf("ListByDevice() unexpected error: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected empty listing for other device, got %v", other)
	}
}

func TestInventoryRepositoryStoredFilter(t *testing.T) {
	repo := NewInventoryRepository(newTestDB(t))
	day := func(offset int) time.Time {
		return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}

	items := []models.InventoryItem{
		{ID: "i1", FamilyID: "fam", Volume: 90, PumpDate: day(2), FreezeDate: day(2), Status: models.InventoryStored},
		{ID: "i2", FamilyID: "fam", Volume: 120, PumpDate: day(0), FreezeDate: day(0), Status: models.InventoryStored},
		{ID: "i3", FamilyID: "fam", Volume: 100, PumpDate: day(1), FreezeDate: day(1), Status: models.InventoryThawed},
	}
	for index := range items {
		if err := repo.Create(&items[index]); err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
	}

	stored, err := repo.ListStoredByPumpDate("fam")
	if err != nil {
		t.Fatalf("ListStoredByPumpDate() unexpected error: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected 2 stored items, got %d", len(stored))
	}
	if stored[0].ID != "i2" || stored[1].ID != "i1" {
		t.Fatalf("expected pump-date order i2,i1, got %s,%s", stored[0].ID, stored[1].ID)
	}

	if err := repo.UpdateStatus("fam", "i2", models.InventoryThawed); err != nil {
		t.Fatalf("UpdateStatus() unexpected error: %v", err)
	}
	item, found, err := repo.FindByFamilyAndID("fam", "i2")
	if err != nil || !found {
		t.Fatalf("expected thawed item retained, found=%v err=%v", found, err)
	}
	if item.Status != models.InventoryThawed {
		t.Fatalf("expected status thawed, got %q", item.Status)
	}

	if err := repo.DeleteByFamilyAndID("fam", "i1"); err != nil {
		t.Fatalf("DeleteByFamilyAndID() unexpected error: %v", err)
	}
	if _, found, _ := repo.FindByFamilyAndID("fam", "i1"); found {
		t.Fatalf("expected deleted item gone")
	}
}
