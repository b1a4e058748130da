package services

import (
	"testing"
	"time"

	"github.com/quietfawn/nestling/internal/models"
)

func TestManualEntryWithStartKeepsDuration(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	entry := ManualBreastEntry{Side: TimerSideLeft, DurationMinutes: 15}

	entry = entry.WithStart(start)

	expectedEnd := time.Date(2024, 3, 1, 10, 15, 0, 0, time.UTC)
	if !entry.End.Equal(expectedEnd) {
		t.Fatalf("expected end %v, got %v", expectedEnd, entry.End)
	}
	if entry.DurationMinutes != 15 {
		t.Fatalf("expected duration 15, got %d", entry.DurationMinutes)
	}
}

func TestManualEntryWithEndDerivesDuration(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	entry := ManualBreastEntry{Side: TimerSideLeft, Start: start, DurationMinutes: 15}

	entry = entry.WithEnd(start.Add(20 * time.Minute))

	if entry.DurationMinutes != 20 {
		t.Fatalf("expected duration 20, got %d", entry.DurationMinutes)
	}
}

func TestManualEntryWithEndBeforeStartKeepsDuration(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	entry := ManualBreastEntry{Side: TimerSideLeft, Start: start, DurationMinutes: 15}

	entry = entry.WithEnd(start.Add(-5 * time.Minute))

	if entry.DurationMinutes != 15 {
		t.Fatalf("expected duration kept at 15, got %d", entry.DurationMinutes)
	}
	if !entry.End.Equal(start.Add(-5 * time.Minute)) {
		t.Fatalf("expected end still moved, got %v", entry.End)
	}
}

func TestManualEntryWithDurationClampsAtZero(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	entry := ManualBreastEntry{Side: TimerSideLeft, Start: start, DurationMinutes: 15}

	entry = entry.WithDuration(-3)

	if entry.DurationMinutes != 0 {
		t.Fatalf("expected duration clamped to 0, got %d", entry.DurationMinutes)
	}
	if !entry.End.Equal(start) {
		t.Fatalf("expected end back at start, got %v", entry.End)
	}
}

func TestManualEntryRecordPrefersRangeOverSpinner(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	entry := ManualBreastEntry{
		Side:            TimerSideRight,
		Start:           start,
		End:             start.Add(12 * time.Minute),
		DurationMinutes: 99,
	}

	record := entry.Record("fam", "dev")

	if record.TotalDuration != 720 {
		t.Fatalf("expected total duration 720, got %v", record.TotalDuration)
	}
	if record.RightDuration != 720 || record.LeftDuration != 0 {
		t.Fatalf("expected full time on right side, got %v/%v", record.LeftDuration, record.RightDuration)
	}
	if record.LastSide != models.SideRightShort {
		t.Fatalf("expected last side R, got %q", record.LastSide)
	}
	if !record.Manual {
		t.Fatalf("expected manual flag set")
	}
}

func TestManualEntryRecordFallsBackToSpinner(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	entry := ManualBreastEntry{
		Side:            TimerSideLeft,
		Start:           start,
		End:             start, // no usable range
		DurationMinutes: 25,
	}

	record := entry.Record("fam", "dev")

	if record.TotalDuration != 1500 {
		t.Fatalf("expected total duration 1500, got %v", record.TotalDuration)
	}
	if record.LeftDuration != 1500 {
		t.Fatalf("expected left duration 1500, got %v", record.LeftDuration)
	}
	if record.LastSide != models.SideLeftShort {
		t.Fatalf("expected last side L, got %q", record.LastSide)
	}
	if !record.Timestamp.Equal(start) {
		t.Fatalf("expected timestamp %v, got %v", start, record.Timestamp)
	}
}

func TestSleepRecordFromRange(t *testing.T) {
	start := time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC)

	record, ok := SleepRecordFromRange("fam", "dev", start, start.Add(45*time.Minute))
	if !ok {
		t.Fatalf("expected a record for a positive range")
	}
	if record.Type != models.TypeSleep {
		t.Fatalf("expected sleep record, got %s", record.Type)
	}
	if record.Duration != 45 {
		t.Fatalf("expected duration 45, got %d", record.Duration)
	}
	if !record.Timestamp.Equal(start) {
		t.Fatalf("expected timestamp %v, got %v", start, record.Timestamp)
	}
}

func TestSleepRecordFromRangeRefusesEmptyRange(t *testing.T) {
	start := time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC)

	if _, ok := SleepRecordFromRange("fam", "dev", start, start); ok {
		t.Fatalf("expected no record for a zero-length range")
	}
	if _, ok := SleepRecordFromRange("fam", "dev", start, start.Add(-time.Minute)); ok {
		t.Fatalf("expected no record for a negative range")
	}
}
