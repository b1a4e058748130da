package services

import (
	"math"
	"time"

	"github.com/quietfawn/nestling/internal/models"
)

// ManualBreastEntry models the start / end / duration triple of a manual
// breastfeeding form. The three fields form a cycle: editing any one
// re-derives exactly one other, so the two most recently touched values are
// always authoritative and the third is never independently settable.
type ManualBreastEntry struct {
	Side            string
	Start           time.Time
	End             time.Time
	DurationMinutes int
}

// WithStart moves the start and re-derives the end from the kept duration.
func (entry ManualBreastEntry) WithStart(newStart time.Time) ManualBreastEntry {
	entry.Start = newStart
	if entry.DurationMinutes >= 0 {
		entry.End = newStart.Add(time.Duration(entry.DurationMinutes) * time.Minute)
	}
	return entry
}

// WithEnd moves the end and re-derives the duration in whole minutes, but
// only when the delta is non-negative; an end before the start leaves the
// previous duration in place.
func (entry ManualBreastEntry) WithEnd(newEnd time.Time) ManualBreastEntry {
	entry.End = newEnd
	diffMinutes := int(math.Round(newEnd.Sub(entry.Start).Minutes()))
	if diffMinutes >= 0 {
		entry.DurationMinutes = diffMinutes
	}
	return entry
}

// WithDuration sets the spinner value, clamped at zero, and re-derives the
// end from start + duration.
func (entry ManualBreastEntry) WithDuration(minutes int) ManualBreastEntry {
	if minutes < 0 {
		minutes = 0
	}
	entry.DurationMinutes = minutes
	entry.End = entry.Start.Add(time.Duration(minutes) * time.Minute)
	return entry
}

// Record flushes the entry to a log record. The (start,end) delta wins over
// the spinner whenever the end is after the start; the chosen side carries
// the full duration and the record is flagged as a manual entry.
func (entry ManualBreastEntry) Record(familyID string, deviceID string) models.LogRecord {
	durationSec := float64(entry.DurationMinutes) * 60
	if entry.End.After(entry.Start) {
		durationSec = entry.End.Sub(entry.Start).Seconds()
	}

	left, right := 0.0, 0.0
	lastSide := models.SideRightShort
	if entry.Side == TimerSideLeft {
		left = durationSec
		lastSide = models.SideLeftShort
	} else {
		right = durationSec
	}

	return models.LogRecord{
		FamilyID:      familyID,
		DeviceID:      deviceID,
		Type:          models.TypeFeeding,
		SubType:       models.SubTypeBreast,
		Timestamp:     entry.Start.UTC(),
		LeftDuration:  left,
		RightDuration: right,
		TotalDuration: durationSec,
		LastSide:      lastSide,
		Manual:        true,
	}
}

// SleepRecordFromRange computes a sleep record from a manual start/end pair,
// rounding to whole minutes. An end at or before the start yields no record
// at all rather than an error: the save is silently refused before any
// remote call.
func SleepRecordFromRange(familyID string, deviceID string, start time.Time, end time.Time) (models.LogRecord, bool) {
	diffMinutes := int(math.Round(end.Sub(start).Minutes()))
	if diffMinutes <= 0 {
		return models.LogRecord{}, false
	}

	return models.LogRecord{
		FamilyID:  familyID,
		DeviceID:  deviceID,
		Type:      models.TypeSleep,
		Timestamp: start.UTC(),
		Duration:  diffMinutes,
	}, true
}
