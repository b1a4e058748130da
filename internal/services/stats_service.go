package services

import (
	"fmt"
	"time"

	"github.com/quietfawn/nestling/internal/gateway"
	"github.com/quietfawn/nestling/internal/models"
)

type StatsService struct {
	store    gateway.Gateway
	location *time.Location
}

// StatsOverview carries the dashboard aggregates: the most recent event per
// category plus today's totals. Volumes stay in milliliters; the caller
// renders them in the device's unit.
type StatsOverview struct {
	LastFeeding    string `json:"lastFeeding"`
	LastDiaper     string `json:"lastDiaper"`
	LastSleep      string `json:"lastSleep"`
	LastPumping    string `json:"lastPumping"`
	LastBreastSide string `json:"lastBreastSide"`

	FeedingsToday      int     `json:"feedingsToday"`
	BreastMinutesToday int     `json:"breastMinutesToday"`
	BottleMlToday      float64 `json:"bottleMlToday"`
	PumpedMlToday      float64 `json:"pumpedMlToday"`
	DiapersToday       int     `json:"diapersToday"`
	SleepMinutesToday  int     `json:"sleepMinutesToday"`
}

func NewStatsService(store gateway.Gateway, location *time.Location) *StatsService {
	return &StatsService{store: store, location: location}
}

func (service *StatsService) Overview(familyID string, now time.Time) (StatsOverview, error) {
	records, err := service.store.Query(familyID)
	if err != nil {
		return StatsOverview{}, fmt.Errorf("fetch logs for stats: %w", err)
	}
	return BuildStatsOverview(records, now, service.location), nil
}

// BuildStatsOverview computes the dashboard numbers from a snapshot. Records
// arrive newest first, so the first match per category is the latest event.
func BuildStatsOverview(records []models.LogRecord, now time.Time, location *time.Location) StatsOverview {
	overview := StatsOverview{
		LastFeeding:    "-",
		LastDiaper:     "-",
		LastSleep:      "-",
		LastPumping:    "-",
		LastBreastSide: "-",
	}

	year, month, day := now.In(location).Date()
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	seenBreastFeed := false
	for _, record := range records {
		switch record.Type {
		case models.TypeFeeding:
			if overview.LastFeeding == "-" {
				overview.LastFeeding = FormatTimeAgo(record.Timestamp, now)
			}
			if !seenBreastFeed && record.SubType == models.SubTypeBreast {
				seenBreastFeed = true
				overview.LastBreastSide = lastBreastSideLabel(record)
			}
		case models.TypeDiaper:
			if overview.LastDiaper == "-" {
				overview.LastDiaper = FormatTimeAgo(record.Timestamp, now)
			}
		case models.TypeSleep:
			if overview.LastSleep == "-" {
				overview.LastSleep = FormatTimeAgo(record.Timestamp, now)
			}
		case models.TypePumping:
			if overview.LastPumping == "-" {
				overview.LastPumping = FormatTimeAgo(record.Timestamp, now)
			}
		}

		local := record.Timestamp.In(location)
		if local.Before(dayStart) || !local.Before(dayEnd) {
			continue
		}

		switch record.Type {
		case models.TypeFeeding:
			overview.FeedingsToday++
			if record.SubType == models.SubTypeBreast {
				overview.BreastMinutesToday += int(record.TotalDuration / 60)
			}
			if record.SubType == models.SubTypeBottle {
				overview.BottleMlToday += record.Amount
			}
		case models.TypePumping:
			overview.PumpedMlToday += record.Amount
		case models.TypeDiaper:
			overview.DiapersToday++
		case models.TypeSleep:
			overview.SleepMinutesToday += record.Duration
		}
	}

	return overview
}

// lastBreastSideLabel prefers the stored lastSide; older records without it
// fall back to comparing the per-side durations.
func lastBreastSideLabel(record models.LogRecord) string {
	switch record.LastSide {
	case models.SideLeftShort:
		return "Left"
	case models.SideRightShort:
		return "Right"
	}
	if record.LeftDuration > record.RightDuration {
		return "Left"
	}
	return "Right"
}
