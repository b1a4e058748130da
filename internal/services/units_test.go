package services

import (
	"math"
	"testing"
	"time"
)

func TestDisplayVolumeMillilitersRoundsToInteger(t *testing.T) {
	if got := DisplayVolume(150, UnitMilliliters); got != "150" {
		t.Fatalf("expected %q, got %q", "150", got)
	}
	if got := DisplayVolume(92.6, UnitMilliliters); got != "93" {
		t.Fatalf("expected %q, got %q", "93", got)
	}
}

func TestDisplayVolumeOuncesDropsTrailingZero(t *testing.T) {
	// 150 ml is 5.07 oz, which rounds down to 5.0 and displays bare.
	if got := DisplayVolume(150, UnitOunces); got != "5" {
		t.Fatalf("expected %q, got %q", "5", got)
	}
}

func TestDisplayVolumeOuncesKeepsHalfStep(t *testing.T) {
	// 160 ml is 5.41 oz, rounding to the nearest half gives 5.5.
	if got := DisplayVolume(160, UnitOunces); got != "5.5" {
		t.Fatalf("expected %q, got %q", "5.5", got)
	}
}

func TestAdjustVolumeMillilitersStepsByFive(t *testing.T) {
	if got := AdjustVolume(90, DirectionAdd, UnitMilliliters); got != 95 {
		t.Fatalf("expected 95, got %v", got)
	}
	if got := AdjustVolume(90, DirectionSubtract, UnitMilliliters); got != 85 {
		t.Fatalf("expected 85, got %v", got)
	}
}

func TestAdjustVolumeMillilitersFloorsAtZero(t *testing.T) {
	if got := AdjustVolume(3, DirectionSubtract, UnitMilliliters); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := AdjustVolume(0, DirectionSubtract, UnitMilliliters); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestAdjustVolumeOuncesSnapsToFiveMlGrid(t *testing.T) {
	// 90 ml is 3.04 oz; one half-ounce up lands on 105 ml, and back down
	// returns exactly to 90.
	up := AdjustVolume(90, DirectionAdd, UnitOunces)
	if up != 105 {
		t.Fatalf("expected 105, got %v", up)
	}
	down := AdjustVolume(up, DirectionSubtract, UnitOunces)
	if down != 90 {
		t.Fatalf("expected 90, got %v", down)
	}
}

func TestAdjustVolumeRoundTripNeverDrifts(t *testing.T) {
	for _, unit := range []string{UnitMilliliters, UnitOunces} {
		value := 7.0
		previous := value
		for step := 0; step < 10; step++ {
			value = AdjustVolume(AdjustVolume(value, DirectionAdd, unit), DirectionSubtract, unit)
			if math.Abs(value-previous) > 5 {
				t.Fatalf("unit %s: add/subtract pair moved %v -> %v, more than one grid step", unit, previous, value)
			}
			previous = value
		}
	}
}

func TestFormatDurationRendersMinutesAndSeconds(t *testing.T) {
	if got := FormatDuration(125.9); got != "02:05" {
		t.Fatalf("expected %q, got %q", "02:05", got)
	}
	if got := FormatDuration(59); got != "00:59" {
		t.Fatalf("expected %q, got %q", "00:59", got)
	}
}

func TestFormatMinutesCollapsesUnderAnHour(t *testing.T) {
	if got := FormatMinutes(45); got != "45m" {
		t.Fatalf("expected %q, got %q", "45m", got)
	}
	if got := FormatMinutes(125); got != "2h 5m" {
		t.Fatalf("expected %q, got %q", "2h 5m", got)
	}
}

func TestFormatTimeAgoBuckets(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	if got := FormatTimeAgo(time.Time{}, now); got != "-" {
		t.Fatalf("expected %q, got %q", "-", got)
	}
	if got := FormatTimeAgo(now.Add(-30*time.Second), now); got != "Just now" {
		t.Fatalf("expected %q, got %q", "Just now", got)
	}
	if got := FormatTimeAgo(now.Add(-5*time.Minute), now); got != "5 min ago" {
		t.Fatalf("expected %q, got %q", "5 min ago", got)
	}
	if got := FormatTimeAgo(now.Add(-130*time.Minute), now); got != "2 hrs 10 min ago" {
		t.Fatalf("expected %q, got %q", "2 hrs 10 min ago", got)
	}
}
