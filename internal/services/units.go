package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const MillilitersPerOunce = 29.5735

const (
	UnitMilliliters = "ml"
	UnitOunces      = "oz"
)

const (
	DirectionAdd      = "add"
	DirectionSubtract = "subtract"
)

// DisplayVolume renders a canonical milliliter value in the requested unit.
// Milliliters round to the nearest integer; ounces round to the nearest 0.5
// and drop a trailing ".0", so 150 ml shows as "5", not "5.0".
func DisplayVolume(ml float64, unit string) string {
	if unit == UnitOunces {
		oz := math.Round(ml/MillilitersPerOunce*2) / 2
		return strings.TrimSuffix(strconv.FormatFloat(oz, 'f', 1, 64), ".0")
	}
	return strconv.Itoa(int(math.Round(ml)))
}

func UnitLabel(unit string) string {
	if unit == UnitOunces {
		return "oz"
	}
	return "mL"
}

// AdjustVolume steps a milliliter value up or down by one grid step of the
// display unit: 5 ml, or 0.5 oz snapped back to the nearest 5 ml so the
// canonical value stays on a clean grid whichever unit drove the change.
func AdjustVolume(currentMl float64, direction string, unit string) float64 {
	if unit == UnitOunces {
		currentOz := currentMl / MillilitersPerOunce
		targetOz := currentOz + 0.5
		if direction == DirectionSubtract {
			targetOz = math.Max(0, currentOz-0.5)
		}
		return math.Round(targetOz*MillilitersPerOunce/5) * 5
	}

	if direction == DirectionSubtract {
		return math.Max(0, currentMl-5)
	}
	return currentMl + 5
}

// FormatDuration renders whole elapsed seconds as MM:SS.
func FormatDuration(seconds float64) string {
	rounded := int(math.Floor(seconds))
	return fmt.Sprintf("%02d:%02d", rounded/60, rounded%60)
}

// FormatMinutes renders a minute count as "Xh Ym", or just "Ym" under an hour.
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// FormatTimeAgo renders how long ago an instant was, in the coarse buckets
// the dashboard shows.
func FormatTimeAgo(at time.Time, now time.Time) string {
	if at.IsZero() {
		return "-"
	}

	diffMinutes := now.Sub(at).Minutes()
	if diffMinutes < 1 {
		return "Just now"
	}
	if diffMinutes < 60 {
		return fmt.Sprintf("%d min ago", int(diffMinutes))
	}
	return fmt.Sprintf("%d hrs %d min ago", int(diffMinutes)/60, int(diffMinutes)%60)
}
