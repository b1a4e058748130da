package services

import (
	"errors"

	"github.com/quietfawn/nestling/internal/models"
)

var (
	ErrUnknownLogType      = errors.New("unknown log type")
	ErrUnknownFeedingKind  = errors.New("unknown feeding kind")
	ErrZeroDurationFeed    = errors.New("breast feeding requires elapsed time")
	ErrNegativeAmount      = errors.New("amount must not be negative")
	ErrZeroSleepDuration   = errors.New("sleep requires a positive duration")
	ErrInvalidDiaperStatus = errors.New("invalid diaper status")
)

// ValidateLogRecord enforces the per-type required-field rules before a
// record is handed to the sync gateway. Presentation layers may pre-filter,
// but nothing reaches the store without passing here.
func ValidateLogRecord(record models.LogRecord) error {
	switch record.Type {
	case models.TypeFeeding:
		return validateFeeding(record)
	case models.TypePumping:
		if record.Amount < 0 {
			return ErrNegativeAmount
		}
		return nil
	case models.TypeDiaper:
		if !models.IsValidDiaperStatus(record.Status) {
			return ErrInvalidDiaperStatus
		}
		return nil
	case models.TypeSleep:
		if record.Duration <= 0 {
			return ErrZeroSleepDuration
		}
		return nil
	default:
		return ErrUnknownLogType
	}
}

func validateFeeding(record models.LogRecord) error {
	switch record.SubType {
	case models.SubTypeBreast:
		if record.TotalDuration <= 0 {
			return ErrZeroDurationFeed
		}
		return nil
	case models.SubTypeBottle:
		if record.Amount < 0 {
			return ErrNegativeAmount
		}
		return nil
	default:
		return ErrUnknownFeedingKind
	}
}

// NormalizeLogRecord re-derives totalDuration from the per-side durations so
// the total == left + right invariant holds for breast records that carry
// side splits.
func NormalizeLogRecord(record models.LogRecord) models.LogRecord {
	if record.Type == models.TypeFeeding && record.SubType == models.SubTypeBreast {
		if record.LeftDuration+record.RightDuration > 0 {
			record.TotalDuration = record.LeftDuration + record.RightDuration
		}
	}
	return record
}
