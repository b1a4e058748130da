package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/quietfawn/nestling/internal/models"
)

const (
	TimerSideLeft  = "left"
	TimerSideRight = "right"
)

var ErrEmptyTimerSession = errors.New("timer session has no elapsed time")

// TimerSession is the dual-sided breastfeeding stopwatch. At most one side
// accumulates at a time; LastTick lets a restored session account for the
// whole interval the process was away, as a single wall-clock delta rather
// than replayed ticks.
type TimerSession struct {
	ActiveTimer    string    `json:"activeTimer,omitempty"`
	LeftTimer      float64   `json:"leftTimer"`
	RightTimer     float64   `json:"rightTimer"`
	TimerStartTime time.Time `json:"timerStartTime"`
	LastActiveSide string    `json:"lastActiveSide,omitempty"`
	LastTick       time.Time `json:"lastTick"`
}

// Toggle starts, switches, or pauses accumulation for one side. The first
// toggle out of an all-zero idle session pins the nominal start time to now.
func (session *TimerSession) Toggle(side string, now time.Time) {
	if session.LeftTimer == 0 && session.RightTimer == 0 && session.ActiveTimer == "" {
		session.TimerStartTime = now
	}

	session.Advance(now)

	if side == TimerSideLeft {
		session.LastActiveSide = models.SideLeftShort
	} else {
		session.LastActiveSide = models.SideRightShort
	}

	if session.ActiveTimer == side {
		session.ActiveTimer = ""
		return
	}
	session.ActiveTimer = side
}

// Advance commits the wall-clock delta since the last tick to the active
// side. Arbitrarily large deltas are added in one step; a delayed or skipped
// tick loses nothing.
func (session *TimerSession) Advance(now time.Time) {
	if !session.LastTick.IsZero() && session.ActiveTimer != "" {
		delta := now.Sub(session.LastTick).Seconds()
		if delta > 0 {
			switch session.ActiveTimer {
			case TimerSideLeft:
				session.LeftTimer += delta
			case TimerSideRight:
				session.RightTimer += delta
			}
		}
	}
	session.LastTick = now
}

// EditStartTime backdates (or forward-dates) the nominal start, attributing
// the signed difference to the left side when it holds any time or both sides
// are zero, otherwise to the right. The adjusted side clamps at zero.
func (session *TimerSession) EditStartTime(newStart time.Time) {
	diffSeconds := session.TimerStartTime.Sub(newStart).Seconds()

	if session.LeftTimer > 0 || (session.LeftTimer == 0 && session.RightTimer == 0) {
		session.LeftTimer = clampSeconds(session.LeftTimer + diffSeconds)
	} else {
		session.RightTimer = clampSeconds(session.RightTimer + diffSeconds)
	}
	session.TimerStartTime = newStart
}

// Reset clears the stopwatch but keeps the nominal start time; the next
// toggle from zero re-pins it.
func (session *TimerSession) Reset() {
	session.ActiveTimer = ""
	session.LeftTimer = 0
	session.RightTimer = 0
	session.LastActiveSide = ""
}

// BuildRecord flushes the session into a breast-feeding log record stamped
// with the nominal start time. Saving an empty session is refused before any
// remote call is attempted.
func (session *TimerSession) BuildRecord(familyID string, deviceID string) (models.LogRecord, error) {
	if session.LeftTimer+session.RightTimer <= 0 {
		return models.LogRecord{}, ErrEmptyTimerSession
	}

	lastSide := session.LastActiveSide
	if lastSide == "" {
		lastSide = models.SideLeftShort
		if session.RightTimer > 0 {
			lastSide = models.SideRightShort
		}
	}

	return models.LogRecord{
		FamilyID:      familyID,
		DeviceID:      deviceID,
		Type:          models.TypeFeeding,
		SubType:       models.SubTypeBreast,
		Timestamp:     session.TimerStartTime.UTC(),
		LeftDuration:  session.LeftTimer,
		RightDuration: session.RightTimer,
		TotalDuration: session.LeftTimer + session.RightTimer,
		LastSide:      lastSide,
	}, nil
}

// Snapshot serializes the session for the preference store. It is called on
// every state change so a restore never loses more than the interval since
// the last mutation.
func (session TimerSession) Snapshot(now time.Time) ([]byte, error) {
	session.LastTick = now
	blob, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("marshal timer session: %w", err)
	}
	return blob, nil
}

// RestoreTimerSession deserializes a snapshot and reconciles elapsed time
// against the provided now: whatever side was active at the last known tick
// absorbs the full absence, the other side is untouched.
func RestoreTimerSession(blob []byte, now time.Time) (TimerSession, error) {
	session := TimerSession{}
	if err := json.Unmarshal(blob, &session); err != nil {
		return TimerSession{}, fmt.Errorf("unmarshal timer session: %w", err)
	}

	session.Advance(now)
	return session, nil
}

func clampSeconds(value float64) float64 {
	if value < 0 {
		return 0
	}
	return value
}
