package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quietfawn/nestling/internal/models"
	"github.com/quietfawn/nestling/internal/services"
)

type timerToggleInput struct {
	Side string `json:"side"`
}

type timerStartInput struct {
	StartTime string `json:"startTime"`
}

// GetTimer restores the device's persisted timer session, reconciling the
// elapsed time the device was away onto whichever side was active at the
// last known tick.
func (handler *Handler) GetTimer(c *fiber.Ctx) error {
	session, err := handler.loadTimerSession(c, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "restore timer failed"})
	}
	return c.JSON(session)
}

// ToggleTimer starts, switches, or pauses one side of the stopwatch.
func (handler *Handler) ToggleTimer(c *fiber.Ctx) error {
	input := timerToggleInput{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.Side != services.TimerSideLeft && input.Side != services.TimerSideRight {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid side"})
	}

	return handler.mutateTimerSession(c, func(session *services.TimerSession, now time.Time) error {
		session.Toggle(input.Side, now)
		return nil
	})
}

// EditTimerStart backdates the nominal start time, shifting the difference
// onto the presumed-active side.
func (handler *Handler) EditTimerStart(c *fiber.Ctx) error {
	input := timerStartInput{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	newStart, err := time.Parse(time.RFC3339, input.StartTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid start time"})
	}

	return handler.mutateTimerSession(c, func(session *services.TimerSession, now time.Time) error {
		session.EditStartTime(newStart)
		return nil
	})
}

// ResetTimer clears the stopwatch without saving.
func (handler *Handler) ResetTimer(c *fiber.Ctx) error {
	return handler.mutateTimerSession(c, func(session *services.TimerSession, now time.Time) error {
		session.Reset()
		return nil
	})
}

// SaveTimer flushes the session into a breast-feeding record and resets the
// stopwatch. An empty session is refused without touching the store.
func (handler *Handler) SaveTimer(c *fiber.Ctx) error {
	now := time.Now()
	session, err := handler.loadTimerSession(c, now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "restore timer failed"})
	}

	record, err := session.BuildRecord(sessionFamilyID(c), sessionDeviceID(c))
	if err != nil {
		if errors.Is(err, services.ErrEmptyTimerSession) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "save timer failed"})
	}

	recordID, err := handler.store.Append(&record)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "append log failed"})
	}

	session.Reset()
	if err := handler.persistTimerSession(c, session, now); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "persist timer failed"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": recordID})
}

func (handler *Handler) mutateTimerSession(c *fiber.Ctx, mutate func(session *services.TimerSession, now time.Time) error) error {
	now := time.Now()
	session, err := handler.loadTimerSession(c, now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "restore timer failed"})
	}

	if err := mutate(&session, now); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := handler.persistTimerSession(c, session, now); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "persist timer failed"})
	}
	return c.JSON(session)
}

func (handler *Handler) loadTimerSession(c *fiber.Ctx, now time.Time) (services.TimerSession, error) {
	blob, found, err := handler.repositories.Preferences.Get(sessionDeviceID(c), models.PrefTimerSession)
	if err != nil {
		return services.TimerSession{}, err
	}
	if !found {
		return services.TimerSession{LastTick: now}, nil
	}
	return services.RestoreTimerSession([]byte(blob), now)
}

func (handler *Handler) persistTimerSession(c *fiber.Ctx, session services.TimerSession, now time.Time) error {
	blob, err := session.Snapshot(now)
	if err != nil {
		return err
	}
	return handler.repositories.Preferences.Set(sessionDeviceID(c), models.PrefTimerSession, string(blob))
}
