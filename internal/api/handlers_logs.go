package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quietfawn/nestling/internal/gateway"
	"github.com/quietfawn/nestling/internal/models"
	"github.com/quietfawn/nestling/internal/services"
)

// GetLogs serves the current snapshot of the family partition, newest first.
func (handler *Handler) GetLogs(c *fiber.Ctx) error {
	records, err := handler.store.Query(sessionFamilyID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "fetch logs failed"})
	}
	return c.JSON(records)
}

// AppendLog validates and appends one event. The record's identity fields
// always come from the session, never from the payload, and the timestamp
// may be backdated relative to now.
func (handler *Handler) AppendLog(c *fiber.Ctx) error {
	record := models.LogRecord{}
	if err := c.BodyParser(&record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	record.ID = ""
	record.FamilyID = sessionFamilyID(c)
	record.DeviceID = sessionDeviceID(c)
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	record = services.NormalizeLogRecord(record)
	if err := services.ValidateLogRecord(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	recordID, err := handler.store.Append(&record)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "append log failed"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": recordID})
}

// DeleteLog removes one record after explicit confirmation. Records are
// immutable once saved; deletion is the only mutation.
func (handler *Handler) DeleteLog(c *fiber.Ctx) error {
	if !isConfirmed(c) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "confirmation required"})
	}

	recordID := c.Params("id")
	record, found, err := handler.repositories.Logs.FindByID(recordID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "delete log failed"})
	}
	if !found || record.FamilyID != sessionFamilyID(c) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "log not found"})
	}

	if err := handler.store.Delete(recordID); err != nil {
		if errors.Is(err, gateway.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "log not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "delete log failed"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// isConfirmed gates destructive operations behind an explicit confirm flag,
// the server-side counterpart of the confirmation dialogs.
func isConfirmed(c *fiber.Ctx) bool {
	return c.Query("confirm") == "true"
}
