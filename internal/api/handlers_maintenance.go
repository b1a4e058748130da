package api

import (
	"io"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ImportLegacyLogs replays an uploaded legacy CSV export into the family
// log. The body is the raw CSV text, or a multipart upload under "file".
// The batch runs to exhaustion and reports a single summary.
func (handler *Handler) ImportLegacyLogs(c *fiber.Ctx) error {
	if !isConfirmed(c) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "confirmation required"})
	}

	csvText := string(c.Body())
	if file, err := c.FormFile("file"); err == nil {
		opened, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "read upload failed"})
		}
		defer opened.Close()

		content, err := io.ReadAll(opened)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "read upload failed"})
		}
		csvText = string(content)
	}
	if csvText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "empty import"})
	}

	result := handler.importService.ImportLegacyCSV(sessionFamilyID(c), sessionDeviceID(c), csvText)
	log.Printf("import: family %s imported=%d skipped=%d failed=%d",
		sessionFamilyID(c), result.Imported, result.Skipped, result.Failed)
	return c.JSON(result)
}

// RemoveDuplicates prunes content-identical records and reports how many
// were deleted; zero is a normal outcome.
func (handler *Handler) RemoveDuplicates(c *fiber.Ctx) error {
	if !isConfirmed(c) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "confirmation required"})
	}

	deleted, err := handler.dedupService.RemoveDuplicates(sessionFamilyID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "deduplication failed",
			"deleted": deleted,
		})
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}

// ExportCSV streams the family log as a CSV download in the device's
// preferred volume unit.
func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	unit := handler.deviceVolumeUnit(c)

	csvText, err := handler.exportService.BuildCSV(sessionFamilyID(c), unit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "export failed"})
	}

	fileName := "baby_log_export_" + time.Now().Format("2006-01-02") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return c.SendString(csvText)
}

// GetStatsOverview serves the dashboard aggregates.
func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	overview, err := handler.statsService.Overview(sessionFamilyID(c), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "fetch stats failed"})
	}
	return c.JSON(overview)
}
