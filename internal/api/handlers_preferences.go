package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quietfawn/nestling/internal/models"
	"github.com/quietfawn/nestling/internal/services"
)

type preferenceInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// GetPreferences returns every stored key for this device; each key is
// independently readable, matching the client's startup reads.
func (handler *Handler) GetPreferences(c *fiber.Ctx) error {
	values, err := handler.repositories.Preferences.ListByDevice(sessionDeviceID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "fetch preferences failed"})
	}
	return c.JSON(values)
}

// SetPreference writes one key on change.
func (handler *Handler) SetPreference(c *fiber.Ctx) error {
	input := preferenceInput{}
	if err := c.BodyParser(&input); err != nil || input.Key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := handler.repositories.Preferences.Set(sessionDeviceID(c), input.Key, input.Value); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "save preference failed"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// deviceVolumeUnit reads the device's stored unit preference, defaulting to
// milliliters.
func (handler *Handler) deviceVolumeUnit(c *fiber.Ctx) string {
	unit, found, err := handler.repositories.Preferences.Get(sessionDeviceID(c), models.PrefVolumeUnit)
	if err != nil || !found || unit != services.UnitOunces {
		return services.UnitMilliliters
	}
	return services.UnitOunces
}
