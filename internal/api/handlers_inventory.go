package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quietfawn/nestling/internal/services"
)

type checkInInput struct {
	Volume     float64 `json:"volume"`
	PumpDate   string  `json:"pumpDate"`
	FreezeDate string  `json:"freezeDate"`
}

// GetInventory lists stored milk in FIFO consumption order.
func (handler *Handler) GetInventory(c *fiber.Ctx) error {
	listing, err := handler.inventoryService.ListForConsumption(sessionFamilyID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "fetch inventory failed"})
	}
	return c.JSON(listing)
}

// CheckInInventory stores a new milk unit. PumpDate is an instant,
// FreezeDate a calendar date.
func (handler *Handler) CheckInInventory(c *fiber.Ctx) error {
	input := checkInInput{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	pumpDate, err := time.Parse(time.RFC3339, input.PumpDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid pump date"})
	}
	freezeDate, err := time.Parse("2006-01-02", input.FreezeDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid freeze date"})
	}

	item, err := handler.inventoryService.CheckIn(sessionFamilyID(c), input.Volume, pumpDate, freezeDate)
	if err != nil {
		if errors.Is(err, services.ErrInvalidVolume) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "check-in failed"})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// CheckOutInventory thaws or deletes one item after confirmation.
func (handler *Handler) CheckOutInventory(c *fiber.Ctx) error {
	if !isConfirmed(c) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "confirmation required"})
	}

	action := c.Query("action", services.CheckOutThaw)
	err := handler.inventoryService.CheckOut(sessionFamilyID(c), c.Params("id"), action)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInventoryItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "inventory item not found"})
		case errors.Is(err, services.ErrUnknownCheckOutAction):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "check-out failed"})
		}
	}
	return c.JSON(fiber.Map{"ok": true})
}
