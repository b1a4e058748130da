package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quietfawn/nestling/internal/models"
	"github.com/quietfawn/nestling/internal/services"
)

type familyInput struct {
	FamilyKey   string `json:"familyKey" form:"family_key"`
	Name        string `json:"name" form:"name"`
	Passphrase  string `json:"passphrase" form:"passphrase"`
	DeviceLabel string `json:"deviceLabel" form:"device_label"`
}

// CreateFamily registers a new family key and signs the creating device in.
func (handler *Handler) CreateFamily(c *fiber.Ctx) error {
	input := familyInput{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	family, device, err := handler.familyService.CreateFamily(input.FamilyKey, input.Name, input.Passphrase, input.DeviceLabel)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFamilyExists):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "family key already taken"})
		case errors.Is(err, services.ErrInvalidFamilyKey), errors.Is(err, services.ErrPassphraseTooShort):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "create family failed"})
		}
	}

	return handler.respondWithSession(c, family, device)
}

// JoinFamily authenticates the shared key and passphrase and registers this
// device in the family.
func (handler *Handler) JoinFamily(c *fiber.Ctx) error {
	input := familyInput{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	family, device, err := handler.familyService.JoinFamily(input.FamilyKey, input.Passphrase, input.DeviceLabel)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFamilyNotFound), errors.Is(err, services.ErrWrongPassphrase):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid family key or passphrase"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "join family failed"})
		}
	}

	return handler.respondWithSession(c, family, device)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
	})
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) respondWithSession(c *fiber.Ctx, family models.Family, device models.Device) error {
	now := time.Now()
	token, err := handler.issueSessionToken(device.ID, family.ID, now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "issue session failed"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Expires:  now.Add(handler.tokenTTL),
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"token":      token,
		"familyId":   family.ID,
		"familyName": family.Name,
		"deviceId":   device.ID,
	})
}
