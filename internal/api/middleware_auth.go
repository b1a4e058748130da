package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type sessionClaims struct {
	DeviceID string `json:"did"`
	FamilyID string `json:"fid"`
	jwt.RegisteredClaims
}

// AuthRequired accepts the session cookie or a Bearer token and stashes the
// device and family identity on the request context.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	tokenValue := c.Cookies(sessionCookieName)
	if tokenValue == "" {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenValue = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}
	if tokenValue == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}

	claims, err := handler.parseSessionToken(tokenValue)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid session"})
	}

	device, found, err := handler.familyService.FindDevice(claims.DeviceID)
	if err != nil || !found || device.FamilyID != claims.FamilyID {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid session"})
	}

	c.Locals("deviceID", claims.DeviceID)
	c.Locals("familyID", claims.FamilyID)
	return c.Next()
}

func (handler *Handler) parseSessionToken(tokenValue string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenValue, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (handler *Handler) issueSessionToken(deviceID string, familyID string, now time.Time) (string, error) {
	claims := sessionClaims{
		DeviceID: deviceID,
		FamilyID: familyID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(handler.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func sessionDeviceID(c *fiber.Ctx) string {
	deviceID, _ := c.Locals("deviceID").(string)
	return deviceID
}

func sessionFamilyID(c *fiber.Ctx) string {
	familyID, _ := c.Locals("familyID").(string)
	return familyID
}
