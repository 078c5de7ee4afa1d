// Package http expone la API analítica sobre Fiber: login, health y los
// endpoints de análisis protegidos por JWT.
package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/phardev/pharmanalyse-api/internal/application/dto"
	"github.com/phardev/pharmanalyse-api/pkg/jwt"
)

// Locals keys para UserID y PharmacieID en Fiber.
const (
	LocalUserID      = "user_id"
	LocalPharmacieID = "pharmacie_id"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y PharmacieID a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "en-tête Authorization requis"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format attendu : Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vide"})
		}
		userID, pharmacieID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token invalide ou expiré"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalPharmacieID, pharmacieID)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetPharmacieID devuelve el PharmacieID del contexto (después del middleware de auth).
func GetPharmacieID(c *fiber.Ctx) string {
	v := c.Locals(LocalPharmacieID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
