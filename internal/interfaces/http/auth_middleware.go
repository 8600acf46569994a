package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/amartindev/TenjoConecta/internal/application/dto"
	"github.com/amartindev/TenjoConecta/pkg/jwt"
)

// LocalAdminEmail key de Locals con el email de la sesión admin.
const LocalAdminEmail = "admin_email"

// AdminMiddleware valida el Bearer Token JWT y exige que el email del claim
// coincida con el administrador configurado. El directorio tiene un solo
// admin: cualquier otro email es 403 aunque el token sea válido.
func AdminMiddleware(jwtSecret, adminEmail string) fiber.Handler {
	admin := strings.ToLower(strings.TrimSpace(adminEmail))
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if !strings.EqualFold(email, admin) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso restringido al administrador"})
		}
		c.Locals(LocalAdminEmail, email)
		return c.Next()
	}
}

// GetAdminEmail devuelve el email de la sesión (después del middleware).
func GetAdminEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalAdminEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
