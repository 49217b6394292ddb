package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/dcpos-api/internal/application/authz"
	"github.com/jhoicas/dcpos-api/internal/application/dto"
)

// LocalIdentity key de la identidad resuelta en c.Locals.
const LocalIdentity = "identity"

// identityResolver es el contrato mínimo que necesita el middleware.
// Lo implementa *auth.UseCase; el uso de interfaz evita el import circular
// y permite fakes en tests.
type identityResolver interface {
	Resolve(token string) (*authz.Identity, error)
}

// AuthMiddleware valida el Bearer Token y resuelve la identidad contra un usuario
// vivo en DB. Toda ruta protegida pasa por aquí; los handlers posteriores solo
// confían en la identidad de c.Locals, nunca en lo que declare el body.
func AuthMiddleware(resolver identityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		identity, err := resolver.Resolve(tokenString)
		if err != nil {
			return respondError(c, err)
		}
		c.Locals(LocalIdentity, identity)
		return c.Next()
	}
}

// GetIdentity devuelve la identidad del contexto (después del middleware de auth).
func GetIdentity(c *fiber.Ctx) *authz.Identity {
	v := c.Locals(LocalIdentity)
	if v == nil {
		return nil
	}
	id, _ := v.(*authz.Identity)
	return id
}
