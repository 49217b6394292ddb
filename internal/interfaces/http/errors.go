package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/dcpos-api/internal/application/dto"
	"github.com/jhoicas/dcpos-api/internal/domain"
)

// respondError mapea la taxonomía de errores de dominio a códigos HTTP:
// Unauthorized->401, Forbidden->403, NotFound->404, Duplicate->409, InvalidInput->400.
// Todo 401 lleva el header WWW-Authenticate: Bearer. Único punto de mapeo
// para que los handlers no repitan switches por endpoint.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "credenciales inválidas o token expirado",
		})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "USER_NOT_FOUND", Message: "usuario no encontrado o inactivo",
		})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "FORBIDDEN", Message: "acceso denegado",
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "recurso no encontrado",
		})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DUPLICATE", Message: "recurso duplicado",
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "entrada inválida o incompleta",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}
