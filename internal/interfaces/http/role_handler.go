package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/dcpos-api/internal/application/usecase"
)

// RoleHandler expone el catálogo de roles.
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler construye el handler de roles.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// List godoc
// @Summary      Listar roles disponibles
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RoleListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/v1/roles [get]
func (h *RoleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
