package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/dcpos-api/internal/application/dto"
	"github.com/jhoicas/dcpos-api/internal/application/usecase"
)

// BranchHandler maneja las sucursales, anidadas bajo su empresa.
type BranchHandler struct {
	uc *usecase.BranchUseCase
}

// NewBranchHandler construye el handler de sucursales.
func NewBranchHandler(uc *usecase.BranchUseCase) *BranchHandler {
	return &BranchHandler{uc: uc}
}

// Create godoc
// @Summary      Crear sucursal
// @Tags         branches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la empresa"
// @Param        body  body  dto.CreateBranchRequest  true  "name, address"
// @Success      201   {object}  dto.BranchResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{id}/branches [post]
func (h *BranchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBranchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(*GetIdentity(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByCompany godoc
// @Summary      Listar sucursales de una empresa
// @Tags         branches
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.BranchListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{id}/branches [get]
func (h *BranchHandler) ListByCompany(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(*GetIdentity(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar sucursal
// @Tags         branches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id         path  string  true  "ID de la empresa"
// @Param        branch_id  path  string  true  "ID de la sucursal"
// @Param        body       body  dto.UpdateBranchRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.BranchResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{id}/branches/{branch_id} [patch]
func (h *BranchHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBranchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(*GetIdentity(c), c.Params("branch_id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar sucursal
// @Tags         branches
// @Security     Bearer
// @Param        id         path  string  true  "ID de la empresa"
// @Param        branch_id  path  string  true  "ID de la sucursal"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/companies/{id}/branches/{branch_id} [delete]
func (h *BranchHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(*GetIdentity(c), c.Params("id"), c.Params("branch_id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
