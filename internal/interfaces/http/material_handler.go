package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cotizador-pro/internal/application/dto"
	"github.com/tu-usuario/cotizador-pro/internal/application/usecase"
	"github.com/tu-usuario/cotizador-pro/internal/domain"
)

// MaterialHandler maneja las peticiones HTTP para RawMaterial (protegido).
type MaterialHandler struct {
	uc *usecase.MaterialUseCase
}

// NewMaterialHandler construye el handler.
func NewMaterialHandler(uc *usecase.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// Create godoc
// @Summary      Crear materia prima
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialRequest  true  "name, unit, cost"
// @Success      201   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/materials [post]
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener materia prima por ID
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la materia prima"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [get]
func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(GetUserID(c), id)
	if err != nil {
		return materialError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar materias primas del usuario
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MaterialListResponse
// @Router       /api/materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar materia prima
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la materia prima"
// @Param        body  body  dto.UpdateMaterialRequest  true  "name, unit, cost"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [put]
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetUserID(c), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return materialError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar materia prima
// @Tags         materials
// @Security     Bearer
// @Param        id  path  string  true  "ID de la materia prima"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [delete]
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(GetUserID(c), id); err != nil {
		return materialError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// materialError mapea errores comunes del caso de uso a respuestas HTTP.
// La propiedad ajena se reporta como NOT_FOUND para no revelar su existencia.
func materialError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "materia prima no encontrada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
