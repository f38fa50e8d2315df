package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/cotizador-pro/internal/application/dto"
	"github.com/tu-usuario/cotizador-pro/internal/application/usecase"
	"github.com/tu-usuario/cotizador-pro/internal/domain"
)

// QuotationHandler maneja las peticiones HTTP para Quotation (protegido).
type QuotationHandler struct {
	uc     *usecase.QuotationUseCase
	export *usecase.ExportUseCase
}

// NewQuotationHandler construye el handler.
func NewQuotationHandler(uc *usecase.QuotationUseCase, export *usecase.ExportUseCase) *QuotationHandler {
	return &QuotationHandler{uc: uc, export: export}
}

// Create godoc
// @Summary      Crear cotización
// @Description  Calcula costo total, precio de venta y ganancia a partir de las
// @Description  asignaciones (material, porcentaje) y el margen deseado, y
// @Description  persiste cabecera y líneas de forma atómica.
// @Tags         quotations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuotationRequest  true  "Datos de la cotización"
// @Success      201   {object}  dto.QuotationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/quotations [post]
func (h *QuotationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return quotationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener cotización por ID (con sus líneas)
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cotización"
// @Success      200  {object}  dto.QuotationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id} [get]
func (h *QuotationHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(GetUserID(c), GetRole(c), id)
	if err != nil {
		return quotationError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar cotizaciones del usuario
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.QuotationListResponse
// @Router       /api/quotations [get]
func (h *QuotationHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(GetUserID(c), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar el PDF de una cotización
// @Tags         quotations
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la cotización"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id}/pdf [get]
func (h *QuotationHandler) DownloadPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	data, filename, err := h.export.DownloadQuotationPDF(c.UserContext(), GetUserID(c), GetRole(c), id)
	if err != nil {
		return quotationError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// ExportXLSX godoc
// @Summary      Exportar todas las cotizaciones a xlsx (solo administradores)
// @Tags         quotations
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/quotations/export [get]
func (h *QuotationHandler) ExportXLSX(c *fiber.Ctx) error {
	data, filename, err := h.export.ExportQuotationsXLSX(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// quotationError mapea errores del dominio de cotizaciones a respuestas HTTP.
// Los errores de validación viajan con su mensaje; el fallo de persistencia se
// loguea con causa y al usuario le llega un mensaje genérico.
func quotationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyAllocation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_ALLOCATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnresolvedMaterial):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNRESOLVED_MATERIAL", Message: err.Error()})
	case errors.Is(err, domain.ErrPercentageMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PERCENTAGE_MISMATCH", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidMargin):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_MARGIN", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tiene acceso a esta cotización"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
	case errors.Is(err, domain.ErrPersistence):
		log.Error().Err(err).Msg("fallo de persistencia al guardar cotización")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCE", Message: "no se pudo guardar la cotización"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
