package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmarulanda/stockalert-api/internal/application/dto"
	"github.com/jmarulanda/stockalert-api/internal/application/usecase"
	"github.com/jmarulanda/stockalert-api/pkg/logger"
)

// WarehouseHandler maneja las peticiones HTTP para bodegas.
type WarehouseHandler struct {
	uc  *usecase.WarehouseUseCase
	log *logger.Logger
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase, log *logger.Logger) *WarehouseHandler {
	return &WarehouseHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear bodega para una empresa
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        companyId  path  int  true  "ID de la empresa"
// @Param        body  body  dto.CreateWarehouseRequest  true  "Datos de la bodega"
// @Success      201   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/warehouses [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	companyID, ok := parseIDParam(c, "companyId")
	if !ok {
		return badRequest(c, "invalid company id")
	}
	var in dto.CreateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	out, err := h.uc.Create(c.Context(), companyID, in)
	if err != nil {
		return mapDomainError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByCompany godoc
// @Summary      Listar bodegas de una empresa
// @Tags         warehouses
// @Produce      json
// @Param        companyId  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.WarehouseListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/warehouses [get]
func (h *WarehouseHandler) ListByCompany(c *fiber.Ctx) error {
	companyID, ok := parseIDParam(c, "companyId")
	if !ok {
		return badRequest(c, "invalid company id")
	}
	out, err := h.uc.ListByCompany(c.Context(), companyID)
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}
