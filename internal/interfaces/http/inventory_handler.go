package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmarulanda/stockalert-api/internal/application/dto"
	"github.com/jmarulanda/stockalert-api/internal/application/usecase"
	"github.com/jmarulanda/stockalert-api/pkg/logger"
)

// InventoryHandler maneja las peticiones HTTP de niveles de stock.
type InventoryHandler struct {
	uc  *usecase.InventoryUseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// Upsert godoc
// @Summary      Fijar cantidad de stock
// @Description  Crea o actualiza la fila (producto, bodega) con la cantidad dada.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertInventoryRequest  true  "product_id, warehouse_id, quantity (>= 0)"
// @Success      200   {object}  dto.InventoryLevelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory [put]
func (h *InventoryHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	out, err := h.uc.Upsert(c.Context(), in)
	if err != nil {
		return mapDomainError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListCompanyStock godoc
// @Summary      Inventario completo de una empresa
// @Tags         inventory
// @Produce      json
// @Param        companyId  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyStockListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/inventory [get]
func (h *InventoryHandler) ListCompanyStock(c *fiber.Ctx) error {
	companyID, ok := parseIDParam(c, "companyId")
	if !ok {
		return badRequest(c, "invalid company id")
	}
	out, err := h.uc.ListCompanyStock(c.Context(), companyID)
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}
