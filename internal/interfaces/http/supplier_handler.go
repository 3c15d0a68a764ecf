package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmarulanda/stockalert-api/internal/application/dto"
	"github.com/jmarulanda/stockalert-api/internal/application/usecase"
	"github.com/jmarulanda/stockalert-api/pkg/logger"
)

// SupplierHandler maneja las peticiones HTTP de proveedores y sus asociaciones.
type SupplierHandler struct {
	uc  *usecase.SupplierUseCase
	log *logger.Logger
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase, log *logger.Logger) *SupplierHandler {
	return &SupplierHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "name; contact es un objeto JSON libre"
// @Success      201   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapDomainError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Link godoc
// @Summary      Asociar proveedor a un producto
// @Description  Prioridad menor = proveedor preferido para las alertas; null va al final.
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.LinkSupplierRequest  true  "supplier_id; priority opcional"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/suppliers [post]
func (h *SupplierHandler) Link(c *fiber.Ctx) error {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return badRequest(c, "invalid product id")
	}
	var in dto.LinkSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := h.uc.Link(c.Context(), productID, in); err != nil {
		return mapDomainError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "supplier linked"})
}

// ListForProduct godoc
// @Summary      Proveedores de un producto
// @Tags         suppliers
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {array}   dto.ProductSupplierResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/suppliers [get]
func (h *SupplierHandler) ListForProduct(c *fiber.Ctx) error {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return badRequest(c, "invalid product id")
	}
	out, err := h.uc.ListForProduct(c.Context(), productID)
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}
