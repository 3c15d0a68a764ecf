package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmarulanda/stockalert-api/internal/application/dto"
	"github.com/jmarulanda/stockalert-api/internal/application/usecase"
	"github.com/jmarulanda/stockalert-api/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP para productos.
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear producto
// @Description  Crea el producto y, si vienen warehouse_id e initial_quantity,
//
//	siembra el stock inicial en la misma transacción.
//
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "company_id, sku, name, price; opcional reorder_threshold, warehouse_id + initial_quantity"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapDomainError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return badRequest(c, "invalid product id")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return internalError(c, h.log, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "not found"})
	}
	return c.JSON(out)
}

// ListByCompany godoc
// @Summary      Listar productos de una empresa
// @Tags         products
// @Produce      json
// @Param        companyId  path   int  true   "ID de la empresa"
// @Param        limit      query  int  false  "Tamaño de página (def. 20)"
// @Param        offset     query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/products [get]
func (h *ProductHandler) ListByCompany(c *fiber.Ctx) error {
	companyID, ok := parseIDParam(c, "companyId")
	if !ok {
		return badRequest(c, "invalid company id")
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "invalid query")
	}
	out, err := h.uc.ListByCompany(c.Context(), companyID, page)
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}
