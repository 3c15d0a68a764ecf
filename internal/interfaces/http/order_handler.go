package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmarulanda/stockalert-api/internal/application/dto"
	"github.com/jmarulanda/stockalert-api/internal/application/usecase"
	"github.com/jmarulanda/stockalert-api/pkg/logger"
)

// OrderHandler ingesta de órdenes de venta (insumo de la agregación de ventas).
type OrderHandler struct {
	uc  *usecase.OrderUseCase
	log *logger.Logger
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, log *logger.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Ingestar orden de venta
// @Description  Inserta la orden con sus líneas en una transacción. Solo los
//
//	estados completed y shipped cuentan para las alertas de bajo stock.
//
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "company_id, status, items; order_date opcional (def. ahora)"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
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
// @Summary      Obtener orden por ID
// @Tags         orders
// @Produce      json
// @Param        id   path  int  true  "ID de la orden"
// @Success      200  {object}  dto.OrderDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return badRequest(c, "invalid order id")
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
