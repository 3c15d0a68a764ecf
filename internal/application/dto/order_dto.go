package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderItemRequest una línea de la orden a ingestar.
type CreateOrderItemRequest struct {
	ProductID int64            `json:"product_id"`
	Quantity  int64            `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest body para POST /api/orders. Ingesta mínima: las órdenes solo
// existen para alimentar la agregación de ventas, no hay workflow sobre ellas.
// OrderDate opcional; vacío = ahora.
type CreateOrderRequest struct {
	CompanyID int64                    `json:"company_id"`
	Status    string                   `json:"status"`
	OrderDate *time.Time               `json:"order_date"`
	Items     []CreateOrderItemRequest `json:"items"`
}

// OrderResponse representación HTTP de una orden ingresada.
type OrderResponse struct {
	ID        int64     `json:"id"`
	Reference string    `json:"reference"`
	CompanyID int64     `json:"company_id"`
	Status    string    `json:"status"`
	OrderDate time.Time `json:"order_date"`
	Items     int       `json:"items"`
}

// OrderItemResponse una línea de orden en la lectura de detalle.
type OrderItemResponse struct {
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderDetailResponse orden con sus líneas.
type OrderDetailResponse struct {
	ID        int64               `json:"id"`
	Reference string              `json:"reference"`
	CompanyID int64               `json:"company_id"`
	Status    string              `json:"status"`
	OrderDate time.Time           `json:"order_date"`
	Items     []OrderItemResponse `json:"items"`
}
