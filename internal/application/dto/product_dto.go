package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// WarehouseID e InitialQuantity son opcionales: si vienen, el stock inicial se
// inserta en la misma transacción que el producto (upsert de inventario).
type CreateProductRequest struct {
	CompanyID        int64            `json:"company_id"`
	SKU              string           `json:"sku"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	Price            *decimal.Decimal `json:"price"`
	ReorderThreshold *int64           `json:"reorder_threshold"`
	WarehouseID      *int64           `json:"warehouse_id"`
	InitialQuantity  *int64           `json:"initial_quantity"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID               int64           `json:"id"`
	CompanyID        int64           `json:"company_id"`
	SKU              string          `json:"sku"`
	Name             string          `json:"name"`
	Description      string          `json:"description,omitempty"`
	Price            decimal.Decimal `json:"price"`
	ReorderThreshold *int64          `json:"reorder_threshold"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos de una empresa.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageRequest       `json:"page"`
}
