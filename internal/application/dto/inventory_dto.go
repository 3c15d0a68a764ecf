package dto

import "time"

// UpsertInventoryRequest body para PUT /api/inventory: fija la cantidad actual
// del par (producto, bodega). Crea la fila si no existe.
type UpsertInventoryRequest struct {
	ProductID   int64 `json:"product_id"`
	WarehouseID int64 `json:"warehouse_id"`
	Quantity    int64 `json:"quantity"`
}

// InventoryLevelResponse representación HTTP de un nivel de stock.
type InventoryLevelResponse struct {
	ProductID   int64     `json:"product_id"`
	WarehouseID int64     `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CompanyStockRowResponse una fila del listado de inventario de la empresa,
// con atributos de producto y bodega unidos.
type CompanyStockRowResponse struct {
	ProductID        int64   `json:"product_id"`
	ProductName      string  `json:"product_name"`
	SKU              string  `json:"sku"`
	ReorderThreshold *int64  `json:"reorder_threshold"`
	WarehouseID      int64   `json:"warehouse_id"`
	WarehouseName    *string `json:"warehouse_name"`
	Quantity         int64   `json:"quantity"`
}

// CompanyStockListResponse listado de inventario de la empresa.
type CompanyStockListResponse struct {
	Items []CompanyStockRowResponse `json:"items"`
	Total int                       `json:"total"`
}
