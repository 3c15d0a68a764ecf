package repository

import (
	"context"

	"github.com/jmarulanda/stockalert-api/internal/domain/entity"
)

// StockRow es la proyección del escaneo de inventario para el motor de alertas:
// una fila de stock con los atributos de producto y bodega ya unidos (un solo JOIN,
// nunca fetch por fila). WarehouseName puede ser nil si la bodega no tiene nombre.
type StockRow struct {
	InventoryID      int64
	ProductID        int64
	ProductName      string
	SKU              string
	ReorderThreshold *int64
	WarehouseID      int64
	WarehouseName    *string
	Quantity         int64
}

// InventoryRepository define el puerto de persistencia para niveles de stock.
type InventoryRepository interface {
	// Upsert crea o actualiza la fila (producto, bodega) con la cantidad dada.
	Upsert(ctx context.Context, level *entity.InventoryLevel) error
	Get(ctx context.Context, productID, warehouseID int64) (*entity.InventoryLevel, error)
	// ListCompanyStock devuelve todo el inventario de la empresa con atributos de
	// producto y bodega, filtrado por la empresa tanto del producto como de la bodega.
	ListCompanyStock(ctx context.Context, companyID int64) ([]StockRow, error)
}
