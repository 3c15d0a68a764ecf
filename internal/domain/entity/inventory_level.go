package entity

import "time"

// InventoryLevel representa el stock actual de un producto en una bodega.
// Existe a lo sumo una fila por par (producto, bodega); se escribe vía upsert.
type InventoryLevel struct {
	ID          int64
	ProductID   int64
	WarehouseID int64
	Quantity    int64 // nunca negativo
	UpdatedAt   time.Time
}
