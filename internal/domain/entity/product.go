package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo (multi-bodega).
// ReorderThreshold es opcional: nil significa usar el umbral por defecto configurado.
type Product struct {
	ID               int64
	CompanyID        int64
	SKU              string // código único por empresa
	Name             string
	Description      string
	Price            decimal.Decimal // precio de venta
	ReorderThreshold *int64          // punto de reorden propio del producto (nullable)
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
