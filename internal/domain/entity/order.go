package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de orden. Solo completed y shipped cuentan como venta concretada
// para la agregación de ventas recientes.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusShipped   = "shipped"
	OrderStatusCancelled = "cancelled"
)

// Order representa una orden de venta. Reference es el identificador público
// que se expone fuera de la API (el ID numérico es interno).
type Order struct {
	ID        int64
	Reference uuid.UUID
	CompanyID int64
	Status    string
	OrderDate time.Time
	CreatedAt time.Time
}

// OrderItem línea de una orden. La suma de Quantity por producto dentro de la
// ventana de ventas es el insumo del motor de alertas; nunca se materializa.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int64
	UnitPrice decimal.Decimal
}

// ValidOrderStatus indica si el estado es uno de los conocidos.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusShipped, OrderStatusCancelled:
		return true
	}
	return false
}
