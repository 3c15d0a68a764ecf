package repository

import (
	"context"

	"github.com/jmarulanda/stockalert-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para órdenes de venta.
// No hay workflow de órdenes: solo ingesta de filas que alimenta la agregación.
type OrderRepository interface {
	// Create inserta la orden y sus líneas. Debe ejecutarse dentro de una transacción.
	Create(ctx context.Context, order *entity.Order, items []entity.OrderItem) error
	GetByID(ctx context.Context, id int64) (*entity.Order, []entity.OrderItem, error)
}
