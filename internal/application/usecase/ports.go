package usecase

import (
	"context"

	"github.com/jmarulanda/stockalert-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad producto+stock inicial
// y orden+líneas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
