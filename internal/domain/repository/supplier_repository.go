package repository

import (
	"context"
	"encoding/json"

	"github.com/jmarulanda/stockalert-api/internal/domain/entity"
)

// SupplierLink es la proyección de una asociación producto-proveedor con los
// datos del proveedor ya unidos, en el orden de resolución (priority ASC,
// NULLS LAST, desempate por id de asociación).
type SupplierLink struct {
	LinkID     int64
	ProductID  int64
	SupplierID int64
	Name       string
	Contact    json.RawMessage
	Priority   *int64
}

// SupplierRepository define el puerto de persistencia para proveedores y sus
// asociaciones con productos.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	// Link asocia un proveedor a un producto con prioridad opcional.
	Link(ctx context.Context, link *entity.ProductSupplier) error
	// ListLinksForProducts trae en una sola consulta todas las asociaciones de los
	// productos dados, ordenadas por prioridad ascendente con nulls al final.
	ListLinksForProducts(ctx context.Context, productIDs []int64) ([]SupplierLink, error)
}
