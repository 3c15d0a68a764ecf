package repository

import (
	"context"

	"github.com/jmarulanda/stockalert-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse.
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, id int64) (*entity.Warehouse, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*entity.Warehouse, error)
}
