package repository

import (
	"context"

	"github.com/jmarulanda/stockalert-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetByCompanyAndSKU(ctx context.Context, companyID int64, sku string) (*entity.Product, error)
	ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]*entity.Product, error)
}
