package usecase

import (
	"context"
	"time"

	"github.com/jmarulanda/stockalert-api/internal/application/dto"
	"github.com/jmarulanda/stockalert-api/internal/domain"
	"github.com/jmarulanda/stockalert-api/internal/domain/entity"
	"github.com/jmarulanda/stockalert-api/internal/domain/repository"
)

// InventoryUseCase casos de uso sobre niveles de stock.
type InventoryUseCase struct {
	repo          repository.InventoryRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	repo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, productRepo: productRepo, warehouseRepo: warehouseRepo}
}

// Upsert fija la cantidad del par (producto, bodega). Producto y bodega deben
// existir y pertenecer a la misma empresa; la cantidad nunca puede ser negativa.
func (uc *InventoryUseCase) Upsert(ctx context.Context, in dto.UpsertInventoryRequest) (*dto.InventoryLevelResponse, error) {
	if in.ProductID <= 0 || in.WarehouseID <= 0 || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if warehouse.CompanyID != product.CompanyID {
		return nil, domain.ErrForbidden
	}

	level := &entity.InventoryLevel{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		UpdatedAt:   time.Now(),
	}
	if err := uc.repo.Upsert(ctx, level); err != nil {
		return nil, err
	}
	return &dto.InventoryLevelResponse{
		ProductID:   level.ProductID,
		WarehouseID: level.WarehouseID,
		Quantity:    level.Quantity,
		UpdatedAt:   level.UpdatedAt,
	}, nil
}

// ListCompanyStock devuelve el inventario de la empresa con atributos de producto
// y bodega unidos (mismo JOIN que alimenta el motor de alertas).
func (uc *InventoryUseCase) ListCompanyStock(ctx context.Context, companyID int64) (*dto.CompanyStockListResponse, error) {
	rows, err := uc.repo.ListCompanyStock(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyStockRowResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.CompanyStockRowResponse{
			ProductID:        r.ProductID,
			ProductName:      r.ProductName,
			SKU:              r.SKU,
			ReorderThreshold: r.ReorderThreshold,
			WarehouseID:      r.WarehouseID,
			WarehouseName:    r.WarehouseName,
			Quantity:         r.Quantity,
		})
	}
	return &dto.CompanyStockListResponse{Items: items, Total: len(items)}, nil
}
