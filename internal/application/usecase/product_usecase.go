package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jmarulanda/stockalert-api/internal/application/dto"
	"github.com/jmarulanda/stockalert-api/internal/domain"
	"github.com/jmarulanda/stockalert-api/internal/domain/entity"
	"github.com/jmarulanda/stockalert-api/internal/domain/repository"
)

// ProductUseCase casos de uso para productos. La creación puede sembrar stock
// inicial en una bodega dentro de la misma transacción.
type ProductUseCase struct {
	repo          repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	tx            TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, warehouseRepo repository.WarehouseRepository, tx TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, warehouseRepo: warehouseRepo, tx: tx}
}

// Create crea un producto. SKU es único por empresa (ErrDuplicate si ya existe).
// Si vienen warehouse_id e initial_quantity, el nivel de stock se upserta en la
// misma transacción: o queda producto + stock, o no queda nada.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.CompanyID <= 0 || strings.TrimSpace(in.SKU) == "" || strings.TrimSpace(in.Name) == "" || in.Price == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.ReorderThreshold != nil && *in.ReorderThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}

	seedStock := in.WarehouseID != nil || in.InitialQuantity != nil
	if seedStock {
		// Ambos campos o ninguno; la cantidad inicial no puede ser negativa.
		if in.WarehouseID == nil || in.InitialQuantity == nil || *in.InitialQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		warehouse, err := uc.warehouseRepo.GetByID(ctx, *in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if warehouse == nil {
			return nil, domain.ErrNotFound
		}
		if warehouse.CompanyID != in.CompanyID {
			return nil, domain.ErrForbidden
		}
	}

	existing, err := uc.repo.GetByCompanyAndSKU(ctx, in.CompanyID, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		CompanyID:        in.CompanyID,
		SKU:              in.SKU,
		Name:             in.Name,
		Description:      in.Description,
		Price:            *in.Price,
		ReorderThreshold: in.ReorderThreshold,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = uc.tx.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		_ repository.OrderRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		if !seedStock {
			return nil
		}
		return inventoryRepo.Upsert(ctx, &entity.InventoryLevel{
			ProductID:   product.ID,
			WarehouseID: *in.WarehouseID,
			Quantity:    *in.InitialQuantity,
			UpdatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// ListByCompany lista productos por empresa con paginación.
func (uc *ProductUseCase) ListByCompany(ctx context.Context, companyID int64, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Page: page}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:               p.ID,
		CompanyID:        p.CompanyID,
		SKU:              p.SKU,
		Name:             p.Name,
		Description:      p.Description,
		Price:            p.Price,
		ReorderThreshold: p.ReorderThreshold,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
