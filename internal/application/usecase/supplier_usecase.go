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

// SupplierUseCase casos de uso para proveedores y sus asociaciones con productos.
type SupplierUseCase struct {
	repo        repository.SupplierRepository
	productRepo repository.ProductRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, productRepo repository.ProductRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, productRepo: productRepo}
}

// Create registra un proveedor. Contact es un objeto JSON libre (puede ir vacío).
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		Name:      in.Name,
		Contact:   in.Contact,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Link asocia un proveedor a un producto con prioridad opcional (menor = preferido).
func (uc *SupplierUseCase) Link(ctx context.Context, productID int64, in dto.LinkSupplierRequest) error {
	if productID <= 0 || in.SupplierID <= 0 {
		return domain.ErrInvalidInput
	}
	if in.Priority != nil && *in.Priority < 0 {
		return domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	supplier, err := uc.repo.GetByID(ctx, in.SupplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Link(ctx, &entity.ProductSupplier{
		ProductID:  productID,
		SupplierID: in.SupplierID,
		Priority:   in.Priority,
		CreatedAt:  time.Now(),
	})
}

// ListForProduct devuelve los proveedores asociados al producto en orden de
// resolución (priority ASC, nulls al final).
func (uc *SupplierUseCase) ListForProduct(ctx context.Context, productID int64) ([]dto.ProductSupplierResponse, error) {
	links, err := uc.repo.ListLinksForProducts(ctx, []int64{productID})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductSupplierResponse, 0, len(links))
	for _, link := range links {
		out = append(out, dto.ProductSupplierResponse{
			SupplierID: link.SupplierID,
			Name:       link.Name,
			Priority:   link.Priority,
		})
	}
	return out, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Contact:   s.Contact,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
