package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jmarulanda/stockalert-api/internal/application/dto"
	"github.com/jmarulanda/stockalert-api/internal/domain"
	"github.com/jmarulanda/stockalert-api/internal/domain/entity"
	"github.com/jmarulanda/stockalert-api/internal/domain/repository"
)

// OrderUseCase ingesta de órdenes de venta. Sin workflow: las órdenes solo
// alimentan la agregación de ventas recientes del motor de alertas.
type OrderUseCase struct {
	companyRepo repository.CompanyRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	tx          TxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	companyRepo repository.CompanyRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	tx TxRunner,
) *OrderUseCase {
	return &OrderUseCase{companyRepo: companyRepo, productRepo: productRepo, orderRepo: orderRepo, tx: tx}
}

// Create ingesta una orden con sus líneas en una transacción.
// Valida empresa existente, estado conocido, líneas no vacías con cantidades
// positivas y productos de la misma empresa.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CompanyID <= 0 || len(in.Items) == 0 || !entity.ValidOrderStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID <= 0 || it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if product.CompanyID != in.CompanyID {
			return nil, domain.ErrForbidden
		}
		price := product.Price
		if it.UnitPrice != nil {
			if it.UnitPrice.IsNegative() {
				return nil, domain.ErrInvalidInput
			}
			price = *it.UnitPrice
		}
		items = append(items, entity.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: price,
		})
	}

	orderDate := time.Now()
	if in.OrderDate != nil {
		orderDate = *in.OrderDate
	}
	order := &entity.Order{
		Reference: uuid.New(),
		CompanyID: in.CompanyID,
		Status:    in.Status,
		OrderDate: orderDate,
		CreatedAt: time.Now(),
	}

	err = uc.tx.Run(ctx, func(
		_ repository.ProductRepository,
		_ repository.InventoryRepository,
		orderRepo repository.OrderRepository,
	) error {
		return orderRepo.Create(ctx, order, items)
	})
	if err != nil {
		return nil, err
	}

	return &dto.OrderResponse{
		ID:        order.ID,
		Reference: order.Reference.String(),
		CompanyID: order.CompanyID,
		Status:    order.Status,
		OrderDate: order.OrderDate,
		Items:     len(items),
	}, nil
}

// GetByID obtiene una orden con sus líneas. (nil, nil) si no existe.
func (uc *OrderUseCase) GetByID(ctx context.Context, id int64) (*dto.OrderDetailResponse, error) {
	order, items, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	lines := make([]dto.OrderItemResponse, 0, len(items))
	for _, it := range items {
		lines = append(lines, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return &dto.OrderDetailResponse{
		ID:        order.ID,
		Reference: order.Reference.String(),
		CompanyID: order.CompanyID,
		Status:    order.Status,
		OrderDate: order.OrderDate,
		Items:     lines,
	}, nil
}
