package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmarulanda/stockalert-api/internal/domain"
	"github.com/jmarulanda/stockalert-api/internal/domain/entity"
	"github.com/jmarulanda/stockalert-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar la tx del TxRunner para
// que orden y líneas queden en la misma transacción.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta la orden y sus líneas. La atomicidad la da el Querier
// transaccional con el que se construyó el repo.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order, items []entity.OrderItem) error {
	query := `
		INSERT INTO orders (reference, company_id, status, order_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		order.Reference, order.CompanyID, order.Status, order.OrderDate, order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	for i := range items {
		items[i].OrderID = order.ID
		err := r.q.QueryRow(ctx, itemQuery,
			items[i].OrderID, items[i].ProductID, items[i].Quantity, items[i].UnitPrice,
		).Scan(&items[i].ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden con sus líneas. (nil, nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, []entity.OrderItem, error) {
	query := `
		SELECT id, reference, company_id, status, order_date, created_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Reference, &o.CompanyID, &o.Status, &o.OrderDate, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get order: %w", err)
	}

	itemQuery := `
		SELECT id, order_id, product_id, quantity, unit_price
		FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, itemQuery, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return &o, items, rows.Err()
}
