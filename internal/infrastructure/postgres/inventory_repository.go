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

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Upsert crea o actualiza la fila (producto, bodega). El constraint único
// (product_id, warehouse_id) garantiza a lo sumo una fila por par.
func (r *InventoryRepo) Upsert(ctx context.Context, level *entity.InventoryLevel) error {
	query := `
		INSERT INTO inventory (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(ctx, query, level.ProductID, level.WarehouseID, level.Quantity)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("upsert inventory level: %w", err)
	}
	return nil
}

// Get obtiene el nivel de stock del par (producto, bodega). (nil, nil) si no existe.
func (r *InventoryRepo) Get(ctx context.Context, productID, warehouseID int64) (*entity.InventoryLevel, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, updated_at
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2`
	var l entity.InventoryLevel
	err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(
		&l.ID, &l.ProductID, &l.WarehouseID, &l.Quantity, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory level: %w", err)
	}
	return &l, nil
}

// ListCompanyStock devuelve todo el inventario de la empresa con atributos de
// producto y bodega, en un solo JOIN (nunca fetch por fila). Filtra por la
// empresa tanto del producto como de la bodega: inventario cruzado entre
// empresas jamás entra al reporte.
func (r *InventoryRepo) ListCompanyStock(ctx context.Context, companyID int64) ([]repository.StockRow, error) {
	query := `
		SELECT
			i.id,
			p.id           AS product_id,
			p.name         AS product_name,
			p.sku,
			p.reorder_threshold,
			w.id           AS warehouse_id,
			w.name         AS warehouse_name,
			COALESCE(i.quantity, 0) AS quantity
		FROM inventory i
		JOIN products   p ON p.id = i.product_id
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE p.company_id = $1
		  AND w.company_id = $1
		ORDER BY i.id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list company stock: %w", err)
	}
	defer rows.Close()
	var list []repository.StockRow
	for rows.Next() {
		var row repository.StockRow
		if err := rows.Scan(
			&row.InventoryID, &row.ProductID, &row.ProductName, &row.SKU,
			&row.ReorderThreshold, &row.WarehouseID, &row.WarehouseName, &row.Quantity,
		); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
