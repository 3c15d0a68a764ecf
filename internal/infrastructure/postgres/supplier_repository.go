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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Acepta pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor y asigna el ID generado.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (name, contact, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		supplier.Name, supplier.Contact, supplier.CreatedAt, supplier.UpdatedAt,
	).Scan(&supplier.ID)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	query := `
		SELECT id, name, contact, created_at, updated_at
		FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Contact, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Link asocia proveedor y producto. El par (product_id, supplier_id) es único.
func (r *SupplierRepo) Link(ctx context.Context, link *entity.ProductSupplier) error {
	query := `
		INSERT INTO product_suppliers (product_id, supplier_id, priority, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		link.ProductID, link.SupplierID, link.Priority, link.CreatedAt,
	).Scan(&link.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("link supplier: %w", err)
	}
	return nil
}

// ListLinksForProducts trae en una consulta todas las asociaciones de los
// productos dados con los datos del proveedor. El orden es el de resolución:
// priority ASC con NULLS LAST, desempate estable por id de asociación.
func (r *SupplierRepo) ListLinksForProducts(ctx context.Context, productIDs []int64) ([]repository.SupplierLink, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT ps.id, ps.product_id, s.id, s.name, s.contact, ps.priority
		FROM product_suppliers ps
		JOIN suppliers s ON s.id = ps.supplier_id
		WHERE ps.product_id = ANY($1)
		ORDER BY ps.priority ASC NULLS LAST, ps.id ASC`
	rows, err := r.q.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list supplier links: %w", err)
	}
	defer rows.Close()
	var list []repository.SupplierLink
	for rows.Next() {
		var link repository.SupplierLink
		if err := rows.Scan(
			&link.LinkID, &link.ProductID, &link.SupplierID,
			&link.Name, &link.Contact, &link.Priority,
		); err != nil {
			return nil, fmt.Errorf("scan supplier link: %w", err)
		}
		list = append(list, link)
	}
	return list, rows.Err()
}
