package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmarulanda/stockalert-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo implementación de SalesRepository sobre PostgreSQL.
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador. Acepta pool o tx (Querier).
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// SumRecentByProduct suma unidades vendidas por producto en una sola consulta
// GROUP BY. La ventana y los estados entran como parámetros, nunca concatenados
// al SQL. Límite inferior inclusivo (order_date >= since); superior abierto.
// Cantidades NULL cuentan como 0; productos sin ventas quedan fuera del mapa.
func (r *SalesRepo) SumRecentByProduct(ctx context.Context, companyID int64, since time.Time, statuses []string) (map[int64]int64, error) {
	query := `
		SELECT oi.product_id, SUM(COALESCE(oi.quantity, 0)) AS units_sold
		FROM order_items oi
		JOIN orders   o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		WHERE o.company_id = $1
		  AND p.company_id = $1
		  AND o.status = ANY($2)
		  AND o.order_date >= $3
		GROUP BY oi.product_id`
	rows, err := r.q.Query(ctx, query, companyID, statuses, since)
	if err != nil {
		return nil, fmt.Errorf("sum recent sales: %w", err)
	}
	defer rows.Close()

	result := make(map[int64]int64)
	for rows.Next() {
		var productID, units int64
		if err := rows.Scan(&productID, &units); err != nil {
			return nil, fmt.Errorf("scan sales row: %w", err)
		}
		result[productID] = units
	}
	return result, rows.Err()
}
