package repository

import (
	"context"
	"time"
)

// SalesRepository define el puerto de lectura de ventas agregadas.
// La agregación vive en la base de datos: una sola consulta GROUP BY, nunca N+1.
type SalesRepository interface {
	// SumRecentByProduct suma las unidades vendidas por producto para la empresa,
	// contando solo órdenes cuyo estado está en statuses y cuya fecha cumple
	// order_date >= since (límite inferior inclusivo; el superior queda abierto).
	// Productos sin ventas en la ventana están ausentes del mapa, no en 0.
	SumRecentByProduct(ctx context.Context, companyID int64, since time.Time, statuses []string) (map[int64]int64, error)
}
