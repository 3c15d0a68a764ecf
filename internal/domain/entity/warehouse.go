package entity

import "time"

// Warehouse representa una bodega o sucursal donde se almacena inventario.
// Pertenece a exactamente una empresa; las alertas se filtran por la empresa de la bodega.
type Warehouse struct {
	ID        int64
	CompanyID int64
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
