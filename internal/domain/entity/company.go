package entity

import "time"

// Company representa una empresa cliente del producto (tenant lógico).
// Todo el resto del modelo cuelga de CompanyID vía productos y bodegas.
type Company struct {
	ID        int64
	Name      string
	NIT       string // identificación tributaria, única
	CreatedAt time.Time
	UpdatedAt time.Time
}
