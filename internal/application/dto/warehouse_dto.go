package dto

import "time"

// CreateWarehouseRequest body para POST /api/companies/{companyId}/warehouses.
type CreateWarehouseRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// WarehouseResponse representación HTTP de una bodega.
type WarehouseResponse struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"company_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WarehouseListResponse listado de bodegas de una empresa.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Total int                 `json:"total"`
}
