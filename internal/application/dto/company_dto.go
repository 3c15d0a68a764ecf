package dto

import "time"

// CreateCompanyRequest body para POST /api/companies.
type CreateCompanyRequest struct {
	Name string `json:"name"`
	NIT  string `json:"nit"`
}

// CompanyResponse representación HTTP de una empresa.
type CompanyResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	NIT       string    `json:"nit"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Total int               `json:"total"`
}
