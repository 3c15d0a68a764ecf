package dto

import (
	"encoding/json"
	"time"
)

// CreateSupplierRequest body para POST /api/suppliers. Contact es un objeto JSON
// libre; el email se busca luego bajo llaves conocidas (contact_email, email, ...).
type CreateSupplierRequest struct {
	Name    string          `json:"name"`
	Contact json.RawMessage `json:"contact"`
}

// SupplierResponse representación HTTP de un proveedor.
type SupplierResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Contact   json.RawMessage `json:"contact,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// LinkSupplierRequest body para POST /api/products/{id}/suppliers.
type LinkSupplierRequest struct {
	SupplierID int64  `json:"supplier_id"`
	Priority   *int64 `json:"priority"`
}

// ProductSupplierResponse una asociación producto-proveedor resuelta.
type ProductSupplierResponse struct {
	SupplierID int64  `json:"supplier_id"`
	Name       string `json:"name"`
	Priority   *int64 `json:"priority"`
}
