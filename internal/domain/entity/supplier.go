package entity

import (
	"encoding/json"
	"time"
)

// Supplier representa un proveedor. Contact es un JSONB de forma heterogénea:
// el email puede venir bajo distintas llaves según el origen del dato.
type Supplier struct {
	ID        int64
	Name      string
	Contact   json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// contactEmailKeys llaves conocidas donde puede venir el email, en orden de precedencia.
var contactEmailKeys = []string{"contact_email", "email", "contactEmail"}

// ContactEmail extrae el email del blob de contacto probando las llaves conocidas
// en orden fijo. Devuelve nil si ninguna está presente o el blob no es un objeto.
func (s *Supplier) ContactEmail() *string {
	if len(s.Contact) == 0 {
		return nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(s.Contact, &m); err != nil {
		return nil
	}
	for _, key := range contactEmailKeys {
		raw, ok := m[key]
		if !ok {
			continue
		}
		var v string
		if err := json.Unmarshal(raw, &v); err != nil || v == "" {
			continue
		}
		return &v
	}
	return nil
}

// ProductSupplier asocia productos con proveedores (muchos a muchos).
// Priority menor = proveedor preferido; nil se resuelve al final, desempatado por ID.
type ProductSupplier struct {
	ID         int64
	ProductID  int64
	SupplierID int64
	Priority   *int64
	CreatedAt  time.Time
}
