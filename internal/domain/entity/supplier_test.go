package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El email se busca bajo llaves conocidas en orden fijo de precedencia:
// contact_email, email, contactEmail.
func TestSupplier_ContactEmail_Precedencia(t *testing.T) {
	cases := []struct {
		name    string
		contact string
		want    string
	}{
		{"contact_email gana sobre email", `{"contact_email":"a@x.co","email":"b@x.co"}`, "a@x.co"},
		{"email gana sobre contactEmail", `{"email":"b@x.co","contactEmail":"c@x.co"}`, "b@x.co"},
		{"contactEmail como último recurso", `{"contactEmail":"c@x.co"}`, "c@x.co"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Supplier{Contact: json.RawMessage(tc.contact)}
			got := s.ContactEmail()
			require.NotNil(t, got)
			assert.Equal(t, tc.want, *got)
		})
	}
}

// Sin llave conocida, con blob vacío o malformado el email es nil, nunca error.
func TestSupplier_ContactEmail_Ausente(t *testing.T) {
	cases := []struct {
		name    string
		contact string
	}{
		{"sin llaves conocidas", `{"telefono":"+57 300 1234567","direccion":"Calle 10"}`},
		{"valor vacío", `{"email":""}`},
		{"valor no string", `{"email":42}`},
		{"objeto vacío", `{}`},
		{"blob nulo", ``},
		{"no es objeto", `"texto suelto"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Supplier{}
			if tc.contact != "" {
				s.Contact = json.RawMessage(tc.contact)
			}
			assert.Nil(t, s.ContactEmail())
		})
	}
}
