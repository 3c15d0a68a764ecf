package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmarulanda/stockalert-api/internal/application/alerts"
	"github.com/jmarulanda/stockalert-api/internal/domain/entity"
	"github.com/jmarulanda/stockalert-api/internal/domain/repository"
	apphttp "github.com/jmarulanda/stockalert-api/internal/interfaces/http"
	"github.com/jmarulanda/stockalert-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes y helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type stubSalesRepo struct {
	sold map[int64]int64
	err  error
}

func (s *stubSalesRepo) SumRecentByProduct(context.Context, int64, time.Time, []string) (map[int64]int64, error) {
	return s.sold, s.err
}

type stubInventoryRepo struct {
	rows []repository.StockRow
	err  error
}

func (s *stubInventoryRepo) Upsert(context.Context, *entity.InventoryLevel) error { return nil }
func (s *stubInventoryRepo) Get(context.Context, int64, int64) (*entity.InventoryLevel, error) {
	return nil, nil
}
func (s *stubInventoryRepo) ListCompanyStock(context.Context, int64) ([]repository.StockRow, error) {
	return s.rows, s.err
}

type stubSupplierRepo struct {
	links []repository.SupplierLink
}

func (s *stubSupplierRepo) Create(context.Context, *entity.Supplier) error        { return nil }
func (s *stubSupplierRepo) GetByID(context.Context, int64) (*entity.Supplier, error) { return nil, nil }
func (s *stubSupplierRepo) Link(context.Context, *entity.ProductSupplier) error   { return nil }
func (s *stubSupplierRepo) ListLinksForProducts(context.Context, []int64) ([]repository.SupplierLink, error) {
	return s.links, nil
}

// buildTestApp arma una app Fiber mínima con solo la ruta de alertas,
// usando el motor real sobre repositorios falsos.
func buildTestApp(sales *stubSalesRepo, inv *stubInventoryRepo, sup *stubSupplierRepo) *fiber.App {
	engine := alerts.NewLowStockUseCase(sales, inv, sup, alerts.Config{
		WindowDays:       30,
		DefaultThreshold: 20,
	})
	handler := apphttp.NewAlertHandler(engine, nil, logger.Nop())

	app := fiber.New()
	app.Get("/api/companies/:companyId/alerts/low-stock", handler.GetLowStock)
	return app
}

func doRequest(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func i64(v int64) *int64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Validación del path param
// ──────────────────────────────────────────────────────────────────────────────

// Escenario E: companyId malformado o no positivo -> 400 con el envelope exacto,
// sin tocar la base de datos.
func TestGetLowStock_CompanyIDInvalido(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-3", "1.5"} {
		t.Run(raw, func(t *testing.T) {
			app := buildTestApp(&stubSalesRepo{err: errors.New("no debería consultarse")}, &stubInventoryRepo{}, &stubSupplierRepo{})
			resp := doRequest(t, app, "/api/companies/"+raw+"/alerts/low-stock")
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body := decodeBody(t, resp)
			assert.Equal(t, "invalid company id", body["error"])
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Respuesta exitosa
// ──────────────────────────────────────────────────────────────────────────────

func TestGetLowStock_ReporteCompleto(t *testing.T) {
	warehouseName := "Bodega Central"
	sales := &stubSalesRepo{sold: map[int64]int64{1: 60}}
	inv := &stubInventoryRepo{rows: []repository.StockRow{{
		InventoryID:      100,
		ProductID:        1,
		ProductName:      "Café premium 500g",
		SKU:              "CAF-500",
		ReorderThreshold: i64(20),
		WarehouseID:      7,
		WarehouseName:    &warehouseName,
		Quantity:         5,
	}}}
	sup := &stubSupplierRepo{links: []repository.SupplierLink{{
		LinkID: 1, ProductID: 1, SupplierID: 42, Name: "Proveedor Uno",
		Contact: json.RawMessage(`{"contact_email":"ventas@uno.co"}`),
	}}}

	app := buildTestApp(sales, inv, sup)
	resp := doRequest(t, app, "/api/companies/1/alerts/low-stock")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	assert.Equal(t, float64(1), body["total_alerts"])
	alerts, ok := body["alerts"].([]any)
	require.True(t, ok, "alerts debe ser un arreglo")
	require.Len(t, alerts, 1)

	alert := alerts[0].(map[string]any)
	assert.Equal(t, float64(1), alert["product_id"])
	assert.Equal(t, "Café premium 500g", alert["product_name"])
	assert.Equal(t, "CAF-500", alert["sku"])
	assert.Equal(t, float64(7), alert["warehouse_id"])
	assert.Equal(t, "Bodega Central", alert["warehouse_name"])
	assert.Equal(t, float64(5), alert["current_stock"])
	assert.Equal(t, float64(20), alert["threshold"])
	assert.Equal(t, float64(3), alert["days_until_stockout"])

	supplier := alert["supplier"].(map[string]any)
	assert.Equal(t, float64(42), supplier["id"])
	assert.Equal(t, "Proveedor Uno", supplier["name"])
	assert.Equal(t, "ventas@uno.co", supplier["contact_email"])
}

// Sin ventas recientes la respuesta es exactamente {"alerts":[],"total_alerts":0}.
func TestGetLowStock_SinVentas(t *testing.T) {
	app := buildTestApp(&stubSalesRepo{sold: map[int64]int64{}}, &stubInventoryRepo{}, &stubSupplierRepo{})
	resp := doRequest(t, app, "/api/companies/1/alerts/low-stock")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(0), body["total_alerts"])
	alerts, ok := body["alerts"].([]any)
	require.True(t, ok, "alerts debe ser [] y no null")
	assert.Empty(t, alerts)
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores internos
// ──────────────────────────────────────────────────────────────────────────────

// Un fallo del data store sale como 500 con envelope genérico, sin filtrar detalle.
func TestGetLowStock_ErrorInterno(t *testing.T) {
	app := buildTestApp(&stubSalesRepo{err: errors.New("pq: connection refused")}, &stubInventoryRepo{}, &stubSupplierRepo{})
	resp := doRequest(t, app, "/api/companies/1/alerts/low-stock")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "internal server error", body["error"])
	assert.NotContains(t, body["error"], "connection refused")
}
