package alerts

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmarulanda/stockalert-api/internal/domain/entity"
	"github.com/jmarulanda/stockalert-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorios
// ──────────────────────────────────────────────────────────────────────────────

type fakeSalesRepo struct {
	sold     map[int64]int64
	err      error
	calls    int
	gotSince time.Time
	gotStats []string
}

func (f *fakeSalesRepo) SumRecentByProduct(_ context.Context, _ int64, since time.Time, statuses []string) (map[int64]int64, error) {
	f.calls++
	f.gotSince = since
	f.gotStats = statuses
	return f.sold, f.err
}

type fakeInventoryRepo struct {
	rows  []repository.StockRow
	err   error
	calls int
}

func (f *fakeInventoryRepo) Upsert(context.Context, *entity.InventoryLevel) error {
	return errors.New("no usado en estos tests")
}

func (f *fakeInventoryRepo) Get(context.Context, int64, int64) (*entity.InventoryLevel, error) {
	return nil, errors.New("no usado en estos tests")
}

func (f *fakeInventoryRepo) ListCompanyStock(context.Context, int64) ([]repository.StockRow, error) {
	f.calls++
	return f.rows, f.err
}

type fakeSupplierRepo struct {
	links  []repository.SupplierLink
	err    error
	calls  int
	gotIDs []int64
}

func (f *fakeSupplierRepo) Create(context.Context, *entity.Supplier) error {
	return errors.New("no usado en estos tests")
}

func (f *fakeSupplierRepo) GetByID(context.Context, int64) (*entity.Supplier, error) {
	return nil, errors.New("no usado en estos tests")
}

func (f *fakeSupplierRepo) Link(context.Context, *entity.ProductSupplier) error {
	return errors.New("no usado en estos tests")
}

func (f *fakeSupplierRepo) ListLinksForProducts(_ context.Context, productIDs []int64) ([]repository.SupplierLink, error) {
	f.calls++
	f.gotIDs = productIDs
	return f.links, f.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testConfig() Config {
	return Config{WindowDays: 30, DefaultThreshold: 20}
}

func newEngine(sales *fakeSalesRepo, inv *fakeInventoryRepo, sup *fakeSupplierRepo) *LowStockUseCase {
	return NewLowStockUseCase(sales, inv, sup, testConfig())
}

func i64(v int64) *int64 { return &v }

func stockRow(productID int64, name, sku string, threshold *int64, warehouseID int64, warehouseName string, qty int64) repository.StockRow {
	return repository.StockRow{
		InventoryID:      productID * 100,
		ProductID:        productID,
		ProductName:      name,
		SKU:              sku,
		ReorderThreshold: threshold,
		WarehouseID:      warehouseID,
		WarehouseName:    &warehouseName,
		Quantity:         qty,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Corto circuito y secuencia de consultas
// ──────────────────────────────────────────────────────────────────────────────

// Sin ventas recientes el reporte es vacío y no se consultan inventario ni proveedores.
func TestGenerate_SinVentasRecientes_ReporteVacio(t *testing.T) {
	sales := &fakeSalesRepo{sold: map[int64]int64{}}
	inv := &fakeInventoryRepo{}
	sup := &fakeSupplierRepo{}

	report, err := newEngine(sales, inv, sup).Generate(context.Background(), 1)
	require.NoError(t, err)

	assert.NotNil(t, report.Alerts, "alerts debe serializar como [] y no como null")
	assert.Empty(t, report.Alerts)
	assert.Equal(t, 0, report.TotalAlerts)
	assert.Equal(t, 0, inv.calls, "no debe escanear inventario sin ventas")
	assert.Equal(t, 0, sup.calls, "no debe resolver proveedores sin ventas")
}

// Con ventas pero sin candidatos bajo umbral tampoco se consultan proveedores.
func TestGenerate_SinCandidatos_NoResuelveProveedores(t *testing.T) {
	sales := &fakeSalesRepo{sold: map[int64]int64{10: 10}}
	inv := &fakeInventoryRepo{rows: []repository.StockRow{
		stockRow(10, "Tornillo M4", "SKU-10", i64(20), 1, "Bodega Norte", 25),
	}}
	sup := &fakeSupplierRepo{}

	report, err := newEngine(sales, inv, sup).Generate(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalAlerts)
	assert.Equal(t, 0, sup.calls)
}

// La ventana se calcula como now - WindowDays (límite inferior inclusivo) y los
// estados configurados llegan a la consulta.
func TestGenerate_VentanaYEstados(t *testing.T) {
	sales := &fakeSalesRepo{sold: map[int64]int64{}}
	engine := newEngine(sales, &fakeInventoryRepo{}, &fakeSupplierRepo{})
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	engine.now = func() time.Time { return fixed }

	_, err := engine.Generate(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, fixed.AddDate(0, 0, -30), sales.gotSince)
	assert.Equal(t, []string{entity.OrderStatusCompleted, entity.OrderStatusShipped}, sales.gotStats)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro y proyección
// ──────────────────────────────────────────────────────────────────────────────

// Escenario A: umbral 20, stock 5, 60 unidades en 30 días -> promedio 2/día,
// quiebre en ceil(5/2) = 3 días.
func TestGenerate_EscenarioA_AlertaConProyeccion(t *testing.T) {
	sales := &fakeSalesRepo{sold: map[int64]int64{1: 60}}
	inv := &fakeInventoryRepo{rows: []repository.StockRow{
		stockRow(1, "Café premium 500g", "CAF-500", i64(20), 7, "Bodega Central", 5),
	}}
	sup := &fakeSupplierRepo{}

	report, err := newEngine(sales, inv, sup).Generate(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 1, report.TotalAlerts)

	a := report.Alerts[0]
	assert.Equal(t, int64(1), a.ProductID)
	assert.Equal(t, "Café premium 500g", a.ProductName)
	assert.Equal(t, "CAF-500", a.SKU)
	assert.Equal(t, int64(7), a.WarehouseID)
	require.NotNil(t, a.WarehouseName)
	assert.Equal(t, "Bodega Central", *a.WarehouseName)
	assert.Equal(t, int64(5), a.CurrentStock)
	assert.Equal(t, int64(20), a.Threshold)
	require.NotNil(t, a.DaysUntilStockout)
	assert.Equal(t, int64(3), *a.DaysUntilStockout)
}

// Escenario B: stock 25 >= umbral 20 -> sin alerta aunque haya ventas.
func TestGenerate_EscenarioB_StockSobreUmbral(t *testing.T) {
	sales := &fakeSalesRepo{sold: map[int64]int64{2: 10}}
	inv := &fakeInventoryRepo{rows: []repository.StockRow{
		stockRow(2, "Azúcar 1kg", "AZU-1K", i64(20), 7, "Bodega Central", 25),
	}}

	report, err := newEngine(sales, inv, &fakeSupplierRepo{}).Generate(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalAlerts)
}

// Escenario C: sin ventas en la ventana no hay alerta aunque el stock (15) esté
// bajo el umbral por defecto (20). Stock muerto no alerta.
func TestGenerate_EscenarioC_StockMuertoNoAlerta(t *testing.T) {
	sales := &fakeSalesRepo{sold: map[int64]int64{99: 5}} // otro producto mantiene el mapa no vacío
	inv := &fakeInventoryRepo{rows: []repository.StockRow{
		stockRow(3, "Sal marina", "SAL-01", nil, 7, "Bodega Central", 15),
	}}

	report, err := newEngine(sales, inv, &fakeSupplierRepo{}).Generate(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalAlerts)
}

// Umbral nil o negativo usa el por defecto; el límite es estricto (stock < umbral).
func TestGenerate_UmbralPorDefectoYLimiteEstricto(t *testing.T) {
	sales := &fakeSalesRepo{sold: map[int64]int64{1: 30, 2: 30, 3: 30}}
	inv := &fakeInventoryRepo{rows: []repository.StockRow{
		stockRow(1, "Sin umbral propio", "A", nil, 7, "B1", 19),      // 19 < 20 -> alerta
		stockRow(2, "Umbral negativo", "B", i64(-5), 7, "B1", 19),    // inválido -> usa 20 -> alerta
		stockRow(3, "En el límite", "C", i64(20), 7, "B1", 20),       // 20 >= 20 -> fuera
	}}

	report, err := newEngine(sales, inv, &fakeSupplierRepo{}).Generate(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 2, report.TotalAlerts)
	for _, a := range report.Alerts {
		assert.Less(t, a.CurrentStock, a.Threshold)
		assert.Equal(t, int64(20), a.Threshold)
	}
}

// daysUntilStockout: ceil para quiebres a mitad de día y nil con promedio cero.
func TestDaysUntilStockout(t *testing.T) {
	cases := []struct {
		name       string
		stock      int64
		sold       int64
		windowDays int
		want       *int64
	}{
		{"promedio exacto", 5, 30, 30, i64(5)},       // 1/día -> 5
		{"redondeo hacia arriba", 7, 60, 30, i64(4)}, // 2/día -> ceil(3.5) = 4
		{"stock cero", 0, 60, 30, i64(0)},
		{"sin ventas", 5, 0, 30, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := daysUntilStockout(tc.stock, tc.sold, tc.windowDays)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.want, *got)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden del reporte
// ──────────────────────────────────────────────────────────────────────────────

// Ascendente por días hasta quiebre; empates conservan el orden del escaneo.
func TestGenerate_OrdenAscendenteYEstable(t *testing.T) {
	// 30 días de ventana: vendidos 30 -> 1/día. Días = stock.
	sales := &fakeSalesRepo{sold: map[int64]int64{1: 30, 2: 30, 3: 30, 4: 30}}
	inv := &fakeInventoryRepo{rows: []repository.StockRow{
		stockRow(1, "P1", "S1", i64(20), 7, "B1", 9),
		stockRow(2, "P2", "S2", i64(20), 7, "B1", 3),
		stockRow(3, "P3", "S3", i64(20), 8, "B2", 9), // empata con P1: debe quedar después
		stockRow(4, "P4", "S4", i64(20), 7, "B1", 1),
	}}

	report, err := newEngine(sales, inv, &fakeSupplierRepo{}).Generate(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 4, report.TotalAlerts)
	assert.Equal(t, len(report.Alerts), report.TotalAlerts)

	gotProducts := []int64{
		report.Alerts[0].ProductID,
		report.Alerts[1].ProductID,
		report.Alerts[2].ProductID,
		report.Alerts[3].ProductID,
	}
	assert.Equal(t, []int64{4, 2, 1, 3}, gotProducts)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución de proveedores
// ──────────────────────────────────────────────────────────────────────────────

// Escenario D: dos proveedores con prioridades 2 y 1 -> gana el de prioridad 1.
// El repositorio entrega los links ya ordenados; el motor toma el primero por producto.
func TestGenerate_EscenarioD_ProveedorPreferido(t *testing.T) {
	sales := &fakeSalesRepo{sold: map[int64]int64{1: 30}}
	inv := &fakeInventoryRepo{rows: []repository.StockRow{
		stockRow(1, "P1", "S1", i64(20), 7, "B1", 5),
	}}
	sup := &fakeSupplierRepo{links: []repository.SupplierLink{
		{LinkID: 11, ProductID: 1, SupplierID: 200, Name: "Proveedor Uno", Priority: i64(1),
			Contact: json.RawMessage(`{"email":"uno@proveedores.co"}`)},
		{LinkID: 10, ProductID: 1, SupplierID: 100, Name: "Proveedor Dos", Priority: i64(2),
			Contact: json.RawMessage(`{"email":"dos@proveedores.co"}`)},
	}}

	report, err := newEngine(sales, inv, sup).Generate(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 1, report.TotalAlerts)

	s := report.Alerts[0].Supplier
	require.NotNil(t, s)
	assert.Equal(t, int64(200), s.ID)
	assert.Equal(t, "Proveedor Uno", s.Name)
	require.NotNil(t, s.ContactEmail)
	assert.Equal(t, "uno@proveedores.co", *s.ContactEmail)
}

// Producto sin asociación -> supplier null; email ausente -> contact_email null.
// Los IDs de producto llegan al repositorio sin duplicados.
func TestGenerate_ProveedorNuloYEmailNulo(t *testing.T) {
	sales := &fakeSalesRepo{sold: map[int64]int64{1: 30, 2: 30}}
	inv := &fakeInventoryRepo{rows: []repository.StockRow{
		stockRow(1, "P1", "S1", i64(20), 7, "B1", 5),
		stockRow(1, "P1", "S1", i64(20), 8, "B2", 4), // mismo producto en otra bodega
		stockRow(2, "P2", "S2", i64(20), 7, "B1", 6),
	}}
	sup := &fakeSupplierRepo{links: []repository.SupplierLink{
		{LinkID: 1, ProductID: 1, SupplierID: 300, Name: "Sin Email",
			Contact: json.RawMessage(`{"telefono":"+57 1 2345678"}`)},
	}}

	report, err := newEngine(sales, inv, sup).Generate(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 3, report.TotalAlerts)

	assert.ElementsMatch(t, []int64{1, 2}, sup.gotIDs, "IDs deduplicados")

	for _, a := range report.Alerts {
		switch a.ProductID {
		case 1:
			require.NotNil(t, a.Supplier)
			assert.Equal(t, "Sin Email", a.Supplier.Name)
			assert.Nil(t, a.Supplier.ContactEmail)
		case 2:
			assert.Nil(t, a.Supplier)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Propagación de errores
// ──────────────────────────────────────────────────────────────────────────────

// Un fallo en cualquier paso sale como un único error, sin respuestas parciales.
func TestGenerate_ErroresDePasos(t *testing.T) {
	boom := errors.New("db caída")

	t.Run("fallo en ventas", func(t *testing.T) {
		engine := newEngine(&fakeSalesRepo{err: boom}, &fakeInventoryRepo{}, &fakeSupplierRepo{})
		report, err := engine.Generate(context.Background(), 1)
		assert.Nil(t, report)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("fallo en inventario", func(t *testing.T) {
		engine := newEngine(
			&fakeSalesRepo{sold: map[int64]int64{1: 10}},
			&fakeInventoryRepo{err: boom},
			&fakeSupplierRepo{},
		)
		report, err := engine.Generate(context.Background(), 1)
		assert.Nil(t, report)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("fallo en proveedores", func(t *testing.T) {
		engine := newEngine(
			&fakeSalesRepo{sold: map[int64]int64{1: 30}},
			&fakeInventoryRepo{rows: []repository.StockRow{
				stockRow(1, "P1", "S1", i64(20), 7, "B1", 5),
			}},
			&fakeSupplierRepo{err: boom},
		)
		report, err := engine.Generate(context.Background(), 1)
		assert.Nil(t, report)
		assert.ErrorIs(t, err, boom)
	})
}
