package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmarulanda/stockalert-api/internal/application/dto"
	"github.com/jmarulanda/stockalert-api/internal/domain"
	"github.com/jmarulanda/stockalert-api/internal/domain/entity"
	"github.com/jmarulanda/stockalert-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	bySKU   map[string]*entity.Product
	created []*entity.Product
	nextID  int64
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.nextID++
	p.ID = f.nextID
	f.created = append(f.created, p)
	return nil
}

func (f *fakeProductRepo) GetByID(context.Context, int64) (*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) GetByCompanyAndSKU(_ context.Context, _ int64, sku string) (*entity.Product, error) {
	return f.bySKU[sku], nil
}

func (f *fakeProductRepo) ListByCompany(context.Context, int64, int, int) ([]*entity.Product, error) {
	return nil, nil
}

type fakeWarehouseRepo struct {
	byID map[int64]*entity.Warehouse
}

func (f *fakeWarehouseRepo) Create(context.Context, *entity.Warehouse) error { return nil }
func (f *fakeWarehouseRepo) GetByID(_ context.Context, id int64) (*entity.Warehouse, error) {
	return f.byID[id], nil
}
func (f *fakeWarehouseRepo) ListByCompany(context.Context, int64) ([]*entity.Warehouse, error) {
	return nil, nil
}

type fakeInventoryRepo struct {
	upserts []*entity.InventoryLevel
}

func (f *fakeInventoryRepo) Upsert(_ context.Context, level *entity.InventoryLevel) error {
	f.upserts = append(f.upserts, level)
	return nil
}
func (f *fakeInventoryRepo) Get(context.Context, int64, int64) (*entity.InventoryLevel, error) {
	return nil, nil
}
func (f *fakeInventoryRepo) ListCompanyStock(context.Context, int64) ([]repository.StockRow, error) {
	return nil, nil
}

// fakeTxRunner ejecuta el callback con los mismos fakes, sin transacción real.
type fakeTxRunner struct {
	products  *fakeProductRepo
	inventory *fakeInventoryRepo
	runs      int
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	orderRepo repository.OrderRepository,
) error) error {
	f.runs++
	return fn(f.products, f.inventory, nil)
}

func newProductFixture() (*ProductUseCase, *fakeProductRepo, *fakeInventoryRepo, *fakeTxRunner) {
	products := &fakeProductRepo{bySKU: map[string]*entity.Product{}}
	inventory := &fakeInventoryRepo{}
	warehouses := &fakeWarehouseRepo{byID: map[int64]*entity.Warehouse{
		7: {ID: 7, CompanyID: 1, Name: "Bodega Central"},
		9: {ID: 9, CompanyID: 2, Name: "Bodega ajena"},
	}}
	tx := &fakeTxRunner{products: products, inventory: inventory}
	return NewProductUseCase(products, warehouses, tx), products, inventory, tx
}

func price(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func i64(v int64) *int64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Creación de producto
// ──────────────────────────────────────────────────────────────────────────────

// Producto con stock inicial: producto e inventario quedan en la misma transacción.
func TestProductCreate_ConStockInicial(t *testing.T) {
	uc, products, inventory, tx := newProductFixture()

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		CompanyID:        1,
		SKU:              "CAF-500",
		Name:             "Café premium 500g",
		Price:            price("18500.00"),
		ReorderThreshold: i64(25),
		WarehouseID:      i64(7),
		InitialQuantity:  i64(120),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, tx.runs)
	require.Len(t, products.created, 1)
	require.Len(t, inventory.upserts, 1)

	level := inventory.upserts[0]
	assert.Equal(t, out.ID, level.ProductID)
	assert.Equal(t, int64(7), level.WarehouseID)
	assert.Equal(t, int64(120), level.Quantity)

	require.NotNil(t, out.ReorderThreshold)
	assert.Equal(t, int64(25), *out.ReorderThreshold)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("18500.00")))
}

// Sin bodega ni cantidad inicial se crea solo el producto.
func TestProductCreate_SinStockInicial(t *testing.T) {
	uc, products, inventory, _ := newProductFixture()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		CompanyID: 1,
		SKU:       "AZU-1K",
		Name:      "Azúcar 1kg",
		Price:     price("4200"),
	})
	require.NoError(t, err)
	assert.Len(t, products.created, 1)
	assert.Empty(t, inventory.upserts)
}

// SKU repetido dentro de la empresa -> ErrDuplicate, sin tocar la transacción.
func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc, products, _, tx := newProductFixture()
	products.bySKU["CAF-500"] = &entity.Product{ID: 99, CompanyID: 1, SKU: "CAF-500"}

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		CompanyID: 1,
		SKU:       "CAF-500",
		Name:      "Duplicado",
		Price:     price("100"),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 0, tx.runs)
}

// Validaciones de entrada: campos obligatorios, precio negativo, umbral negativo,
// stock inicial incompleto o negativo.
func TestProductCreate_EntradasInvalidas(t *testing.T) {
	valid := func() dto.CreateProductRequest {
		return dto.CreateProductRequest{
			CompanyID: 1, SKU: "SKU-1", Name: "Producto", Price: price("100"),
		}
	}
	cases := []struct {
		name   string
		mutate func(*dto.CreateProductRequest)
	}{
		{"sin company_id", func(r *dto.CreateProductRequest) { r.CompanyID = 0 }},
		{"sin sku", func(r *dto.CreateProductRequest) { r.SKU = "  " }},
		{"sin nombre", func(r *dto.CreateProductRequest) { r.Name = "" }},
		{"sin precio", func(r *dto.CreateProductRequest) { r.Price = nil }},
		{"precio negativo", func(r *dto.CreateProductRequest) { r.Price = price("-1") }},
		{"umbral negativo", func(r *dto.CreateProductRequest) { r.ReorderThreshold = i64(-1) }},
		{"bodega sin cantidad", func(r *dto.CreateProductRequest) { r.WarehouseID = i64(7) }},
		{"cantidad sin bodega", func(r *dto.CreateProductRequest) { r.InitialQuantity = i64(10) }},
		{"cantidad negativa", func(r *dto.CreateProductRequest) {
			r.WarehouseID = i64(7)
			r.InitialQuantity = i64(-5)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _, _, tx := newProductFixture()
			in := valid()
			tc.mutate(&in)
			_, err := uc.Create(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, 0, tx.runs)
		})
	}
}

// La bodega del stock inicial debe existir y ser de la misma empresa.
func TestProductCreate_BodegaInvalida(t *testing.T) {
	t.Run("bodega inexistente", func(t *testing.T) {
		uc, _, _, _ := newProductFixture()
		_, err := uc.Create(context.Background(), dto.CreateProductRequest{
			CompanyID: 1, SKU: "S", Name: "P", Price: price("1"),
			WarehouseID: i64(404), InitialQuantity: i64(10),
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("bodega de otra empresa", func(t *testing.T) {
		uc, _, _, _ := newProductFixture()
		_, err := uc.Create(context.Background(), dto.CreateProductRequest{
			CompanyID: 1, SKU: "S", Name: "P", Price: price("1"),
			WarehouseID: i64(9), InitialQuantity: i64(10),
		})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

// Los timestamps se fijan al crear.
func TestProductCreate_Timestamps(t *testing.T) {
	uc, products, _, _ := newProductFixture()
	before := time.Now()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		CompanyID: 1, SKU: "SKU-T", Name: "Con tiempos", Price: price("10"),
	})
	require.NoError(t, err)

	created := products.created[0]
	assert.False(t, created.CreatedAt.Before(before))
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}
