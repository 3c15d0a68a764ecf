package alerts

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/jmarulanda/stockalert-api/internal/application/dto"
	"github.com/jmarulanda/stockalert-api/internal/domain/entity"
	"github.com/jmarulanda/stockalert-api/internal/domain/repository"
)

// Config parámetros del motor, inyectados en la construcción (nunca globales).
type Config struct {
	WindowDays       int      // ventana de ventas recientes en días
	DefaultThreshold int64    // punto de reorden cuando el producto no define uno
	SaleStatuses     []string // estados de orden que cuentan como venta
}

// LowStockUseCase genera el reporte de alertas de bajo stock para una empresa.
// Combina ventas recientes agregadas, niveles de inventario, umbrales por producto
// y resolución de proveedor preferido. Solo lee: es idempotente por petición.
type LowStockUseCase struct {
	sales     repository.SalesRepository
	inventory repository.InventoryRepository
	suppliers repository.SupplierRepository
	cfg       Config
	now       func() time.Time
}

// NewLowStockUseCase construye el motor de alertas.
func NewLowStockUseCase(
	sales repository.SalesRepository,
	inventory repository.InventoryRepository,
	suppliers repository.SupplierRepository,
	cfg Config,
) *LowStockUseCase {
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = 30
	}
	if len(cfg.SaleStatuses) == 0 {
		cfg.SaleStatuses = []string{entity.OrderStatusCompleted, entity.OrderStatusShipped}
	}
	return &LowStockUseCase{
		sales:     sales,
		inventory: inventory,
		suppliers: suppliers,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Generate produce el reporte ordenado de alertas para la empresa.
// Tres consultas estrictamente secuenciales, cada una dependiente de la anterior:
// agregado de ventas → escaneo de inventario → resolución de proveedores.
// Las dos últimas se omiten cuando el paso previo no deja candidatos.
func (uc *LowStockUseCase) Generate(ctx context.Context, companyID int64) (*dto.LowStockReportResponse, error) {
	// 1. Unidades vendidas por producto dentro de la ventana (una sola consulta GROUP BY).
	//    Límite inferior inclusivo: order_date >= now - window.
	since := uc.now().AddDate(0, 0, -uc.cfg.WindowDays)
	sold, err := uc.sales.SumRecentByProduct(ctx, companyID, since, uc.cfg.SaleStatuses)
	if err != nil {
		return nil, err
	}
	if len(sold) == 0 {
		// Sin ventas recientes no puede haber alertas: corto circuito sin tocar
		// inventario ni proveedores.
		return emptyReport(), nil
	}

	// 2. Inventario completo de la empresa con atributos de producto y bodega.
	rows, err := uc.inventory.ListCompanyStock(ctx, companyID)
	if err != nil {
		return nil, err
	}

	// 3. Filtro y proyección: solo productos con venta positiva reciente y stock
	//    por debajo de su umbral. Stock muerto nunca alerta, aunque esté bajo.
	alerts := make([]dto.LowStockAlertDTO, 0, len(rows))
	for _, row := range rows {
		qtySold, ok := sold[row.ProductID]
		if !ok || qtySold <= 0 {
			continue
		}
		threshold := uc.thresholdFor(row.ReorderThreshold)
		if row.Quantity >= threshold {
			continue
		}
		alerts = append(alerts, dto.LowStockAlertDTO{
			ProductID:         row.ProductID,
			ProductName:       row.ProductName,
			SKU:               row.SKU,
			WarehouseID:       row.WarehouseID,
			WarehouseName:     row.WarehouseName,
			CurrentStock:      row.Quantity,
			Threshold:         threshold,
			DaysUntilStockout: daysUntilStockout(row.Quantity, qtySold, uc.cfg.WindowDays),
		})
	}
	if len(alerts) == 0 {
		return emptyReport(), nil
	}

	// 4. Proveedor preferido por producto (una sola consulta para todo el set).
	supplierByProduct, err := uc.resolveSuppliers(ctx, alerts)
	if err != nil {
		return nil, err
	}
	for i := range alerts {
		alerts[i].Supplier = supplierByProduct[alerts[i].ProductID]
	}

	// 5. Orden ascendente por días hasta quiebre; null al final (quiebre "infinito").
	//    Los empates conservan el orden del escaneo (sort estable).
	sort.SliceStable(alerts, func(i, j int) bool {
		a, b := alerts[i].DaysUntilStockout, alerts[j].DaysUntilStockout
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a < *b
	})

	return &dto.LowStockReportResponse{Alerts: alerts, TotalAlerts: len(alerts)}, nil
}

// thresholdFor devuelve el umbral del producto si está definido y no es negativo,
// o el umbral por defecto configurado.
func (uc *LowStockUseCase) thresholdFor(productThreshold *int64) int64 {
	if productThreshold != nil && *productThreshold >= 0 {
		return *productThreshold
	}
	return uc.cfg.DefaultThreshold
}

// daysUntilStockout proyecta el quiebre de stock desde el promedio diario de venta.
// ceil: un quiebre a mitad de día cuenta como ese día completo de margen.
// Con promedio cero (no debería ocurrir: el filtro exige venta positiva) devuelve nil.
func daysUntilStockout(stock, qtySold int64, windowDays int) *int64 {
	avgDaily := float64(qtySold) / float64(windowDays)
	if avgDaily <= 0 {
		return nil
	}
	days := int64(math.Ceil(float64(stock) / avgDaily))
	return &days
}

// resolveSuppliers trae las asociaciones de todos los productos candidatos en una
// consulta y se queda con la primera por producto (priority ASC, nulls al final,
// desempate por id de asociación; ese orden lo garantiza el repositorio).
func (uc *LowStockUseCase) resolveSuppliers(ctx context.Context, alerts []dto.LowStockAlertDTO) (map[int64]*dto.SupplierRefDTO, error) {
	seen := make(map[int64]struct{}, len(alerts))
	productIDs := make([]int64, 0, len(alerts))
	for _, a := range alerts {
		if _, ok := seen[a.ProductID]; ok {
			continue
		}
		seen[a.ProductID] = struct{}{}
		productIDs = append(productIDs, a.ProductID)
	}

	links, err := uc.suppliers.ListLinksForProducts(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	result := make(map[int64]*dto.SupplierRefDTO, len(productIDs))
	for _, link := range links {
		if _, ok := result[link.ProductID]; ok {
			continue
		}
		s := entity.Supplier{ID: link.SupplierID, Name: link.Name, Contact: link.Contact}
		result[link.ProductID] = &dto.SupplierRefDTO{
			ID:           link.SupplierID,
			Name:         link.Name,
			ContactEmail: s.ContactEmail(),
		}
	}
	return result, nil
}

func emptyReport() *dto.LowStockReportResponse {
	return &dto.LowStockReportResponse{Alerts: []dto.LowStockAlertDTO{}, TotalAlerts: 0}
}
