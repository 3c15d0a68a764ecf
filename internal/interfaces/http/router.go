package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmarulanda/stockalert-api/internal/application/alerts"
	"github.com/jmarulanda/stockalert-api/internal/application/usecase"
	"github.com/jmarulanda/stockalert-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC   *usecase.CompanyUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ProductUC   *usecase.ProductUseCase
	InventoryUC *usecase.InventoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	OrderUC     *usecase.OrderUseCase
	LowStockUC  *alerts.LowStockUseCase
	ReportPDFUC *alerts.ReportPDFUseCase
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Companies
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Log)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Recursos anidados por empresa
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.Log)
	companies.Post("/:companyId/warehouses", warehouseHandler.Create)
	companies.Get("/:companyId/warehouses", warehouseHandler.ListByCompany)

	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	companies.Get("/:companyId/products", productHandler.ListByCompany)

	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.Log)
	companies.Get("/:companyId/inventory", inventoryHandler.ListCompanyStock)

	// Alertas de bajo stock (el núcleo del producto)
	alertHandler := NewAlertHandler(deps.LowStockUC, deps.ReportPDFUC, deps.Log)
	companies.Get("/:companyId/alerts/low-stock", alertHandler.GetLowStock)
	companies.Get("/:companyId/alerts/low-stock/pdf", alertHandler.GetLowStockPDF)

	// Products
	products := api.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)

	// Supplier links por producto
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.Log)
	products.Post("/:id/suppliers", supplierHandler.Link)
	products.Get("/:id/suppliers", supplierHandler.ListForProduct)

	// Suppliers
	suppliers := api.Group("/suppliers")
	suppliers.Post("/", supplierHandler.Create)

	// Inventory
	api.Put("/inventory", inventoryHandler.Upsert)

	// Orders (ingesta para la agregación de ventas)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.Log)
	api.Post("/orders", orderHandler.Create)
	api.Get("/orders/:id", orderHandler.GetByID)
}
