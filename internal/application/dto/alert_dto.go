package dto

// SupplierRefDTO proveedor resuelto para una alerta. ContactEmail puede ser null
// si el blob de contacto no trae email bajo ninguna llave conocida.
type SupplierRefDTO struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	ContactEmail *string `json:"contact_email"`
}

// LowStockAlertDTO una alerta de reorden para un par (producto, bodega).
type LowStockAlertDTO struct {
	ProductID         int64           `json:"product_id"`
	ProductName       string          `json:"product_name"`
	SKU               string          `json:"sku"`
	WarehouseID       int64           `json:"warehouse_id"`
	WarehouseName     *string         `json:"warehouse_name"`
	CurrentStock      int64           `json:"current_stock"`
	Threshold         int64           `json:"threshold"`
	DaysUntilStockout *int64          `json:"days_until_stockout"`
	Supplier          *SupplierRefDTO `json:"supplier"`
}

// LowStockReportResponse respuesta de GET /api/companies/{companyId}/alerts/low-stock.
// TotalAlerts es siempre len(Alerts); Alerts nunca es null en el JSON.
type LowStockReportResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
