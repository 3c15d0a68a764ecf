package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jmarulanda/stockalert-api/internal/application/alerts"
	"github.com/jmarulanda/stockalert-api/internal/application/dto"
	"github.com/jmarulanda/stockalert-api/internal/domain"
	"github.com/jmarulanda/stockalert-api/pkg/logger"
)

// AlertHandler expone el reporte de alertas de bajo stock (JSON y PDF).
type AlertHandler struct {
	uc    *alerts.LowStockUseCase
	pdfUC *alerts.ReportPDFUseCase
	log   *logger.Logger
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.LowStockUseCase, pdfUC *alerts.ReportPDFUseCase, log *logger.Logger) *AlertHandler {
	return &AlertHandler{uc: uc, pdfUC: pdfUC, log: log}
}

// GetLowStock godoc
// @Summary      Reporte de alertas de bajo stock
// @Description  Productos con venta reciente positiva y stock por debajo de su
//
//	umbral de reorden, con proyección de quiebre y proveedor preferido,
//	ordenados por días hasta el quiebre (null al final).
//
// @Tags         alerts
// @Produce      json
// @Param        companyId  path  int  true  "ID de la empresa (entero positivo)"
// @Success      200  {object}  dto.LowStockReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/alerts/low-stock [get]
func (h *AlertHandler) GetLowStock(c *fiber.Ctx) error {
	companyID, ok := parseIDParam(c, "companyId")
	if !ok {
		// Validación pura: no se toca la base de datos.
		return badRequest(c, "invalid company id")
	}
	report, err := h.uc.Generate(c.Context(), companyID)
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(report)
}

// GetLowStockPDF godoc
// @Summary      Reporte de bajo stock en PDF
// @Tags         alerts
// @Produce      application/pdf
// @Param        companyId  path  int  true  "ID de la empresa (entero positivo)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/alerts/low-stock/pdf [get]
func (h *AlertHandler) GetLowStockPDF(c *fiber.Ctx) error {
	companyID, ok := parseIDParam(c, "companyId")
	if !ok {
		return badRequest(c, "invalid company id")
	}
	pdfBytes, err := h.pdfUC.Generate(c.Context(), companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "not found"})
		}
		return internalError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="low-stock-report.pdf"`)
	return c.Send(pdfBytes)
}
