package alerts

import (
	"context"

	"github.com/jmarulanda/stockalert-api/internal/application/dto"
	"github.com/jmarulanda/stockalert-api/internal/domain"
	"github.com/jmarulanda/stockalert-api/internal/domain/repository"
)

// ReportPDFGenerator puerto para renderizar el reporte de alertas como PDF.
type ReportPDFGenerator interface {
	GenerateLowStockPDF(ctx context.Context, companyName string, report *dto.LowStockReportResponse) ([]byte, error)
}

// ReportPDFUseCase genera el reporte de bajo stock renderizado como PDF.
// Mismo cálculo que el endpoint JSON; solo cambia la representación.
type ReportPDFUseCase struct {
	engine      *LowStockUseCase
	companyRepo repository.CompanyRepository
	generator   ReportPDFGenerator
}

// NewReportPDFUseCase construye el caso de uso.
func NewReportPDFUseCase(engine *LowStockUseCase, companyRepo repository.CompanyRepository, generator ReportPDFGenerator) *ReportPDFUseCase {
	return &ReportPDFUseCase{engine: engine, companyRepo: companyRepo, generator: generator}
}

// Generate calcula el reporte y lo devuelve como bytes PDF.
// ErrNotFound si la empresa no existe (el PDF lleva el nombre de la empresa).
func (uc *ReportPDFUseCase) Generate(ctx context.Context, companyID int64) ([]byte, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	report, err := uc.engine.Generate(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateLowStockPDF(ctx, company.Name, report)
}
