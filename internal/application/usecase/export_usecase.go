package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/cotizador-pro/internal/domain"
	"github.com/tu-usuario/cotizador-pro/internal/domain/entity"
	"github.com/tu-usuario/cotizador-pro/internal/domain/repository"
)

// Tamaño de página al recorrer todas las cotizaciones para un export.
const exportPageSize = 500

// ExportUseCase genera documentos descargables a partir de cotizaciones
// finalizadas: PDF individual y listado XLSX para administración.
type ExportUseCase struct {
	quotationRepo repository.QuotationRepository
	pdfGenerator  QuotationPDFGenerator
	listExporter  QuotationListExporter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	quotationRepo repository.QuotationRepository,
	pdfGenerator QuotationPDFGenerator,
	listExporter QuotationListExporter,
) *ExportUseCase {
	return &ExportUseCase{
		quotationRepo: quotationRepo,
		pdfGenerator:  pdfGenerator,
		listExporter:  listExporter,
	}
}

// DownloadQuotationPDF carga la cotización persistida y genera su PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la cotización no existe.
//   - domain.ErrForbidden        si no pertenece al usuario y no es admin.
func (uc *ExportUseCase) DownloadQuotationPDF(ctx context.Context, userID, role, quotationID string) (pdfBytes []byte, filename string, err error) {
	q, err := uc.quotationRepo.GetByID(quotationID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cotización: %w", err)
	}
	if q == nil {
		return nil, "", domain.ErrNotFound
	}
	if q.UserID != userID && role != entity.RoleAdmin {
		return nil, "", domain.ErrForbidden
	}

	pdfBytes, err = uc.pdfGenerator.GenerateQuotationPDF(ctx, q)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	// Convención consumida por el cliente, no por el exportador.
	filename = fmt.Sprintf("quotation-%s.pdf", q.QuoteNumber)
	return pdfBytes, filename, nil
}

// ExportQuotationsXLSX arma el listado completo de cotizaciones (todas las
// cuentas) y lo exporta como hoja de cálculo. Pensado para administración.
func (uc *ExportUseCase) ExportQuotationsXLSX(_ context.Context) (data []byte, filename string, err error) {
	var all []*entity.Quotation
	for offset := 0; ; offset += exportPageSize {
		page, err := uc.quotationRepo.ListAll(exportPageSize, offset)
		if err != nil {
			return nil, "", fmt.Errorf("xlsx: listar cotizaciones: %w", err)
		}
		all = append(all, page...)
		if len(page) < exportPageSize {
			break
		}
	}

	data, err = uc.listExporter.Export(all)
	if err != nil {
		return nil, "", fmt.Errorf("xlsx: exportación fallida: %w", err)
	}
	filename = fmt.Sprintf("quotations-%s.xlsx", time.Now().Format("2006-01-02"))
	return data, filename, nil
}
