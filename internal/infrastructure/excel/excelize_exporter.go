// Package excel exporta listados de cotizaciones a hojas de cálculo xlsx.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/cotizador-pro/internal/application/usecase"
	"github.com/tu-usuario/cotizador-pro/internal/domain/entity"
)

var _ usecase.QuotationListExporter = (*ExcelizeExporter)(nil)

// ExcelizeExporter implementa usecase.QuotationListExporter con excelize.
type ExcelizeExporter struct{}

// NewExcelizeExporter construye el exportador.
func NewExcelizeExporter() *ExcelizeExporter { return &ExcelizeExporter{} }

// Export genera un libro xlsx con una fila de cabecera y una fila por
// cotización, ordenadas como vienen en el slice.
func (e *ExcelizeExporter) Export(quotations []*entity.Quotation) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []any{
		"Número", "Producto", "Tipo", "Validez (días)",
		"Costo Total", "Precio de Venta", "Ganancia", "Margen %", "Fecha",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: escribir cabecera: %w", err)
	}

	for i, q := range quotations {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("excel: celda de la fila %d: %w", i+2, err)
		}
		row := []any{
			q.QuoteNumber,
			q.ProductName,
			q.ProductType,
			q.ValidityDays,
			q.TotalCost.InexactFloat64(),
			q.SalePrice.InexactFloat64(),
			q.ProfitMargin.InexactFloat64(),
			q.MarginPercentage.InexactFloat64(),
			q.CreatedAt.Format("02/01/2006"),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("excel: escribir fila %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
