// Package pdf implementa la generación del documento de cotización.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│                 Cotización                  │
//	│  ─────────────────────────────────────────  │
//	│  Número / Producto / Tipo / Validez         │
//	│  ─────────────────────────────────────────  │
//	│  Costo Total / Precio de Venta / Margen     │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/cotizador-pro/internal/application/usecase"
	"github.com/tu-usuario/cotizador-pro/internal/domain/entity"
)

var _ usecase.QuotationPDFGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa usecase.QuotationPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// DocumentLines devuelve, en orden, las líneas de contenido del documento.
// Separado de la composición Maroto para poder verificar el contenido sin
// descomprimir el PDF.
func DocumentLines(q *entity.Quotation) []string {
	return []string{
		"Número: " + q.QuoteNumber,
		"Producto: " + q.ProductName,
		"Tipo: " + q.ProductType,
		"Costo Total: $" + q.TotalCost.StringFixed(2),
		"Precio de Venta: $" + q.SalePrice.StringFixed(2),
		"Margen: " + q.MarginPercentage.String() + "%",
	}
}

// GenerateQuotationPDF genera el PDF de la cotización y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateQuotationPDF(_ context.Context, q *entity.Quotation) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Cotización "+q.QuoteNumber, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(14).Add(
		col.New(12).Add(
			text.New("Cotización", props.Text{
				Style: fontstyle.Bold, Size: 18, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
		),
	))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	lines := DocumentLines(q)
	for i, l := range lines {
		style := props.Text{Size: 10, Top: 2}
		// Los montos van en negrita; los metadatos en gris.
		if i < 3 {
			style.Color = colorGray
		} else {
			style.Style = fontstyle.Bold
		}
		m.AddRows(row.New(8).Add(col.New(12).Add(text.New(l, style))))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(
		col.New(12).Add(
			text.New("Generada el "+q.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Color: colorGray, Top: 2, Align: align.Right,
			}),
		),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}
