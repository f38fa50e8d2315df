package usecase

import (
	"context"

	"github.com/tu-usuario/cotizador-pro/internal/domain/entity"
	"github.com/tu-usuario/cotizador-pro/internal/domain/repository"
)

// QuotationTxRunner ejecuta fn dentro de una transacción con el repositorio de
// cotizaciones atado a ella. Si fn retorna error se hace rollback completo:
// una cotización jamás queda persistida sin sus líneas.
type QuotationTxRunner interface {
	Run(ctx context.Context, fn func(quotationRepo repository.QuotationRepository) error) error
}

// QuotationPDFGenerator genera el documento PDF de una cotización finalizada.
// Determinista para el mismo input; sin acceso a red ni almacenamiento.
type QuotationPDFGenerator interface {
	GenerateQuotationPDF(ctx context.Context, q *entity.Quotation) ([]byte, error)
}

// QuotationListExporter exporta un listado de cotizaciones (hoja de cálculo).
type QuotationListExporter interface {
	Export(quotations []*entity.Quotation) ([]byte, error)
}
