package repository

import "github.com/tu-usuario/cotizador-pro/internal/domain/entity"

// QuotationRepository define el puerto de persistencia para Quotation y sus líneas.
// Create retorna domain.ErrDuplicate si el quote_number ya existe (índice único);
// el caller regenera el número y reintenta.
type QuotationRepository interface {
	Create(q *entity.Quotation) error
	CreateMaterial(line *entity.QuotationMaterial) error
	GetByID(id string) (*entity.Quotation, error)
	GetMaterialsByQuotationID(quotationID string) ([]*entity.QuotationMaterial, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Quotation, error)
	// ListAll lista cotizaciones de todos los usuarios (solo para administración).
	ListAll(limit, offset int) ([]*entity.Quotation, error)
}
