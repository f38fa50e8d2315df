package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cotizador-pro/internal/application/dto"
	"github.com/tu-usuario/cotizador-pro/internal/domain"
	"github.com/tu-usuario/cotizador-pro/internal/domain/entity"
	"github.com/tu-usuario/cotizador-pro/internal/domain/pricing"
	"github.com/tu-usuario/cotizador-pro/internal/domain/repository"
	"github.com/tu-usuario/cotizador-pro/internal/infrastructure/metrics"
)

// Intentos ante colisión del número de cotización antes de rendirse.
const quoteNumberMaxAttempts = 3

// QuotationUseCase crea y consulta cotizaciones. La creación escribe cabecera
// y líneas en una sola transacción: si una línea falla, nada queda persistido.
type QuotationUseCase struct {
	txRunner      QuotationTxRunner
	materialRepo  repository.RawMaterialRepository
	quotationRepo repository.QuotationRepository
}

// NewQuotationUseCase construye el caso de uso.
func NewQuotationUseCase(
	txRunner QuotationTxRunner,
	materialRepo repository.RawMaterialRepository,
	quotationRepo repository.QuotationRepository,
) *QuotationUseCase {
	return &QuotationUseCase{
		txRunner:      txRunner,
		materialRepo:  materialRepo,
		quotationRepo: quotationRepo,
	}
}

// Create valida, calcula con el motor de precios y persiste la cotización con
// sus líneas. Ante colisión del quote_number (ErrDuplicate del índice único)
// regenera el número y reintenta hasta quoteNumberMaxAttempts veces; agotados
// los intentos retorna ErrPersistence con la causa envuelta.
func (uc *QuotationUseCase) Create(ctx context.Context, userID string, in dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	if in.ProductName == "" {
		return nil, fmt.Errorf("%w: el nombre del producto es requerido", domain.ErrInvalidInput)
	}
	if !entity.ValidProductType(in.ProductType) {
		return nil, fmt.Errorf("%w: tipo de producto desconocido %q", domain.ErrInvalidInput, in.ProductType)
	}
	if in.ValidityDays < 1 {
		return nil, fmt.Errorf("%w: la validez debe ser de al menos 1 día", domain.ErrInvalidInput)
	}

	// El lookup de costos se arma con las materias primas del usuario: una
	// asignación que apunte a un material ajeno o inexistente no resuelve.
	mats, err := uc.materialRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("cargar materias primas: %w", err)
	}
	costs := make(map[string]decimal.Decimal, len(mats))
	for _, m := range mats {
		costs[m.ID] = m.Cost
	}
	lookup := func(id string) (decimal.Decimal, bool) {
		c, ok := costs[id]
		return c, ok
	}

	allocs := make([]pricing.Allocation, 0, len(in.Materials))
	for _, a := range in.Materials {
		allocs = append(allocs, pricing.Allocation{RawMaterialID: a.RawMaterialID, Percentage: a.Percentage})
	}

	result, err := pricing.Compute(pricing.Input{
		ProductName:      in.ProductName,
		ProductType:      in.ProductType,
		ValidityDays:     in.ValidityDays,
		MarginPercentage: in.MarginPercentage,
		Allocations:      allocs,
	}, lookup)
	if err != nil {
		return nil, err
	}

	q := result.Quotation
	q.ID = uuid.New().String()
	q.UserID = userID
	q.CreatedAt = time.Now()

	lines := result.Materials
	for i := range lines {
		lines[i].ID = uuid.New().String()
		lines[i].QuotationID = q.ID
	}

	var createErr error
	for attempt := 0; attempt < quoteNumberMaxAttempts; attempt++ {
		createErr = uc.txRunner.Run(ctx, func(repo repository.QuotationRepository) error {
			if err := repo.Create(&q); err != nil {
				return err
			}
			for i := range lines {
				if err := repo.CreateMaterial(&lines[i]); err != nil {
					return err
				}
			}
			return nil
		})
		if errors.Is(createErr, domain.ErrDuplicate) {
			// Colisión del número de cotización: regenerar y reintentar.
			metrics.QuoteNumberRetries.Inc()
			q.QuoteNumber = pricing.NewQuoteNumber()
			continue
		}
		break
	}
	if createErr != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, createErr)
	}

	metrics.QuotationsCreated.Inc()
	return toQuotationResponse(&q, lines), nil
}

// GetByID obtiene una cotización con sus líneas. El dueño siempre puede verla;
// un administrador puede ver cualquiera.
func (uc *QuotationUseCase) GetByID(userID, role, id string) (*dto.QuotationResponse, error) {
	q, err := uc.quotationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if q.UserID != userID && role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	lines, err := uc.quotationRepo.GetMaterialsByQuotationID(q.ID)
	if err != nil {
		return nil, err
	}
	flat := make([]entity.QuotationMaterial, 0, len(lines))
	for _, l := range lines {
		flat = append(flat, *l)
	}
	return toQuotationResponse(q, flat), nil
}

// List lista las cotizaciones del usuario con paginación.
func (uc *QuotationUseCase) List(userID string, page dto.PageRequest) (*dto.QuotationListResponse, error) {
	page.DefaultPage()
	qs, err := uc.quotationRepo.ListByUser(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuotationResponse, 0, len(qs))
	for _, q := range qs {
		items = append(items, *toQuotationResponse(q, nil))
	}
	return &dto.QuotationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toQuotationResponse(q *entity.Quotation, lines []entity.QuotationMaterial) *dto.QuotationResponse {
	out := &dto.QuotationResponse{
		ID:               q.ID,
		QuoteNumber:      q.QuoteNumber,
		ProductName:      q.ProductName,
		ProductType:      q.ProductType,
		ValidityDays:     q.ValidityDays,
		TotalCost:        q.TotalCost,
		SalePrice:        q.SalePrice,
		ProfitMargin:     q.ProfitMargin,
		MarginPercentage: q.MarginPercentage,
		CreatedAt:        q.CreatedAt,
	}
	for _, l := range lines {
		out.Materials = append(out.Materials, dto.QuotationMaterialResponse{
			RawMaterialID: l.RawMaterialID,
			Percentage:    l.Percentage,
			Cost:          l.Cost,
		})
	}
	return out
}
