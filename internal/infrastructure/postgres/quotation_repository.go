package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/cotizador-pro/internal/domain"
	"github.com/tu-usuario/cotizador-pro/internal/domain/entity"
	"github.com/tu-usuario/cotizador-pro/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implementa QuotationRepository sobre PostgreSQL. El puerto no
// recibe context, así que el repo queda atado a uno en construcción: el del
// TxRunner dentro de una transacción, Background para el repo de consulta.
type QuotationRepo struct {
	ctx context.Context
	db  Querier
}

// NewQuotationRepository construye el repositorio de consulta sobre el pool.
func NewQuotationRepository(pool *pgxpool.Pool) *QuotationRepo {
	return &QuotationRepo{ctx: context.Background(), db: pool}
}

func newQuotationRepo(ctx context.Context, db Querier) *QuotationRepo {
	return &QuotationRepo{ctx: ctx, db: db}
}

// Create inserta la cabecera. Retorna domain.ErrDuplicate si quote_number ya
// existe (índice único); el caso de uso regenera el número y reintenta.
func (r *QuotationRepo) Create(q *entity.Quotation) error {
	const query = `
		INSERT INTO quotations
			(id, user_id, quote_number, product_name, product_type, validity_days,
			 total_cost, sale_price, profit_margin, margin_percentage, created_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(r.ctx, query,
		q.ID, q.UserID, q.QuoteNumber, q.ProductName, q.ProductType, q.ValidityDays,
		q.TotalCost, q.SalePrice, q.ProfitMargin, q.MarginPercentage, q.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert quotation: %w", err)
	}
	return nil
}

func (r *QuotationRepo) CreateMaterial(line *entity.QuotationMaterial) error {
	const query = `
		INSERT INTO quotation_materials
			(id, quotation_id, raw_material_id, percentage, cost)
		VALUES
			($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(r.ctx, query,
		line.ID, line.QuotationID, line.RawMaterialID, line.Percentage, line.Cost,
	)
	if err != nil {
		return fmt.Errorf("insert quotation_material: %w", err)
	}
	return nil
}

func (r *QuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	const query = `
		SELECT id, user_id, quote_number, product_name, product_type, validity_days,
		       total_cost, sale_price, profit_margin, margin_percentage, created_at
		FROM quotations WHERE id = $1`
	q, err := scanQuotation(r.db.QueryRow(r.ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation by id: %w", err)
	}
	return q, nil
}

func (r *QuotationRepo) GetMaterialsByQuotationID(quotationID string) ([]*entity.QuotationMaterial, error) {
	const query = `
		SELECT id, quotation_id, raw_material_id, percentage, cost
		FROM quotation_materials
		WHERE quotation_id = $1
		ORDER BY id`
	rows, err := r.db.Query(r.ctx, query, quotationID)
	if err != nil {
		return nil, fmt.Errorf("list quotation_materials: %w", err)
	}
	defer rows.Close()

	var lines []*entity.QuotationMaterial
	for rows.Next() {
		var l entity.QuotationMaterial
		if err := rows.Scan(&l.ID, &l.QuotationID, &l.RawMaterialID, &l.Percentage, &l.Cost); err != nil {
			return nil, fmt.Errorf("scan quotation_material: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

func (r *QuotationRepo) ListByUser(userID string, limit, offset int) ([]*entity.Quotation, error) {
	const query = `
		SELECT id, user_id, quote_number, product_name, product_type, validity_days,
		       total_cost, sale_price, profit_margin, margin_percentage, created_at
		FROM quotations
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	return r.listQuotations(query, userID, limit, offset)
}

func (r *QuotationRepo) ListAll(limit, offset int) ([]*entity.Quotation, error) {
	const query = `
		SELECT id, user_id, quote_number, product_name, product_type, validity_days,
		       total_cost, sale_price, profit_margin, margin_percentage, created_at
		FROM quotations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	return r.listQuotations(query, limit, offset)
}

func (r *QuotationRepo) listQuotations(query string, args ...any) ([]*entity.Quotation, error) {
	rows, err := r.db.Query(r.ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()

	var out []*entity.Quotation
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func scanQuotation(row pgx.Row) (*entity.Quotation, error) {
	var q entity.Quotation
	err := row.Scan(
		&q.ID, &q.UserID, &q.QuoteNumber, &q.ProductName, &q.ProductType, &q.ValidityDays,
		&q.TotalCost, &q.SalePrice, &q.ProfitMargin, &q.MarginPercentage, &q.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}
