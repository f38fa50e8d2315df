package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/cotizador-pro/internal/domain/entity"
	"github.com/tu-usuario/cotizador-pro/internal/domain/repository"
)

var _ repository.RawMaterialRepository = (*RawMaterialRepo)(nil)

// RawMaterialRepo implementa RawMaterialRepository sobre PostgreSQL.
type RawMaterialRepo struct {
	ctx  context.Context
	pool *pgxpool.Pool
}

// NewRawMaterialRepository construye el repositorio.
func NewRawMaterialRepository(pool *pgxpool.Pool) *RawMaterialRepo {
	return &RawMaterialRepo{ctx: context.Background(), pool: pool}
}

func (r *RawMaterialRepo) Create(m *entity.RawMaterial) error {
	const query = `
		INSERT INTO raw_materials
			(id, user_id, name, unit, cost, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(r.ctx, query,
		m.ID, m.UserID, m.Name, m.Unit, m.Cost, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert raw_material: %w", err)
	}
	return nil
}

func (r *RawMaterialRepo) GetByID(id string) (*entity.RawMaterial, error) {
	const query = `
		SELECT id, user_id, name, unit, cost, created_at, updated_at
		FROM raw_materials WHERE id = $1`
	m, err := scanRawMaterial(r.pool.QueryRow(r.ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw_material by id: %w", err)
	}
	return m, nil
}

func (r *RawMaterialRepo) ListByUser(userID string) ([]*entity.RawMaterial, error) {
	const query = `
		SELECT id, user_id, name, unit, cost, created_at, updated_at
		FROM raw_materials
		WHERE user_id = $1
		ORDER BY name`
	rows, err := r.pool.Query(r.ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list raw_materials: %w", err)
	}
	defer rows.Close()

	var out []*entity.RawMaterial
	for rows.Next() {
		m, err := scanRawMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan raw_material: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *RawMaterialRepo) Update(m *entity.RawMaterial) error {
	const query = `
		UPDATE raw_materials
		SET name = $2, unit = $3, cost = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(r.ctx, query, m.ID, m.Name, m.Unit, m.Cost, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update raw_material: %w", err)
	}
	return nil
}

// Delete elimina la materia prima. Las líneas de cotizaciones históricas no se
// tocan: congelaron su costo al crearse.
func (r *RawMaterialRepo) Delete(id string) error {
	const query = `DELETE FROM raw_materials WHERE id = $1`
	_, err := r.pool.Exec(r.ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete raw_material: %w", err)
	}
	return nil
}

func scanRawMaterial(row pgx.Row) (*entity.RawMaterial, error) {
	var m entity.RawMaterial
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Unit, &m.Cost, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
