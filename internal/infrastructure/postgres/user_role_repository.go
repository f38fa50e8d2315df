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

var _ repository.UserRoleRepository = (*UserRoleRepo)(nil)

// UserRoleRepo implementa UserRoleRepository sobre PostgreSQL.
type UserRoleRepo struct {
	ctx  context.Context
	pool *pgxpool.Pool
}

// NewUserRoleRepository construye el repositorio.
func NewUserRoleRepository(pool *pgxpool.Pool) *UserRoleRepo {
	return &UserRoleRepo{ctx: context.Background(), pool: pool}
}

// GetRoleByUser devuelve el rol asignado. Sin fila no hay error: el rol
// efectivo es "user".
func (r *UserRoleRepo) GetRoleByUser(userID string) (string, error) {
	const query = `SELECT role FROM user_roles WHERE user_id = $1`
	var role string
	err := r.pool.QueryRow(r.ctx, query, userID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.RoleUser, nil
		}
		return "", fmt.Errorf("get role by user: %w", err)
	}
	return role, nil
}

// Upsert crea o reemplaza la asignación de rol (a lo sumo una fila por usuario).
func (r *UserRoleRepo) Upsert(userID, role string) error {
	const query = `
		INSERT INTO user_roles (user_id, role, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role, updated_at = now()`
	_, err := r.pool.Exec(r.ctx, query, userID, role)
	if err != nil {
		return fmt.Errorf("upsert user_role: %w", err)
	}
	return nil
}
