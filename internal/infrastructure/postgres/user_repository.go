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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementa UserRepository sobre PostgreSQL.
type UserRepo struct {
	ctx  context.Context
	pool *pgxpool.Pool
}

// NewUserRepository construye el repositorio.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{ctx: context.Background(), pool: pool}
}

// Create inserta el usuario. Retorna domain.ErrEmailAlreadyExists si el email
// ya está registrado (índice único sobre email).
func (r *UserRepo) Create(u *entity.User) error {
	const query = `
		INSERT INTO users
			(id, email, password_hash, name, status, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(r.ctx, query,
		u.ID, u.Email, u.PasswordHash, u.Name, u.Status, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	const query = `
		SELECT id, email, password_hash, name, status, created_at, updated_at
		FROM users WHERE id = $1`
	u, err := scanUser(r.pool.QueryRow(r.ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	const query = `
		SELECT id, email, password_hash, name, status, created_at, updated_at
		FROM users WHERE email = $1`
	u, err := scanUser(r.pool.QueryRow(r.ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	const query = `
		SELECT id, email, password_hash, name, status, created_at, updated_at
		FROM users
		ORDER BY created_at
		LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(r.ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
