package repository

import "github.com/tu-usuario/cotizador-pro/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
}
