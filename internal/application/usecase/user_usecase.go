package usecase

import (
	"fmt"

	"github.com/tu-usuario/cotizador-pro/internal/application/dto"
	"github.com/tu-usuario/cotizador-pro/internal/domain"
	"github.com/tu-usuario/cotizador-pro/internal/domain/entity"
	"github.com/tu-usuario/cotizador-pro/internal/domain/repository"
)

// UserUseCase administración de usuarios y roles. Todas las operaciones se
// exponen únicamente detrás de la autorización de admin: la asignación de
// roles nunca se ejecuta desde la superficie de cliente.
type UserUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.UserRoleRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, roleRepo repository.UserRoleRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, roleRepo: roleRepo}
}

// List lista usuarios con su rol resuelto (sin asignación -> "user").
func (uc *UserUseCase) List(page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	users, err := uc.userRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		role, err := uc.roleRepo.GetRoleByUser(u.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, dto.UserResponse{
			ID:        u.ID,
			Email:     u.Email,
			Name:      u.Name,
			Role:      role,
			Status:    u.Status,
			CreatedAt: u.CreatedAt,
		})
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UpdateRole asigna o reemplaza el rol de un usuario. El cambio se refleja en
// el siguiente login del usuario afectado (el rol viaja en el JWT).
func (uc *UserUseCase) UpdateRole(userID string, in dto.UpdateRoleRequest) error {
	if !entity.ValidRole(in.Role) {
		return fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, in.Role)
	}
	u, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	return uc.roleRepo.Upsert(userID, in.Role)
}
