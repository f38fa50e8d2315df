package repository

import "github.com/tu-usuario/cotizador-pro/internal/domain/entity"

// RawMaterialRepository define el puerto de persistencia para RawMaterial.
type RawMaterialRepository interface {
	Create(m *entity.RawMaterial) error
	GetByID(id string) (*entity.RawMaterial, error)
	// ListByUser lista las materias primas del usuario ordenadas por nombre.
	ListByUser(userID string) ([]*entity.RawMaterial, error)
	Update(m *entity.RawMaterial) error
	Delete(id string) error
}
