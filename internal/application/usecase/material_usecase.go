package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cotizador-pro/internal/application/dto"
	"github.com/tu-usuario/cotizador-pro/internal/domain"
	"github.com/tu-usuario/cotizador-pro/internal/domain/entity"
	"github.com/tu-usuario/cotizador-pro/internal/domain/repository"
)

// MaterialUseCase CRUD de materias primas, siempre acotado al usuario dueño.
type MaterialUseCase struct {
	repo repository.RawMaterialRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(repo repository.RawMaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

// Create registra una materia prima para el usuario.
func (uc *MaterialUseCase) Create(userID string, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if err := validateMaterial(in.Name, in.Unit, in.Cost); err != nil {
		return nil, err
	}
	now := time.Now()
	m := &entity.RawMaterial{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Unit:      in.Unit,
		Cost:      in.Cost,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

// GetByID obtiene una materia prima del usuario.
func (uc *MaterialUseCase) GetByID(userID, id string) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if m.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return toMaterialResponse(m), nil
}

// List lista las materias primas del usuario, ordenadas por nombre.
func (uc *MaterialUseCase) List(userID string) (*dto.MaterialListResponse, error) {
	mats, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(mats))
	for _, m := range mats {
		items = append(items, *toMaterialResponse(m))
	}
	return &dto.MaterialListResponse{Items: items}, nil
}

// Update edita una materia prima del usuario. El cambio de costo no afecta
// cotizaciones ya creadas: sus líneas llevan el costo congelado.
func (uc *MaterialUseCase) Update(userID, id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	if err := validateMaterial(in.Name, in.Unit, in.Cost); err != nil {
		return nil, err
	}
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if m.UserID != userID {
		return nil, domain.ErrForbidden
	}
	m.Name = in.Name
	m.Unit = in.Unit
	m.Cost = in.Cost
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

// Delete elimina una materia prima del usuario.
func (uc *MaterialUseCase) Delete(userID, id string) error {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	if m.UserID != userID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func validateMaterial(name, unit string, cost decimal.Decimal) error {
	if name == "" {
		return fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
	}
	if !entity.ValidUnit(unit) {
		return fmt.Errorf("%w: unidad desconocida %q", domain.ErrInvalidInput, unit)
	}
	if cost.IsNegative() {
		return fmt.Errorf("%w: el costo no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func toMaterialResponse(m *entity.RawMaterial) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:        m.ID,
		Name:      m.Name,
		Unit:      m.Unit,
		Cost:      m.Cost,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
