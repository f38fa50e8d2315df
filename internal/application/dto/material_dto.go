package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest alta de materia prima.
type CreateMaterialRequest struct {
	Name string          `json:"name"`
	Unit string          `json:"unit"` // Pulgadas, Centímetros, Litros, Estándar
	Cost decimal.Decimal `json:"cost"`
}

// UpdateMaterialRequest edición de materia prima. El costo puede cambiar:
// las cotizaciones finalizadas ya llevan su propio snapshot.
type UpdateMaterialRequest struct {
	Name string          `json:"name"`
	Unit string          `json:"unit"`
	Cost decimal.Decimal `json:"cost"`
}

// MaterialResponse representación de salida de RawMaterial.
type MaterialResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Cost      decimal.Decimal `json:"cost"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// MaterialListResponse listado de materias primas del usuario.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
}
