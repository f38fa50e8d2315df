package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades válidas para RawMaterial.
const (
	UnitPulgadas    = "Pulgadas"
	UnitCentimetros = "Centímetros"
	UnitLitros      = "Litros"
	UnitEstandar    = "Estándar"
)

// ValidUnit indica si u es una de las unidades del catálogo.
func ValidUnit(u string) bool {
	switch u {
	case UnitPulgadas, UnitCentimetros, UnitLitros, UnitEstandar:
		return true
	}
	return false
}

// RawMaterial materia prima con costo unitario, pertenece a un usuario.
// Las cotizaciones finalizadas congelan el costo en sus líneas, por lo que
// editar el costo aquí no altera cotizaciones históricas.
type RawMaterial struct {
	ID        string
	UserID    string
	Name      string
	Unit      string
	Cost      decimal.Decimal // costo unitario, >= 0
	CreatedAt time.Time
	UpdatedAt time.Time
}
