// Package pricing implementa el motor de precios de cotizaciones (servicio de
// dominio, sin I/O): agrega el costo ponderado de las materias primas y aplica
// la inversión de margen para obtener el precio de venta.
//
//	CostoTotal    = Σ costo_i * porcentaje_i / 100
//	Multiplicador = 1 / (1 - margen/100)
//	PrecioVenta   = CostoTotal * Multiplicador
//	Ganancia      = PrecioVenta - CostoTotal
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cotizador-pro/internal/domain"
	"github.com/tu-usuario/cotizador-pro/internal/domain/entity"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)

	// Tolerancia permitida entre la suma de porcentajes y 100.
	percentageTolerance = decimal.NewFromFloat(0.01)
)

// Allocation porcentaje asignado a una materia prima dentro de la cotización.
type Allocation struct {
	RawMaterialID string
	Percentage    decimal.Decimal
}

// Input datos necesarios para calcular una cotización.
type Input struct {
	ProductName      string
	ProductType      string
	ValidityDays     int
	MarginPercentage decimal.Decimal
	Allocations      []Allocation
}

// CostLookup resuelve el costo vigente de una materia prima.
// ok=false si el identificador no existe en el registro.
type CostLookup func(rawMaterialID string) (cost decimal.Decimal, ok bool)

// Result cotización calculada junto con sus líneas, aún sin persistir.
// Las líneas llevan el costo congelado al momento del cálculo.
type Result struct {
	Quotation entity.Quotation
	Materials []entity.QuotationMaterial
}

// Compute valida las asignaciones y calcula la cotización completa.
// Es una función pura sobre sus entradas más el lookup inyectado; la
// persistencia y el snapshot definitivo son responsabilidad del caller.
func Compute(in Input, lookup CostLookup) (*Result, error) {
	if err := validate(in, lookup); err != nil {
		return nil, err
	}

	total := decimal.Zero
	lines := make([]entity.QuotationMaterial, 0, len(in.Allocations))
	for _, a := range in.Allocations {
		cost, _ := lookup(a.RawMaterialID) // existencia ya validada
		total = total.Add(cost.Mul(a.Percentage).Div(hundred))
		lines = append(lines, entity.QuotationMaterial{
			RawMaterialID: a.RawMaterialID,
			Percentage:    a.Percentage,
			Cost:          cost,
		})
	}

	multiplier := one.Div(one.Sub(in.MarginPercentage.Div(hundred)))
	salePrice := total.Mul(multiplier)

	return &Result{
		Quotation: entity.Quotation{
			QuoteNumber:      NewQuoteNumber(),
			ProductName:      in.ProductName,
			ProductType:      in.ProductType,
			ValidityDays:     in.ValidityDays,
			TotalCost:        total,
			SalePrice:        salePrice,
			ProfitMargin:     salePrice.Sub(total),
			MarginPercentage: in.MarginPercentage,
		},
		Materials: lines,
	}, nil
}

// validate falla rápido, antes de cualquier cálculo. Orden de verificación:
// lista vacía, materiales sin resolver, suma de porcentajes, rango del margen.
// Un margen de exactamente 100 dejaría la inversión indefinida (división por
// cero), por eso el límite superior es estricto.
func validate(in Input, lookup CostLookup) error {
	if len(in.Allocations) == 0 {
		return domain.ErrEmptyAllocation
	}
	sum := decimal.Zero
	for _, a := range in.Allocations {
		if _, ok := lookup(a.RawMaterialID); !ok {
			return fmt.Errorf("%w: %s", domain.ErrUnresolvedMaterial, a.RawMaterialID)
		}
		sum = sum.Add(a.Percentage)
	}
	if sum.Sub(hundred).Abs().GreaterThan(percentageTolerance) {
		return fmt.Errorf("%w (suma actual: %s%%)", domain.ErrPercentageMismatch, sum)
	}
	if in.MarginPercentage.IsNegative() || in.MarginPercentage.GreaterThanOrEqual(hundred) {
		return fmt.Errorf("%w (margen: %s)", domain.ErrInvalidMargin, in.MarginPercentage)
	}
	return nil
}
