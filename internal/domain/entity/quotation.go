package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de producto válidos para Quotation.
const (
	ProductTipoA = "Tipo A"
	ProductTipoB = "Tipo B"
	ProductTipoC = "Tipo C"
)

// ValidProductType indica si t es uno de los tipos del catálogo.
func ValidProductType(t string) bool {
	switch t {
	case ProductTipoA, ProductTipoB, ProductTipoC:
		return true
	}
	return false
}

// Quotation representa la cabecera de una cotización. Inmutable después de
// creada: no existe flujo de edición.
type Quotation struct {
	ID               string
	UserID           string
	QuoteNumber      string // COT- + 9 alfanuméricos en mayúscula, único
	ProductName      string
	ProductType      string
	ValidityDays     int // >= 1
	TotalCost        decimal.Decimal
	SalePrice        decimal.Decimal
	ProfitMargin     decimal.Decimal // SalePrice - TotalCost
	MarginPercentage decimal.Decimal // [0, 100)
	CreatedAt        time.Time
}

// QuotationMaterial línea de cotización. Cost es el costo de la materia prima
// congelado al momento de crear la cotización, no una referencia viva.
type QuotationMaterial struct {
	ID            string
	QuotationID   string
	RawMaterialID string
	Percentage    decimal.Decimal
	Cost          decimal.Decimal
}
