package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AllocationRequest asignación (material, porcentaje) de una cotización nueva.
type AllocationRequest struct {
	RawMaterialID string          `json:"raw_material_id"`
	Percentage    decimal.Decimal `json:"percentage"`
}

// CreateQuotationRequest alta de cotización. Los porcentajes deben sumar 100
// (tolerancia 0.01) y el margen estar en [0, 100).
type CreateQuotationRequest struct {
	ProductName      string              `json:"product_name"`
	ProductType      string              `json:"product_type"` // Tipo A, Tipo B, Tipo C
	ValidityDays     int                 `json:"validity_days"`
	MarginPercentage decimal.Decimal     `json:"margin_percentage"`
	Materials        []AllocationRequest `json:"materials"`
}

// QuotationMaterialResponse línea de cotización con su costo congelado.
type QuotationMaterialResponse struct {
	RawMaterialID string          `json:"raw_material_id"`
	Percentage    decimal.Decimal `json:"percentage"`
	Cost          decimal.Decimal `json:"cost"`
}

// QuotationResponse representación de salida de Quotation.
type QuotationResponse struct {
	ID               string                      `json:"id"`
	QuoteNumber      string                      `json:"quote_number"`
	ProductName      string                      `json:"product_name"`
	ProductType      string                      `json:"product_type"`
	ValidityDays     int                         `json:"validity_days"`
	TotalCost        decimal.Decimal             `json:"total_cost"`
	SalePrice        decimal.Decimal             `json:"sale_price"`
	ProfitMargin     decimal.Decimal             `json:"profit_margin"`
	MarginPercentage decimal.Decimal             `json:"margin_percentage"`
	CreatedAt        time.Time                   `json:"created_at"`
	Materials        []QuotationMaterialResponse `json:"materials,omitempty"`
}

// QuotationListResponse listado paginado de cotizaciones.
type QuotationListResponse struct {
	Items []QuotationResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
