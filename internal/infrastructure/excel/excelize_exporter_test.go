package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/cotizador-pro/internal/domain/entity"
	"github.com/tu-usuario/cotizador-pro/internal/infrastructure/excel"
)

func TestExport_FilasYCabecera(t *testing.T) {
	exp := excel.NewExcelizeExporter()

	data, err := exp.Export([]*entity.Quotation{
		{
			QuoteNumber:      "COT-A1B2C3D4E",
			ProductName:      "Mesa de roble",
			ProductType:      entity.ProductTipoA,
			ValidityDays:     30,
			TotalCost:        decimal.RequireFromString("14"),
			SalePrice:        decimal.RequireFromString("17.5"),
			ProfitMargin:     decimal.RequireFromString("3.5"),
			MarginPercentage: decimal.NewFromInt(20),
			CreatedAt:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			QuoteNumber:      "COT-ZZZZZZZZZ",
			ProductName:      "Silla",
			ProductType:      entity.ProductTipoB,
			ValidityDays:     15,
			TotalCost:        decimal.NewFromInt(8),
			SalePrice:        decimal.NewFromInt(10),
			ProfitMargin:     decimal.NewFromInt(2),
			MarginPercentage: decimal.NewFromInt(20),
			CreatedAt:        time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err, "la salida debe ser un xlsx legible")
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3, "cabecera + una fila por cotización")

	assert.Equal(t, "Número", rows[0][0])
	assert.Equal(t, "COT-A1B2C3D4E", rows[1][0])
	assert.Equal(t, "Mesa de roble", rows[1][1])
	assert.Equal(t, "COT-ZZZZZZZZZ", rows[2][0])
	assert.Equal(t, "10/03/2025", rows[1][8])
}

func TestExport_ListadoVacio_SoloCabecera(t *testing.T) {
	exp := excel.NewExcelizeExporter()

	data, err := exp.Export(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "sin cotizaciones el libro solo lleva la cabecera")
}
