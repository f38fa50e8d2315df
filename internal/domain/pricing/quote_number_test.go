package pricing_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/cotizador-pro/internal/domain/pricing"
)

func TestNewQuoteNumber_Formato(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := pricing.NewQuoteNumber()
		assert.Regexp(t, `^COT-[0-9A-Z]{9}$`, n,
			"todo número generado debe cumplir el formato COT- + 9 alfanuméricos")
		assert.True(t, strings.HasPrefix(n, "COT-"))
		assert.Len(t, n, len("COT-")+9)
	}
}

// La unicidad no está garantizada, pero una colisión en un lote pequeño sobre
// un espacio de 36^9 delataría un generador roto.
func TestNewQuoteNumber_SinColisionesEnLotePequeno(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		n := pricing.NewQuoteNumber()
		_, dup := seen[n]
		assert.False(t, dup, "colisión inesperada en %d muestras: %s", i, n)
		seen[n] = struct{}{}
	}
}
