package pricing

import "crypto/rand"

const (
	quoteNumberPrefix   = "COT-"
	quoteNumberLength   = 9
	quoteNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewQuoteNumber genera un número de cotización opaco: COT- seguido de nueve
// caracteres alfanuméricos aleatorios en mayúscula. La unicidad no está
// garantizada más allá de la improbabilidad de colisión; el índice único de la
// base la hace cumplir y el caller regenera y reintenta ante ErrDuplicate.
func NewQuoteNumber() string {
	buf := make([]byte, quoteNumberLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand no falla en plataformas soportadas
		panic(err)
	}
	for i, b := range buf {
		buf[i] = quoteNumberAlphabet[int(b)%len(quoteNumberAlphabet)]
	}
	return quoteNumberPrefix + string(buf)
}
