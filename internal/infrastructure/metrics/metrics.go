// Package metrics expone contadores Prometheus de la aplicación. El registro
// por defecto se sirve en GET /metrics desde cmd/api.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// QuotationsCreated cotizaciones creadas con éxito.
var QuotationsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "cotizador_quotations_created_total",
	Help: "Cotizaciones creadas con éxito.",
})

// QuoteNumberRetries reintentos por colisión del número de cotización.
var QuoteNumberRetries = promauto.NewCounter(prometheus.CounterOpts{
	Name: "cotizador_quote_number_retries_total",
	Help: "Reintentos de persistencia por colisión del número de cotización.",
})
