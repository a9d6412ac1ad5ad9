package ai

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storyteller_generation_attempts_total",
			Help: "Total number of generation attempts by path (rich or gateway).",
		},
		[]string{"path"},
	)

	generationFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storyteller_generation_fallbacks_total",
		Help: "Total number of times the rich path failed and the gateway fallback was used.",
	})

	generationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storyteller_generation_failures_total",
			Help: "Total number of terminal generation failures by cause.",
		},
		[]string{"cause"},
	)

	gatewayRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storyteller_gateway_rate_limit_retries_total",
		Help: "Total number of gateway retries triggered by upstream throttling.",
	})
)
