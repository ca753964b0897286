package telemetria

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CalculosRealizados conta chamadas ao motor de cálculo por operação
	// e status (ok, invalido, erro).
	CalculosRealizados = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculos_total",
			Help: "Total de cálculos financeiros executados",
		},
		[]string{"operacao", "status"},
	)

	// DuracaoCalculo mede a duração das operações do motor.
	DuracaoCalculo = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "calculo_duracao_segundos",
			Help:    "Duração dos cálculos financeiros",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operacao"},
	)

	// CacheMetricas conta acertos e falhas do cache de métricas.
	CacheMetricas = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_metricas_total",
			Help: "Acertos e falhas do cache de métricas",
		},
		[]string{"resultado"},
	)
)
