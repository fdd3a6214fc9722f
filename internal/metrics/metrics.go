package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Simulations счетчик расчетов графика
	Simulations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simulations_total",
			Help: "Количество расчетов графика платежей",
		},
		[]string{"status"},
	)

	// Exports счетчик экспортов в PDF
	Exports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exports_total",
			Help: "Количество экспортов графика в документ",
		},
		[]string{"status"},
	)

	// ScheduleRows распределение длины графиков
	ScheduleRows = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "schedule_rows",
			Help:    "Количество строк в рассчитанном графике",
			Buckets: []float64{12, 24, 60, 120, 240, 360, 600, 1188},
		},
	)
)

// Handler отдает метрики в формате Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve запускает /metrics на addr. Блокирует до ошибки сервера.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	return http.ListenAndServe(addr, mux)
}
