package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec

	LayoutBlocksTotal       *prometheus.CounterVec
	LayoutInvalidItemsTotal *prometheus.CounterVec
	LayoutDuration          *prometheus.HistogramVec
}

// New регистрирует метрики в глобальном регистре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном регистре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}, []string{"database"}),

		DBInUse: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections in use",
			ConstLabels: constLabels,
		}, []string{"database"}),

		LayoutBlocksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedule_layout_blocks_total",
			Help:        "Total number of layout blocks produced",
			ConstLabels: constLabels,
		}, []string{"view"}),

		LayoutInvalidItemsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedule_layout_invalid_items_total",
			Help:        "Schedule items skipped because of invalid time data",
			ConstLabels: constLabels,
		}, []string{"reason"}),

		LayoutDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "schedule_layout_duration_seconds",
			Help:        "Time spent laying out a full schedule grid",
			ConstLabels: constLabels,
			Buckets:     []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}, []string{"view"}),
	}
}

// ObserveLayout фиксирует результат построения сетки
func (m *Metrics) ObserveLayout(view string, blocks int, seconds float64) {
	m.LayoutBlocksTotal.WithLabelValues(view).Add(float64(blocks))
	m.LayoutDuration.WithLabelValues(view).Observe(seconds)
}

// IncInvalidItem фиксирует пропущенный элемент расписания
func (m *Metrics) IncInvalidItem(reason string) {
	m.LayoutInvalidItemsTotal.WithLabelValues(reason).Inc()
}
