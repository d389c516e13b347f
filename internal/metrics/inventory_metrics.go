package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// InventoryMetrics содержит метрики обработки заказов и выгрузок.
type InventoryMetrics struct {
	OrdersFulfilled prometheus.Counter
	OrdersRejected  *prometheus.CounterVec
	UnitsShipped    prometheus.Counter

	exports        *prometheus.CounterVec
	exportDuration *prometheus.HistogramVec
}

// NewInventoryMetrics регистрирует метрики в prometheus.DefaultRegisterer.
func NewInventoryMetrics() *InventoryMetrics {
	return NewInventoryMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewInventoryMetricsWithRegisterer регистрирует метрики в указанном registerer.
// Повторная регистрация возвращает уже существующие коллекторы.
func NewInventoryMetricsWithRegisterer(registerer prometheus.Registerer) *InventoryMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &InventoryMetrics{
		OrdersFulfilled: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "estore_orders_fulfilled_total",
			Help: "Total number of orders fulfilled",
		})),
		OrdersRejected: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "estore_orders_rejected_total",
			Help: "Total number of orders rejected grouped by reason",
		}, []string{"reason"})),
		UnitsShipped: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "estore_units_shipped_total",
			Help: "Total number of product units written off by fulfilled orders",
		})),
		exports: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "estore_exports_total",
			Help: "Total number of store exports grouped by format and result",
		}, []string{"format", "result"})),
		exportDuration: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "estore_export_duration_seconds",
			Help:    "Duration of store exports in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		}, []string{"format"})),
	}
}

func register[C prometheus.Collector](registerer prometheus.Registerer, collector C) C {
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(C)
			if !ok {
				panic(fmt.Sprintf("collector already registered with unexpected type %T", alreadyRegistered.ExistingCollector))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector: %v", err))
	}
	return collector
}

// RecordFulfilled учитывает выполненный заказ и списанное количество.
func (m *InventoryMetrics) RecordFulfilled(quantity int) {
	m.OrdersFulfilled.Inc()
	m.UnitsShipped.Add(float64(quantity))
}

// RecordRejected учитывает отклонённый заказ.
func (m *InventoryMetrics) RecordRejected(reason string) {
	m.OrdersRejected.WithLabelValues(reason).Inc()
}

// RecordExport учитывает выгрузку и её длительность.
func (m *InventoryMetrics) RecordExport(format string, duration time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.exports.WithLabelValues(format, result).Inc()
	m.exportDuration.WithLabelValues(format).Observe(duration.Seconds())
}
