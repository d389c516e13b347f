package app

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/estore/internal/domain"
	"github.com/vladislavdragonenkov/estore/internal/metrics"
	"github.com/vladislavdragonenkov/estore/internal/storage/memory"
)

// Dependencies содержит все зависимости приложения.
type Dependencies struct {
	Journal  domain.OrderJournal
	Metrics  *metrics.InventoryMetrics
	// Gatherer — источник метрик для записи в файл; обычно тот же реестр, что и у Metrics.
	Gatherer prometheus.Gatherer
	Logger   *log.Entry
}

// NewDependencies создаёт зависимости с in-memory журналом и собственным реестром метрик,
// поэтому в выгрузку попадают только метрики текущего запуска.
func NewDependencies(logger *log.Entry) *Dependencies {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	registry := prometheus.NewRegistry()
	return &Dependencies{
		Journal:  memory.NewOrderJournal(),
		Metrics:  metrics.NewInventoryMetricsWithRegisterer(registry),
		Gatherer: registry,
		Logger:   logger,
	}
}
