package app

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/estore/internal/domain"
	"github.com/vladislavdragonenkov/estore/internal/export"
	"github.com/vladislavdragonenkov/estore/internal/seed"
	"github.com/vladislavdragonenkov/estore/internal/service/fulfillment"
)

// Report — итог запуска.
type Report struct {
	Store       *domain.Store
	Result      fulfillment.Result
	JSONPath    string
	XMLPath     string
	MetricsPath string
	OrderErrs   error
	// Events — журнал обработки заказов в хронологическом порядке.
	Events []domain.OrderEvent
}

// Run строит магазин, обрабатывает заказы и сохраняет выгрузки.
//
// Ошибки обработки заказов (ErrStore) не прерывают запуск: они попадают в Report.OrderErrs,
// а выгрузка отражает состояние после всех успешных заказов.
func Run(ctx context.Context, cfg Config, deps *Dependencies) (Report, error) {
	if deps == nil {
		deps = NewDependencies(nil)
	}
	logger := deps.Logger

	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	store, err := loadStore(cfg)
	if err != nil {
		return Report{}, err
	}
	logger.WithFields(log.Fields{
		"store":      store.Name,
		"warehouses": len(store.Warehouses()),
		"orders":     len(store.Orders()),
	}).Info("store loaded")

	svc := fulfillment.NewService(deps.Journal, logger.WithField("layer", "fulfillment"), deps.Metrics)
	result, orderErrs := svc.ProcessStore(ctx, store)
	if orderErrs != nil && !domain.IsStoreError(orderErrs) {
		return Report{}, orderErrs
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	report := Report{Store: store, Result: result, OrderErrs: orderErrs}
	if deps.Journal != nil {
		events, err := deps.Journal.ListAll()
		if err != nil {
			return Report{}, fmt.Errorf("read order journal: %w", err)
		}
		report.Events = events
	}

	if cfg.JSONPath != "" {
		if err := exportFile(deps, "json", cfg.JSONPath, func() error { return export.SaveJSON(store, cfg.JSONPath) }); err != nil {
			return report, err
		}
		report.JSONPath = cfg.JSONPath
	}
	if cfg.XMLPath != "" {
		if err := exportFile(deps, "xml", cfg.XMLPath, func() error { return export.SaveXML(store, cfg.XMLPath) }); err != nil {
			return report, err
		}
		report.XMLPath = cfg.XMLPath
	}
	if cfg.MetricsPath != "" {
		if err := writeMetrics(deps, cfg.MetricsPath); err != nil {
			return report, err
		}
		report.MetricsPath = cfg.MetricsPath
	}

	return report, nil
}

func loadStore(cfg Config) (*domain.Store, error) {
	if cfg.SeedPath == "" {
		store, err := seed.Demo().Build()
		if err != nil {
			return nil, fmt.Errorf("build demo store: %w", err)
		}
		return store, nil
	}
	return seed.Load(cfg.SeedPath)
}

func exportFile(deps *Dependencies, format, path string, save func() error) error {
	start := time.Now()
	err := save()
	if deps.Metrics != nil {
		deps.Metrics.RecordExport(format, time.Since(start), err)
	}

	logger := deps.Logger.WithFields(log.Fields{"format": format, "path": path})
	if err != nil {
		logger.WithError(err).Error("export failed")
		return err
	}
	logger.Info("store exported")
	return nil
}

// writeMetrics сохраняет текущие значения метрик в текстовом формате Prometheus
// (подходит для textfile collector у node_exporter).
func writeMetrics(deps *Dependencies, path string) error {
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	logger := deps.Logger.WithField("path", path)
	if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
		logger.WithError(err).Error("write metrics failed")
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	logger.Info("metrics written")
	return nil
}
