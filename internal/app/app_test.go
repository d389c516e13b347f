package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/estore/internal/domain"
	"github.com/vladislavdragonenkov/estore/internal/export"
	"github.com/vladislavdragonenkov/estore/internal/metrics"
	"github.com/vladislavdragonenkov/estore/internal/storage/memory"
)

func newTestDeps(t *testing.T) (*Dependencies, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	registry := prometheus.NewRegistry()
	return &Dependencies{
		Journal:  memory.NewOrderJournal(),
		Metrics:  metrics.NewInventoryMetricsWithRegisterer(registry),
		Gatherer: registry,
		Logger:   logger.WithField("component", "app"),
	}, hook
}

func testConfig(t *testing.T) Config {
	t.Helper()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.JSONPath = filepath.Join(dir, "estore_data.json")
	cfg.XMLPath = filepath.Join(dir, "estore_data.xml")
	return cfg
}

func TestRun_Demo(t *testing.T) {
	deps, _ := newTestDeps(t)
	cfg := testConfig(t)

	report, err := Run(context.Background(), cfg, deps)
	require.NoError(t, err)
	require.NoError(t, report.OrderErrs)
	assert.Equal(t, 1, report.Result.Fulfilled)
	assert.Equal(t, cfg.JSONPath, report.JSONPath)
	assert.Equal(t, cfg.XMLPath, report.XMLPath)

	store, err := export.LoadJSON(cfg.JSONPath)
	require.NoError(t, err)
	laptop, err := store.FindProduct("Ноутбук")
	require.NoError(t, err)
	assert.Equal(t, 9, laptop.Quantity)

	xmlData, err := os.ReadFile(cfg.XMLPath)
	require.NoError(t, err)
	assert.Contains(t, string(xmlData), `<product name="Ноутбук" price="75000.0" quantity="9">`)

	order := report.Store.Orders()[0]
	events, err := deps.Journal.List(order.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.OrderEventFulfilled, events[0].Type)
	assert.Equal(t, events, report.Events)
}

func TestRun_SeedWithRejectedOrderStillExports(t *testing.T) {
	deps, hook := newTestDeps(t)
	cfg := testConfig(t)
	cfg.XMLPath = ""
	cfg.SeedPath = filepath.Join(t.TempDir(), "store.toml")
	require.NoError(t, os.WriteFile(cfg.SeedPath, []byte(`
name = "TechStore"
[[warehouses]]
location = "Moscow"
  [[warehouses.products]]
  name = "Laptop"
  price = 75000.0
  quantity = 10
[[customers]]
name = "Petr"
email = "petr@mail.ru"
[[orders]]
customer = "Petr"
product = "Laptop"
quantity = 11
[[orders]]
customer = "Petr"
product = "Laptop"
quantity = 4
`), 0o644))

	report, err := Run(context.Background(), cfg, deps)
	require.NoError(t, err)
	require.ErrorIs(t, report.OrderErrs, domain.ErrInsufficientStock)
	assert.Equal(t, 1, report.Result.Fulfilled)
	assert.Equal(t, 1, report.Result.Rejected)
	assert.Empty(t, report.XMLPath)

	data, err := os.ReadFile(cfg.JSONPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"quantity": 6`)

	assert.Equal(t, "store exported", hook.LastEntry().Message)

	require.Len(t, report.Events, 2)
	assert.Equal(t, domain.OrderEventRejected, report.Events[0].Type)
	assert.Equal(t, 11, report.Events[0].Quantity)
	assert.Equal(t, domain.OrderEventFulfilled, report.Events[1].Type)
	assert.Equal(t, 4, report.Events[1].Quantity)
}

func TestRun_WritesMetricsFile(t *testing.T) {
	deps, hook := newTestDeps(t)
	cfg := testConfig(t)
	cfg.MetricsPath = filepath.Join(t.TempDir(), "estore.prom")

	report, err := Run(context.Background(), cfg, deps)
	require.NoError(t, err)
	assert.Equal(t, cfg.MetricsPath, report.MetricsPath)
	assert.Equal(t, "metrics written", hook.LastEntry().Message)

	data, err := os.ReadFile(cfg.MetricsPath)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "estore_orders_fulfilled_total 1")
	assert.Contains(t, text, "estore_units_shipped_total 1")
	assert.Contains(t, text, `estore_exports_total{format="json",result="ok"} 1`)
	assert.Contains(t, text, `estore_exports_total{format="xml",result="ok"} 1`)
	assert.Contains(t, text, `estore_export_duration_seconds_count{format="json"} 1`)
}

func TestRun_MetricsFileUnwritable(t *testing.T) {
	deps, _ := newTestDeps(t)
	cfg := testConfig(t)
	cfg.MetricsPath = filepath.Join(t.TempDir(), "no", "such", "dir", "estore.prom")

	report, err := Run(context.Background(), cfg, deps)
	require.Error(t, err)
	assert.Empty(t, report.MetricsPath)
	assert.Equal(t, cfg.JSONPath, report.JSONPath)
}

func TestNewDependencies_OwnRegistry(t *testing.T) {
	first := NewDependencies(nil)
	second := NewDependencies(nil)

	first.Metrics.RecordFulfilled(2)

	count, err := testutil.GatherAndCount(second.Gatherer, "estore_orders_fulfilled_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 0.0, gatheredValue(t, second.Gatherer, "estore_orders_fulfilled_total"))
	assert.Equal(t, 1.0, gatheredValue(t, first.Gatherer, "estore_orders_fulfilled_total"))
}

func gatheredValue(t *testing.T, g prometheus.Gatherer, name string) float64 {
	t.Helper()

	families, err := g.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			require.Len(t, mf.GetMetric(), 1)
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	t.Fatalf("metric %s not gathered", name)
	return 0
}

func TestRun_RecordsExportMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	deps, _ := newTestDeps(t)
	deps.Metrics = metrics.NewInventoryMetricsWithRegisterer(reg)
	deps.Gatherer = reg

	_, err := Run(context.Background(), testConfig(t), deps)
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(reg, "estore_exports_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRun_Errors(t *testing.T) {
	t.Run("missing seed", func(t *testing.T) {
		deps, _ := newTestDeps(t)
		cfg := testConfig(t)
		cfg.SeedPath = filepath.Join(t.TempDir(), "missing.toml")

		_, err := Run(context.Background(), cfg, deps)
		require.Error(t, err)
	})

	t.Run("invalid config", func(t *testing.T) {
		deps, _ := newTestDeps(t)
		cfg := testConfig(t)
		cfg.LogFormat = "yaml"

		_, err := Run(context.Background(), cfg, deps)
		require.Error(t, err)
	})

	t.Run("unwritable output", func(t *testing.T) {
		deps, hook := newTestDeps(t)
		cfg := testConfig(t)
		cfg.JSONPath = filepath.Join(t.TempDir(), "no", "such", "dir", "out.json")

		report, err := Run(context.Background(), cfg, deps)
		require.Error(t, err)
		assert.Empty(t, report.JSONPath)
		assert.Equal(t, "export failed", hook.LastEntry().Message)
	})

	t.Run("canceled", func(t *testing.T) {
		deps, _ := newTestDeps(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Run(ctx, testConfig(t), deps)
		require.ErrorIs(t, err, context.Canceled)
	})
}
