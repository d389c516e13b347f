package fulfillment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/estore/internal/domain"
	"github.com/vladislavdragonenkov/estore/internal/metrics"
	"github.com/vladislavdragonenkov/estore/internal/storage/memory"
)

type failingJournal struct {
	mu    sync.Mutex
	calls int
}

func (j *failingJournal) Append(domain.OrderEvent) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.calls++
	return errors.New("journal unavailable")
}

func (j *failingJournal) List(string) ([]domain.OrderEvent, error) {
	return nil, nil
}

func (j *failingJournal) ListAll() ([]domain.OrderEvent, error) {
	return nil, nil
}

func newTestService(t *testing.T) (*Service, domain.OrderJournal, *metrics.InventoryMetrics, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	journal := memory.NewOrderJournal()
	m := metrics.NewInventoryMetricsWithRegisterer(prometheus.NewRegistry())

	svc := NewService(journal, logger.WithField("component", "fulfillment"), m)
	fixed := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	return svc, journal, m, hook
}

func seedStore(t *testing.T, quantities ...int) (*domain.Store, *domain.Product) {
	t.Helper()

	store := domain.NewStore("TechStore")
	w := domain.NewWarehouse("Moscow")
	laptop := domain.NewProduct("Laptop", 75000.0, 10)
	w.AddProduct(laptop)
	store.AddWarehouse(w)
	customer := domain.NewCustomer("Petr", "petr@mail.ru")
	store.AddCustomer(customer)

	for _, q := range quantities {
		order, err := domain.NewOrder(customer, laptop, q)
		require.NoError(t, err)
		store.AddOrder(order)
	}
	return store, laptop
}

func TestService_ProcessFulfilled(t *testing.T) {
	svc, journal, m, hook := newTestService(t)
	store, laptop := seedStore(t, 1)
	order := store.Orders()[0]

	require.NoError(t, svc.Process(order))
	assert.Equal(t, 9, laptop.Quantity)

	events, err := journal.List(order.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.OrderEventFulfilled, events[0].Type)
	assert.Equal(t, "Laptop", events[0].Product)
	assert.Equal(t, 1, events[0].Quantity)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersFulfilled))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UnitsShipped))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.InfoLevel, entry.Level)
	assert.Equal(t, "order fulfilled", entry.Message)
	assert.Equal(t, 9, entry.Data["left"])
}

func TestService_ProcessInsufficientStock(t *testing.T) {
	svc, journal, m, hook := newTestService(t)
	store, laptop := seedStore(t, 11)
	order := store.Orders()[0]

	err := svc.Process(order)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, laptop.Quantity)

	events, _ := journal.List(order.ID)
	require.Len(t, events, 1)
	assert.Equal(t, domain.OrderEventRejected, events[0].Type)
	assert.Contains(t, events[0].Reason, "Laptop")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersRejected.WithLabelValues(ReasonInsufficientStock)))
	assert.Equal(t, log.WarnLevel, hook.LastEntry().Level)
}

func TestService_ProcessTwice(t *testing.T) {
	svc, _, m, _ := newTestService(t)
	store, laptop := seedStore(t, 2)
	order := store.Orders()[0]

	require.NoError(t, svc.Process(order))
	require.ErrorIs(t, svc.Process(order), domain.ErrOrderAlreadyProcessed)
	assert.Equal(t, 8, laptop.Quantity)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersRejected.WithLabelValues(ReasonAlreadyProcessed)))
}

func TestService_ProcessInvalidOrder(t *testing.T) {
	svc, _, m, _ := newTestService(t)
	order := &domain.Order{ID: "broken", Quantity: 0, Status: domain.OrderStatusPending}

	err := svc.Process(order)
	require.ErrorIs(t, err, domain.ErrInvalidOrder)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersRejected.WithLabelValues(ReasonInvalidOrder)))
}

func TestService_ProcessStore(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	store, laptop := seedStore(t, 4, 20, 5, 2)

	result, err := svc.ProcessStore(context.Background(), store)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, domain.IsStoreError(err))

	// 4 и 5 выполнены, 20 и 2 (осталось 1) отклонены; выполненные не откатываются.
	assert.Equal(t, Result{Fulfilled: 2, Rejected: 2}, result)
	assert.Equal(t, 1, laptop.Quantity)
}

func TestService_ProcessStoreSkipsProcessedOrders(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	store, laptop := seedStore(t, 1, 1)

	_, err := svc.ProcessStore(context.Background(), store)
	require.NoError(t, err)

	result, err := svc.ProcessStore(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, Result{}, result)
	assert.Equal(t, 8, laptop.Quantity)
}

func TestService_ProcessStoreCanceled(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	store, laptop := seedStore(t, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := svc.ProcessStore(ctx, store)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Result{}, result)
	assert.Equal(t, 10, laptop.Quantity)
}

func TestService_JournalFailureDoesNotFailOrder(t *testing.T) {
	logger, hook := test.NewNullLogger()
	journal := &failingJournal{}
	svc := NewService(journal, logger.WithField("component", "fulfillment"), nil)
	store, laptop := seedStore(t, 3)

	require.NoError(t, svc.Process(store.Orders()[0]))
	assert.Equal(t, 7, laptop.Quantity)
	assert.Equal(t, 1, journal.calls)
	assert.Equal(t, "append journal event failed", hook.LastEntry().Message)
}

func TestNewService_Defaults(t *testing.T) {
	svc := NewService(nil, nil, nil)
	require.NotNil(t, svc.logger)

	store, laptop := seedStore(t, 1)
	require.NoError(t, svc.Process(store.Orders()[0]))
	assert.Equal(t, 9, laptop.Quantity)
}
