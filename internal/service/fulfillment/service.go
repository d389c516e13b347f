package fulfillment

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/estore/internal/domain"
	"github.com/vladislavdragonenkov/estore/internal/metrics"
)

// Причины отказа для метрик.
const (
	ReasonInsufficientStock = "insufficient_stock"
	ReasonAlreadyProcessed  = "already_processed"
	ReasonInvalidOrder      = "invalid_order"
	ReasonOther             = "other"
)

// Result — итог обработки заказов магазина.
type Result struct {
	Fulfilled int
	Rejected  int
}

// Service обрабатывает заказы: списывает остатки, пишет журнал, логи и метрики.
// Ошибки не откатывают уже выполненные заказы.
type Service struct {
	journal domain.OrderJournal
	logger  *log.Entry
	metrics *metrics.InventoryMetrics
	now     func() time.Time
}

// NewService создаёт сервис обработки заказов. journal и m могут быть nil.
func NewService(journal domain.OrderJournal, logger *log.Entry, m *metrics.InventoryMetrics) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "fulfillment")
	}
	return &Service{
		journal: journal,
		logger:  logger,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Process обрабатывает один заказ и возвращает ошибку домена без изменений.
func (s *Service) Process(order *domain.Order) error {
	fields := log.Fields{
		"order_id": order.ID,
		"quantity": order.Quantity,
	}
	if order.Customer != nil {
		fields["customer"] = order.Customer.Name
	}
	if order.Product != nil {
		fields["product"] = order.Product.Name
	}
	logger := s.logger.WithFields(fields)

	if err := order.Process(); err != nil {
		logger.WithError(err).Warn("order rejected")
		s.recordRejected(order, err)
		return err
	}

	logger.WithField("left", order.Product.Quantity).Info("order fulfilled")
	if s.metrics != nil {
		s.metrics.RecordFulfilled(order.Quantity)
	}
	s.appendEvent(domain.OrderEvent{
		OrderID:  order.ID,
		Type:     domain.OrderEventFulfilled,
		Product:  order.Product.Name,
		Quantity: order.Quantity,
	})
	return nil
}

// ProcessStore обрабатывает все заказы магазина в статусе pending по порядку.
// Отказ по одному заказу не останавливает остальные; все ошибки объединяются.
func (s *Service) ProcessStore(ctx context.Context, store *domain.Store) (Result, error) {
	var (
		result Result
		errs   []error
	)

	for _, order := range store.PendingOrders() {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := s.Process(order); err != nil {
			result.Rejected++
			errs = append(errs, err)
			continue
		}
		result.Fulfilled++
	}

	s.logger.WithFields(log.Fields{
		"store":     store.Name,
		"fulfilled": result.Fulfilled,
		"rejected":  result.Rejected,
	}).Info("orders processed")

	return result, errors.Join(errs...)
}

func (s *Service) recordRejected(order *domain.Order, err error) {
	if s.metrics != nil {
		s.metrics.RecordRejected(rejectReason(err))
	}
	event := domain.OrderEvent{
		OrderID:  order.ID,
		Type:     domain.OrderEventRejected,
		Quantity: order.Quantity,
		Reason:   err.Error(),
	}
	if order.Product != nil {
		event.Product = order.Product.Name
	}
	s.appendEvent(event)
}

func (s *Service) appendEvent(event domain.OrderEvent) {
	if s.journal == nil {
		return
	}
	event.Occurred = s.now()
	if err := s.journal.Append(event); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"order_id": event.OrderID,
			"event":    event.Type,
		}).Warn("append journal event failed")
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return ReasonInsufficientStock
	case errors.Is(err, domain.ErrOrderAlreadyProcessed):
		return ReasonAlreadyProcessed
	case errors.Is(err, domain.ErrInvalidOrder):
		return ReasonInvalidOrder
	default:
		return ReasonOther
	}
}
