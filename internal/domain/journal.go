package domain

import "time"

// OrderEventType — тип события в журнале обработки заказов.
type OrderEventType string

const (
	// OrderEventFulfilled — заказ выполнен, остаток списан.
	OrderEventFulfilled OrderEventType = "OrderFulfilled"
	// OrderEventRejected — заказ отклонён, остаток не изменён.
	OrderEventRejected OrderEventType = "OrderRejected"
)

// OrderEvent описывает событие в жизненном цикле заказа.
type OrderEvent struct {
	OrderID  string
	Type     OrderEventType
	Product  string
	Quantity int
	Reason   string
	Occurred time.Time
}
