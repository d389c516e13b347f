package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusPending — заказ создан и ещё не обработан.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusFulfilled — остаток товара уменьшен на количество заказа.
	OrderStatusFulfilled OrderStatus = "fulfilled"
	// OrderStatusRejected — на складе не хватило товара, остаток не изменён.
	OrderStatusRejected OrderStatus = "rejected"
	// OrderStatusRestored — заказ восстановлен из выгрузки, исходный статус неизвестен.
	OrderStatusRestored OrderStatus = "restored"
)

// Valid проверяет, что статус относится к поддерживаемым значениям.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusFulfilled, OrderStatusRejected, OrderStatusRestored:
		return true
	default:
		return false
	}
}

// Order ссылается на покупателя и товар, но не владеет ими.
type Order struct {
	ID       string
	Customer *Customer
	Product  *Product
	Quantity int
	Status   OrderStatus
}

// NewOrder создаёт заказ в статусе pending.
func NewOrder(customer *Customer, product *Product, quantity int) (*Order, error) {
	order := &Order{
		ID:       uuid.NewString(),
		Customer: customer,
		Product:  product,
		Quantity: quantity,
		Status:   OrderStatusPending,
	}
	if errs := order.ValidateInvariants(); len(errs) > 0 {
		return nil, errs[0]
	}
	return order, nil
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.Customer == nil {
		errs = append(errs, fmt.Errorf("%w: customer is required", ErrInvalidOrder))
	}
	if o.Product == nil {
		errs = append(errs, fmt.Errorf("%w: product is required", ErrInvalidOrder))
	}
	if o.Quantity <= 0 {
		errs = append(errs, fmt.Errorf("%w: quantity must be greater than zero, got %d", ErrInvalidOrder, o.Quantity))
	}

	return errs
}

// Process списывает количество заказа с остатка товара.
// Переход возможен только из pending; при нехватке товара заказ становится rejected,
// а остаток остаётся прежним. Некорректный заказ статус не меняет.
func (o *Order) Process() error {
	if !o.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidOrder, o.Status)
	}
	if o.Status != OrderStatusPending {
		return fmt.Errorf("%w: order %s is %s", ErrOrderAlreadyProcessed, o.ID, o.Status)
	}
	if errs := o.ValidateInvariants(); len(errs) > 0 {
		return errors.Join(errs...)
	}
	if o.Quantity > o.Product.Quantity {
		o.Status = OrderStatusRejected
		return fmt.Errorf("%w: %q requested %d, available %d",
			ErrInsufficientStock, o.Product.Name, o.Quantity, o.Product.Quantity)
	}

	o.Product.Quantity -= o.Quantity
	o.Status = OrderStatusFulfilled
	return nil
}
