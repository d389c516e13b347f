package domain

import (
	"errors"
	"fmt"
)

// ErrStore — базовая ошибка предметной области магазина.
// Все остальные ошибки пакета её уточняют, поэтому errors.Is(err, ErrStore) истинно для любой из них.
var ErrStore = errors.New("store error")

var (
	// ErrProductNotFound возвращается, если на складе нет товара с указанным именем или ID.
	ErrProductNotFound = fmt.Errorf("%w: product not found", ErrStore)
	// ErrInsufficientStock возвращается, если заказ запрашивает больше, чем есть на складе.
	ErrInsufficientStock = fmt.Errorf("%w: insufficient stock", ErrStore)
	// ErrInvalidOrder — некорректный заказ (нет покупателя/товара или количество <= 0).
	ErrInvalidOrder = fmt.Errorf("%w: invalid order", ErrStore)
	// ErrOrderAlreadyProcessed — повторная обработка заказа не в статусе pending.
	ErrOrderAlreadyProcessed = fmt.Errorf("%w: order already processed", ErrStore)
	// ErrCustomerNotFound возвращается, если покупатель с указанным именем не найден.
	ErrCustomerNotFound = fmt.Errorf("%w: customer not found", ErrStore)
	// ErrWarehouseNotFound возвращается, если склад с указанной локацией не найден.
	ErrWarehouseNotFound = fmt.Errorf("%w: warehouse not found", ErrStore)
	// ErrPriceNegative — отрицательная цена товара.
	ErrPriceNegative = fmt.Errorf("%w: price must be non-negative", ErrStore)
	// ErrQuantityNegative — отрицательный остаток товара.
	ErrQuantityNegative = fmt.Errorf("%w: quantity must be non-negative", ErrStore)
	// ErrNameRequired — пустое имя товара.
	ErrNameRequired = fmt.Errorf("%w: name is required", ErrStore)
)

// IsStoreError проверяет, относится ли ошибка к ошибкам магазина.
func IsStoreError(err error) bool {
	return errors.Is(err, ErrStore)
}

// IsNotFound проверяет, является ли ошибка ошибкой поиска (товар, покупатель, склад).
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrWarehouseNotFound)
}
