package domain

import (
	"fmt"
	"slices"
)

// Store — корневой агрегат: склады, покупатели, заказы и сотрудники магазина.
// Заказ может ссылаться на покупателя или товар, которых нет в коллекциях магазина.
// Store не синхронизирован: вызывающий код не должен менять его из нескольких горутин.
type Store struct {
	Name       string
	warehouses []*Warehouse
	customers  []*Customer
	orders     []*Order
	workers    []*Worker
}

// NewStore создаёт пустой магазин.
func NewStore(name string) *Store {
	return &Store{Name: name}
}

// AddWarehouse добавляет склад.
func (s *Store) AddWarehouse(warehouse *Warehouse) {
	s.warehouses = append(s.warehouses, warehouse)
}

// AddCustomer добавляет покупателя.
func (s *Store) AddCustomer(customer *Customer) {
	s.customers = append(s.customers, customer)
}

// AddOrder добавляет заказ.
func (s *Store) AddOrder(order *Order) {
	s.orders = append(s.orders, order)
}

// AddWorker добавляет сотрудника магазина (вне привязки к складу).
func (s *Store) AddWorker(worker *Worker) {
	s.workers = append(s.workers, worker)
}

// Warehouses возвращает склады в порядке добавления.
func (s *Store) Warehouses() []*Warehouse {
	return slices.Clone(s.warehouses)
}

// Customers возвращает покупателей в порядке добавления.
func (s *Store) Customers() []*Customer {
	return slices.Clone(s.customers)
}

// Orders возвращает заказы в порядке добавления.
func (s *Store) Orders() []*Order {
	return slices.Clone(s.orders)
}

// Workers возвращает сотрудников магазина в порядке добавления.
func (s *Store) Workers() []*Worker {
	return slices.Clone(s.workers)
}

// FindCustomer возвращает первого покупателя с указанным именем.
func (s *Store) FindCustomer(name string) (*Customer, error) {
	idx := slices.IndexFunc(s.customers, func(c *Customer) bool { return c.Name == name })
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrCustomerNotFound, name)
	}
	return s.customers[idx], nil
}

// FindWarehouse возвращает первый склад с указанной локацией.
func (s *Store) FindWarehouse(location string) (*Warehouse, error) {
	idx := slices.IndexFunc(s.warehouses, func(w *Warehouse) bool { return w.Location == location })
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrWarehouseNotFound, location)
	}
	return s.warehouses[idx], nil
}

// FindProduct ищет товар по имени во всех складах по порядку.
func (s *Store) FindProduct(name string) (*Product, error) {
	for _, w := range s.warehouses {
		if p, err := w.FindProduct(name); err == nil {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrProductNotFound, name)
}

// PendingOrders возвращает заказы в статусе pending.
func (s *Store) PendingOrders() []*Order {
	var result []*Order
	for _, o := range s.orders {
		if o.Status == OrderStatusPending {
			result = append(result, o)
		}
	}
	return result
}
