package domain

import "github.com/google/uuid"

// Product — складская позиция: имя, цена за единицу и текущий остаток.
// Имя не уникально глобально; однозначно товар определяется по ID.
type Product struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
}

// NewProduct создаёт товар с новым идентификатором.
func NewProduct(name string, price float64, quantity int) *Product {
	return &Product{
		ID:       uuid.NewString(),
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}
}

// Validate проверяет базовые инварианты товара и возвращает список замечаний.
func (p *Product) Validate() []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, ErrNameRequired)
	}
	if p.Price < 0 {
		errs = append(errs, ErrPriceNegative)
	}
	if p.Quantity < 0 {
		errs = append(errs, ErrQuantityNegative)
	}

	return errs
}

// Worker — сотрудник склада.
type Worker struct {
	ID   string
	Name string
	Role string
}

// NewWorker создаёт сотрудника с новым идентификатором.
func NewWorker(name, role string) *Worker {
	return &Worker{ID: uuid.NewString(), Name: name, Role: role}
}

// Customer — покупатель магазина.
type Customer struct {
	ID    string
	Name  string
	Email string
}

// NewCustomer создаёт покупателя с новым идентификатором.
func NewCustomer(name, email string) *Customer {
	return &Customer{ID: uuid.NewString(), Name: name, Email: email}
}
