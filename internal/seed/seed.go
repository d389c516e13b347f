// Package seed описывает начальное наполнение магазина в TOML и строит по нему агрегат.
package seed

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/vladislavdragonenkov/estore/internal/domain"
)

// Document — содержимое seed-файла.
type Document struct {
	Name       string      `toml:"name"`
	Warehouses []Warehouse `toml:"warehouses"`
	Customers  []Customer  `toml:"customers"`
	Workers    []Worker    `toml:"workers"`
	Orders     []Order     `toml:"orders"`
}

// Warehouse описывает склад с товарами и сотрудниками.
type Warehouse struct {
	Location string    `toml:"location"`
	Products []Product `toml:"products"`
	Workers  []Worker  `toml:"workers"`
}

// Product описывает товар.
type Product struct {
	Name     string  `toml:"name"`
	Price    float64 `toml:"price"`
	Quantity int     `toml:"quantity"`
}

// Worker описывает сотрудника.
type Worker struct {
	Name string `toml:"name"`
	Role string `toml:"role"`
}

// Customer описывает покупателя.
type Customer struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// Order ссылается на покупателя и товар по имени.
// Если Warehouse пуст, товар ищется во всех складах по порядку.
type Order struct {
	Customer  string `toml:"customer"`
	Product   string `toml:"product"`
	Warehouse string `toml:"warehouse"`
	Quantity  int    `toml:"quantity"`
}

// Load читает seed-файл и строит магазин.
func Load(path string) (*domain.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	return Parse(data)
}

// Parse разбирает TOML и строит магазин.
func Parse(data []byte) (*domain.Store, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return doc.Build()
}

// Build создаёт магазин по документу. Товары проверяются на инварианты,
// ссылки заказов разрешаются по первому совпадению имени.
func (d Document) Build() (*domain.Store, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("seed: store %w", domain.ErrNameRequired)
	}

	store := domain.NewStore(d.Name)
	var errs []error

	for _, sw := range d.Warehouses {
		w := domain.NewWarehouse(sw.Location)
		for _, sp := range sw.Products {
			p := domain.NewProduct(sp.Name, sp.Price, sp.Quantity)
			for _, err := range p.Validate() {
				errs = append(errs, fmt.Errorf("seed: warehouse %q product %q: %w", sw.Location, sp.Name, err))
			}
			w.AddProduct(p)
		}
		for _, wr := range sw.Workers {
			w.AddWorker(domain.NewWorker(wr.Name, wr.Role))
		}
		store.AddWarehouse(w)
	}

	for _, c := range d.Customers {
		store.AddCustomer(domain.NewCustomer(c.Name, c.Email))
	}
	for _, wr := range d.Workers {
		store.AddWorker(domain.NewWorker(wr.Name, wr.Role))
	}

	for i, so := range d.Orders {
		order, err := buildOrder(store, so)
		if err != nil {
			errs = append(errs, fmt.Errorf("seed: order %d: %w", i, err))
			continue
		}
		store.AddOrder(order)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return store, nil
}

func buildOrder(store *domain.Store, so Order) (*domain.Order, error) {
	customer, err := store.FindCustomer(so.Customer)
	if err != nil {
		return nil, err
	}

	var product *domain.Product
	if so.Warehouse != "" {
		w, err := store.FindWarehouse(so.Warehouse)
		if err != nil {
			return nil, err
		}
		product, err = w.FindProduct(so.Product)
		if err != nil {
			return nil, err
		}
	} else {
		product, err = store.FindProduct(so.Product)
		if err != nil {
			return nil, err
		}
	}

	return domain.NewOrder(customer, product, so.Quantity)
}

// Demo возвращает демонстрационный набор: магазин TechStore со складом в Москве.
func Demo() Document {
	return Document{
		Name: "TechStore",
		Warehouses: []Warehouse{{
			Location: "Москва",
			Products: []Product{
				{Name: "Ноутбук", Price: 75000.0, Quantity: 10},
				{Name: "Смартфон", Price: 45000.0, Quantity: 15},
			},
			Workers: []Worker{{Name: "Иван", Role: "менеджер склада"}},
		}},
		Customers: []Customer{{Name: "Петр", Email: "petr@mail.ru"}},
		Orders:    []Order{{Customer: "Петр", Product: "Ноутбук", Quantity: 1}},
	}
}
