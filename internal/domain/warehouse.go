package domain

import (
	"fmt"
	"slices"
)

// Warehouse владеет товарами и сотрудниками, локация выступает его именем.
// Поиск по имени товара возвращает первое совпадение: дубликаты при добавлении не проверяются.
type Warehouse struct {
	Location string
	products []*Product
	workers  []*Worker
}

// NewWarehouse создаёт пустой склад.
func NewWarehouse(location string) *Warehouse {
	return &Warehouse{Location: location}
}

// AddProduct добавляет товар в конец списка.
func (w *Warehouse) AddProduct(product *Product) {
	w.products = append(w.products, product)
}

// Products возвращает снимок товаров склада. Изменение снимка не влияет на склад.
func (w *Warehouse) Products() []Product {
	result := make([]Product, 0, len(w.products))
	for _, p := range w.products {
		result = append(result, *p)
	}
	return result
}

// Product возвращает товар по идентификатору.
func (w *Warehouse) Product(id string) (*Product, error) {
	idx := w.indexByID(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: id %q in %q", ErrProductNotFound, id, w.Location)
	}
	return w.products[idx], nil
}

// FindProduct возвращает первый товар с указанным именем.
func (w *Warehouse) FindProduct(name string) (*Product, error) {
	idx := w.indexByName(name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q in %q", ErrProductNotFound, name, w.Location)
	}
	return w.products[idx], nil
}

// UpdateProduct меняет цену первого товара с указанным именем. Остаток не меняется.
func (w *Warehouse) UpdateProduct(name string, newPrice float64) error {
	product, err := w.FindProduct(name)
	if err != nil {
		return err
	}
	return setPrice(product, newPrice)
}

// UpdateProductByID меняет цену товара с указанным идентификатором.
func (w *Warehouse) UpdateProductByID(id string, newPrice float64) error {
	product, err := w.Product(id)
	if err != nil {
		return err
	}
	return setPrice(product, newPrice)
}

// RemoveProduct удаляет первый товар с указанным именем.
func (w *Warehouse) RemoveProduct(name string) error {
	idx := w.indexByName(name)
	if idx < 0 {
		return fmt.Errorf("%w: %q in %q", ErrProductNotFound, name, w.Location)
	}
	w.products = slices.Delete(w.products, idx, idx+1)
	return nil
}

// RemoveProductByID удаляет товар с указанным идентификатором.
func (w *Warehouse) RemoveProductByID(id string) error {
	idx := w.indexByID(id)
	if idx < 0 {
		return fmt.Errorf("%w: id %q in %q", ErrProductNotFound, id, w.Location)
	}
	w.products = slices.Delete(w.products, idx, idx+1)
	return nil
}

// AddWorker добавляет сотрудника на склад.
func (w *Warehouse) AddWorker(worker *Worker) {
	w.workers = append(w.workers, worker)
}

// Workers возвращает снимок сотрудников склада.
func (w *Warehouse) Workers() []Worker {
	result := make([]Worker, 0, len(w.workers))
	for _, wr := range w.workers {
		result = append(result, *wr)
	}
	return result
}

// Validate проверяет инварианты всех товаров склада.
func (w *Warehouse) Validate() []error {
	var errs []error
	for _, p := range w.products {
		for _, err := range p.Validate() {
			errs = append(errs, fmt.Errorf("product %q: %w", p.Name, err))
		}
	}
	return errs
}

func (w *Warehouse) indexByName(name string) int {
	return slices.IndexFunc(w.products, func(p *Product) bool { return p.Name == name })
}

func (w *Warehouse) indexByID(id string) int {
	return slices.IndexFunc(w.products, func(p *Product) bool { return p.ID == id })
}

func setPrice(product *Product, price float64) error {
	if price < 0 {
		return fmt.Errorf("%w: %q got %v", ErrPriceNegative, product.Name, price)
	}
	product.Price = price
	return nil
}
