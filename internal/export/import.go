package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/vladislavdragonenkov/estore/internal/domain"
)

// DecodeRecord восстанавливает магазин из JSON-документа.
//
// Идентичность объектов в документе не хранится, поэтому заказ связывается с первым
// покупателем и первым товаром с тем же именем. Если такого нет в коллекциях магазина,
// заказ получает отдельную ссылку с этим именем. Все восстановленные заказы имеют
// статус restored и повторно не обрабатываются. Товары с отрицательной ценой или
// остатком не загружаются: все нарушения возвращаются одной ошибкой.
func DecodeRecord(data []byte) (*domain.Store, error) {
	var doc recordDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}

	store := domain.NewStore(doc.Name)
	var errs []error
	for _, rw := range doc.Warehouses {
		w := domain.NewWarehouse(rw.Location)
		for _, rp := range rw.Products {
			p := domain.NewProduct(rp.Name, float64(rp.Price), rp.Quantity)
			for _, err := range p.Validate() {
				errs = append(errs, fmt.Errorf("decode record: warehouse %q product %q: %w", rw.Location, rp.Name, err))
			}
			w.AddProduct(p)
		}
		for _, wr := range rw.Workers {
			w.AddWorker(domain.NewWorker(wr.Name, wr.Role))
		}
		store.AddWarehouse(w)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	for _, rc := range doc.Customers {
		store.AddCustomer(domain.NewCustomer(rc.Name, rc.Email))
	}

	for i, ro := range doc.Orders {
		customer, err := store.FindCustomer(ro.Customer)
		if errors.Is(err, domain.ErrCustomerNotFound) {
			customer = domain.NewCustomer(ro.Customer, "")
		}
		product, err := store.FindProduct(ro.Product)
		if errors.Is(err, domain.ErrProductNotFound) {
			product = domain.NewProduct(ro.Product, 0, 0)
		}

		order, err := domain.NewOrder(customer, product, ro.Quantity)
		if err != nil {
			return nil, fmt.Errorf("decode record: order %d: %w", i, err)
		}
		order.Status = domain.OrderStatusRestored
		store.AddOrder(order)
	}

	return store, nil
}

// LoadJSON читает JSON-документ из файла path и восстанавливает магазин.
func LoadJSON(path string) (*domain.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read json %s: %w", path, err)
	}
	return DecodeRecord(data)
}
