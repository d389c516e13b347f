package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vladislavdragonenkov/estore/internal/domain"
)

const recordIndent = "    "

type recordDocument struct {
	Name       string            `json:"name"`
	Warehouses []recordWarehouse `json:"warehouses"`
	Customers  []recordCustomer  `json:"customers"`
	Orders     []recordOrder     `json:"orders"`
}

type recordWarehouse struct {
	Location string          `json:"location"`
	Products []recordProduct `json:"products"`
	Workers  []recordWorker  `json:"workers"`
}

type recordProduct struct {
	Name     string `json:"name"`
	Price    price  `json:"price"`
	Quantity int    `json:"quantity"`
}

type recordWorker struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type recordCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type recordOrder struct {
	Customer string `json:"customer"`
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// EncodeRecord строит JSON-документ магазина: UTF-8 без экранирования не-ASCII,
// отступ в четыре пробела, без завершающего перевода строки.
func EncodeRecord(store *domain.Store) ([]byte, error) {
	doc := newRecordDocument(store)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", recordIndent)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// SaveJSON полностью перезаписывает файл path JSON-документом магазина.
func SaveJSON(store *domain.Store, path string) error {
	data, err := EncodeRecord(store)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json %s: %w", path, err)
	}
	return nil
}

func newRecordDocument(store *domain.Store) recordDocument {
	warehouses := store.Warehouses()
	customers := store.Customers()
	orders := store.Orders()

	doc := recordDocument{
		Name:       store.Name,
		Warehouses: make([]recordWarehouse, 0, len(warehouses)),
		Customers:  make([]recordCustomer, 0, len(customers)),
		Orders:     make([]recordOrder, 0, len(orders)),
	}

	for _, w := range warehouses {
		products := w.Products()
		workers := w.Workers()
		rw := recordWarehouse{
			Location: w.Location,
			Products: make([]recordProduct, 0, len(products)),
			Workers:  make([]recordWorker, 0, len(workers)),
		}
		for _, p := range products {
			rw.Products = append(rw.Products, recordProduct{Name: p.Name, Price: price(p.Price), Quantity: p.Quantity})
		}
		for _, wr := range workers {
			rw.Workers = append(rw.Workers, recordWorker{Name: wr.Name, Role: wr.Role})
		}
		doc.Warehouses = append(doc.Warehouses, rw)
	}

	for _, c := range customers {
		doc.Customers = append(doc.Customers, recordCustomer{Name: c.Name, Email: c.Email})
	}

	// Заказ теряет идентичность объектов: остаются только имена.
	for _, o := range orders {
		ro := recordOrder{Quantity: o.Quantity}
		if o.Customer != nil {
			ro.Customer = o.Customer.Name
		}
		if o.Product != nil {
			ro.Product = o.Product.Name
		}
		doc.Orders = append(doc.Orders, ro)
	}

	return doc
}
