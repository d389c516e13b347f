package export

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"strconv"

	"github.com/vladislavdragonenkov/estore/internal/domain"
)

type markupStore struct {
	XMLName    xml.Name          `xml:"estore"`
	Name       string            `xml:"name,attr"`
	Warehouses []markupWarehouse `xml:"warehouse"`
}

type markupWarehouse struct {
	Location string          `xml:"location,attr"`
	Products []markupProduct `xml:"product"`
}

type markupProduct struct {
	Name     string `xml:"name,attr"`
	Price    string `xml:"price,attr"`
	Quantity string `xml:"quantity,attr"`
}

// EncodeMarkup строит XML-документ магазина: декларация UTF-8, затем дерево
// estore → warehouse@location → product@name,price,quantity.
func EncodeMarkup(store *domain.Store) ([]byte, error) {
	doc := newMarkupStore(store)

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("encode markup: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveXML полностью перезаписывает файл path XML-документом магазина.
func SaveXML(store *domain.Store, path string) error {
	data, err := EncodeMarkup(store)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write xml %s: %w", path, err)
	}
	return nil
}

func newMarkupStore(store *domain.Store) markupStore {
	warehouses := store.Warehouses()
	doc := markupStore{
		Name:       store.Name,
		Warehouses: make([]markupWarehouse, 0, len(warehouses)),
	}
	for _, w := range warehouses {
		mw := markupWarehouse{Location: w.Location}
		for _, p := range w.Products() {
			mw.Products = append(mw.Products, markupProduct{
				Name:     p.Name,
				Price:    formatPrice(p.Price),
				Quantity: strconv.Itoa(p.Quantity),
			})
		}
		doc.Warehouses = append(doc.Warehouses, mw)
	}
	return doc
}
