package domain

// OrderJournal хранит события обработки заказов.
type OrderJournal interface {
	Append(event OrderEvent) error
	// List возвращает события одного заказа в хронологическом порядке.
	List(orderID string) ([]OrderEvent, error)
	// ListAll возвращает события всех заказов в хронологическом порядке;
	// события с одинаковым временем идут в порядке добавления.
	ListAll() ([]OrderEvent, error)
}
