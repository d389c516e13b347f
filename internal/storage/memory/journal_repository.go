package memory

import (
	"slices"
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/estore/internal/domain"
)

// journalInMemory хранит события обработки заказов одним хронологическим списком.
type journalInMemory struct {
	mu     sync.RWMutex
	events []domain.OrderEvent
}

// NewOrderJournal создаёт in-memory реализацию OrderJournal.
func NewOrderJournal() domain.OrderJournal {
	return &journalInMemory{}
}

// Append вставляет событие после всех событий с тем же или более ранним временем.
func (r *journalInMemory) Append(event domain.OrderEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := sort.Search(len(r.events), func(i int) bool {
		return r.events[i].Occurred.After(event.Occurred)
	})
	r.events = slices.Insert(r.events, idx, event)
	return nil
}

// List возвращает события заказа в хронологическом порядке.
func (r *journalInMemory) List(orderID string) ([]domain.OrderEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.OrderEvent
	for _, e := range r.events {
		if e.OrderID == orderID {
			result = append(result, e)
		}
	}
	return result, nil
}

// ListAll возвращает копию всего журнала.
func (r *journalInMemory) ListAll() ([]domain.OrderEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.events), nil
}

var _ domain.OrderJournal = (*journalInMemory)(nil)
