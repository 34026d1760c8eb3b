package memory

import (
	"context"
	"sort"

	"jpashop/internal/entities"
)

// SaveItem stores an item of any kind.
func (m *Memory) SaveItem(_ context.Context, item entities.Item) (*entities.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seqItem++
	item.ID = m.seqItem
	m.items[item.ID] = item

	m.log.Infow("item saved", "item_id", item.ID, "kind", item.Kind)
	return &item, nil
}

// GetItem fetches an item by id.
func (m *Memory) GetItem(_ context.Context, id int64) (*entities.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[id]
	if !ok {
		return nil, entities.ErrItemNotFound
	}
	return &item, nil
}

// ListItems returns all items ordered by id.
func (m *Memory) ListItems(_ context.Context) ([]entities.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]entities.Item, 0, len(m.items))
	for _, item := range m.items {
		res = append(res, item)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

// UpdateItem overwrites name, price and stock.
func (m *Memory) UpdateItem(_ context.Context, id int64, upd entities.ItemUpdate) (*entities.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok {
		return nil, entities.ErrItemNotFound
	}
	item.Apply(upd)
	m.items[id] = item
	return &item, nil
}
