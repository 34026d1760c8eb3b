package memory

import (
	"context"

	"jpashop/internal/entities"
)

// SimpleOrders returns every order with member and delivery columns.
func (m *Memory) SimpleOrders(_ context.Context) ([]entities.SimpleOrder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]entities.SimpleOrder, 0, len(m.orders))
	for _, o := range m.sortedOrders() {
		res = append(res, entities.ToSimpleOrder(o))
	}
	return res, nil
}

// OrdersWithMemberDelivery returns a window of order roots.
func (m *Memory) OrdersWithMemberDelivery(ctx context.Context, offset, limit int) ([]entities.SimpleOrder, error) {
	all, err := m.SimpleOrders(ctx)
	if err != nil {
		return nil, err
	}
	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// OrderItemsByOrderIDs returns lines keyed by order id.
func (m *Memory) OrderItemsByOrderIDs(_ context.Context, ids []int64) (map[int64][]entities.OrderItemView, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make(map[int64][]entities.OrderItemView, len(ids))
	for _, id := range ids {
		o, ok := m.orders[id]
		if !ok || len(o.Items) == 0 {
			continue
		}
		res[id] = entities.ToOrderView(m.hydrate(o)).Items
	}
	return res, nil
}

// OrderViews returns every order with its lines.
func (m *Memory) OrderViews(_ context.Context) ([]entities.OrderView, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]entities.OrderView, 0, len(m.orders))
	for _, o := range m.sortedOrders() {
		res = append(res, entities.ToOrderView(o))
	}
	return res, nil
}

// OrderFlats returns one row per order line.
func (m *Memory) OrderFlats(_ context.Context) ([]entities.OrderFlat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]entities.OrderFlat, 0)
	for _, o := range m.sortedOrders() {
		for _, oi := range o.Items {
			res = append(res, entities.OrderFlat{
				OrderID:    o.ID,
				MemberName: o.MemberName,
				OrderDate:  o.OrderDate,
				Status:     o.Status,
				Address:    o.Delivery.Address,
				ItemName:   oi.ItemName,
				OrderPrice: oi.OrderPrice,
				Count:      oi.Count,
			})
		}
	}
	return res, nil
}
