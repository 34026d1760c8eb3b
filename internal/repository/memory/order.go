package memory

import (
	"context"
	"sort"
	"strings"

	"jpashop/internal/auditor"
	"jpashop/internal/entities"
)

// CreateOrder places an order atomically: stock changes are applied only if every line succeeds.
func (m *Memory) CreateOrder(ctx context.Context, memberID int64, lines []entities.OrderLine) (*entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	member, ok := m.members[memberID]
	if !ok {
		return nil, entities.ErrMemberNotFound
	}

	working := make(map[int64]*entities.Item, len(lines))
	orderItems := make([]entities.OrderItem, 0, len(lines))
	for _, l := range lines {
		item, ok := working[l.ItemID]
		if !ok {
			stored, found := m.items[l.ItemID]
			if !found {
				return nil, entities.ErrItemNotFound
			}
			item = &stored
			working[l.ItemID] = item
		}
		oi, err := entities.NewOrderItem(item, item.Price, l.Count)
		if err != nil {
			return nil, err
		}
		orderItems = append(orderItems, oi)
	}

	order, err := entities.NewOrder(member, orderItems, m.now())
	if err != nil {
		return nil, err
	}

	for id, item := range working {
		m.items[id] = *item
	}

	m.seqOrder++
	order.ID = m.seqOrder
	m.seqShip++
	order.Delivery.ID = m.seqShip
	for i := range order.Items {
		m.seqLine++
		order.Items[i].ID = m.seqLine
		order.Items[i].OrderID = order.ID
	}
	order.Touch(auditor.FromContext(ctx), m.now())
	m.orders[order.ID] = *order

	m.log.Infow("order placed", "order_id", order.ID, "member_id", memberID, "lines", len(order.Items))
	res := m.hydrate(*order)
	return &res, nil
}

// GetOrder fetches an order with member name, delivery and lines.
func (m *Memory) GetOrder(_ context.Context, id int64) (*entities.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	order, ok := m.orders[id]
	if !ok {
		return nil, entities.ErrOrderNotFound
	}
	res := m.hydrate(order)
	return &res, nil
}

// CancelOrder cancels an order and returns each line's count to stock.
func (m *Memory) CancelOrder(ctx context.Context, id int64) (*entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[id]
	if !ok {
		return nil, entities.ErrOrderNotFound
	}
	order.Items = append([]entities.OrderItem(nil), order.Items...)
	if err := order.Cancel(); err != nil {
		return nil, err
	}

	for _, oi := range order.Items {
		if item, ok := m.items[oi.ItemID]; ok {
			item.AddStock(oi.Count)
			m.items[oi.ItemID] = item
		}
	}
	order.Touch(auditor.FromContext(ctx), m.now())
	m.orders[id] = order

	m.log.Infow("order canceled", "order_id", id)
	res := m.hydrate(order)
	return &res, nil
}

// CompleteDelivery marks the order's delivery complete.
func (m *Memory) CompleteDelivery(ctx context.Context, orderID int64) (*entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[orderID]
	if !ok {
		return nil, entities.ErrOrderNotFound
	}
	if order.Status == entities.StatusCancel {
		return nil, entities.ErrOrderCanceled
	}
	order.Delivery.Status = entities.DeliveryComp
	order.Touch(auditor.FromContext(ctx), m.now())
	m.orders[orderID] = order

	res := m.hydrate(order)
	return &res, nil
}

// SearchOrders returns orders whose member name contains search.MemberName and whose status matches.
func (m *Memory) SearchOrders(_ context.Context, search entities.OrderSearch) ([]entities.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	limit := search.Limit
	if limit <= 0 {
		limit = entities.DefaultOrderSearchLimit
	}

	res := make([]entities.Order, 0)
	for _, o := range m.sortedOrders() {
		if len(res) == limit {
			break
		}
		if search.MemberName != "" && !strings.Contains(o.MemberName, search.MemberName) {
			continue
		}
		if search.Status != nil && o.Status != *search.Status {
			continue
		}
		res = append(res, o)
	}
	return res, nil
}

// sortedOrders returns hydrated orders by id.
func (m *Memory) sortedOrders() []entities.Order {
	res := make([]entities.Order, 0, len(m.orders))
	for _, o := range m.orders {
		res = append(res, m.hydrate(o))
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

// hydrate copies o and refreshes joined columns from the current member and items.
func (m *Memory) hydrate(o entities.Order) entities.Order {
	if member, ok := m.members[o.MemberID]; ok {
		o.MemberName = member.Name
	}
	items := make([]entities.OrderItem, 0, len(o.Items))
	for _, oi := range o.Items {
		if item, ok := m.items[oi.ItemID]; ok {
			oi.ItemName = item.Name
		}
		items = append(items, oi)
	}
	o.Items = items
	return o
}
