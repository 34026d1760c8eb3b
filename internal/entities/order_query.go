package entities

import "time"

// SimpleOrder is an order projection without lines.
type SimpleOrder struct {
	OrderID    int64
	MemberName string
	OrderDate  time.Time
	Status     OrderStatus
	Address    Address
}

// OrderItemView is a line projection.
type OrderItemView struct {
	OrderID    int64
	ItemName   string
	OrderPrice int
	Count      int
}

// OrderView is an order projection with its lines.
type OrderView struct {
	OrderID    int64
	MemberName string
	OrderDate  time.Time
	Status     OrderStatus
	Address    Address
	Items      []OrderItemView
}

// OrderFlat is one joined row per order line.
type OrderFlat struct {
	OrderID    int64
	MemberName string
	OrderDate  time.Time
	Status     OrderStatus
	Address    Address
	ItemName   string
	OrderPrice int
	Count      int
}

// ToSimpleOrder projects o without lines.
func ToSimpleOrder(o Order) SimpleOrder {
	return SimpleOrder{
		OrderID:    o.ID,
		MemberName: o.MemberName,
		OrderDate:  o.OrderDate,
		Status:     o.Status,
		Address:    o.Delivery.Address,
	}
}

// ToOrderView projects o with its lines.
func ToOrderView(o Order) OrderView {
	items := make([]OrderItemView, 0, len(o.Items))
	for _, oi := range o.Items {
		items = append(items, OrderItemView{
			OrderID:    o.ID,
			ItemName:   oi.ItemName,
			OrderPrice: oi.OrderPrice,
			Count:      oi.Count,
		})
	}
	v := ViewOf(ToSimpleOrder(o))
	v.Items = items
	return v
}

// ViewOf lifts a simple order into a view with no lines.
func ViewOf(s SimpleOrder) OrderView {
	return OrderView{
		OrderID:    s.OrderID,
		MemberName: s.MemberName,
		OrderDate:  s.OrderDate,
		Status:     s.Status,
		Address:    s.Address,
		Items:      []OrderItemView{},
	}
}

// GroupOrderFlats folds joined rows into views, keeping first-seen order of orders and lines.
func GroupOrderFlats(flats []OrderFlat) []OrderView {
	res := make([]OrderView, 0)
	index := make(map[int64]int)
	for _, f := range flats {
		i, ok := index[f.OrderID]
		if !ok {
			i = len(res)
			index[f.OrderID] = i
			res = append(res, ViewOf(SimpleOrder{
				OrderID:    f.OrderID,
				MemberName: f.MemberName,
				OrderDate:  f.OrderDate,
				Status:     f.Status,
				Address:    f.Address,
			}))
		}
		res[i].Items = append(res[i].Items, OrderItemView{
			OrderID:    f.OrderID,
			ItemName:   f.ItemName,
			OrderPrice: f.OrderPrice,
			Count:      f.Count,
		})
	}
	return res
}

// AttachItems fills each view's lines from items keyed by order id.
func AttachItems(views []OrderView, items map[int64][]OrderItemView) {
	for i := range views {
		if lines, ok := items[views[i].OrderID]; ok {
			views[i].Items = lines
		}
	}
}
