package entities

import (
	"fmt"
	"time"
)

// OrderStatus enumerates order lifecycle states.
type OrderStatus string

const (
	// StatusOrder marks a placed order.
	StatusOrder OrderStatus = "ORDER"
	// StatusCancel marks a cancelled order.
	StatusCancel OrderStatus = "CANCEL"
)

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	return s == StatusOrder || s == StatusCancel
}

// DeliveryStatus enumerates delivery states.
type DeliveryStatus string

const (
	// DeliveryReady marks a delivery not yet shipped.
	DeliveryReady DeliveryStatus = "READY"
	// DeliveryComp marks a completed delivery.
	DeliveryComp DeliveryStatus = "COMP"
)

// Delivery is the shipment of one order.
type Delivery struct {
	ID      int64
	Address Address
	Status  DeliveryStatus
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID         int64
	OrderID    int64
	ItemID     int64
	ItemName   string
	OrderPrice int
	Count      int
}

// NewOrderItem takes count units out of item stock at the given unit price.
func NewOrderItem(item *Item, orderPrice, count int) (OrderItem, error) {
	if count <= 0 {
		return OrderItem{}, fmt.Errorf("%w: count must be positive", ErrInvalidArgument)
	}
	if err := item.RemoveStock(count); err != nil {
		return OrderItem{}, err
	}
	return OrderItem{
		ItemID:     item.ID,
		ItemName:   item.Name,
		OrderPrice: orderPrice,
		Count:      count,
	}, nil
}

// TotalPrice returns price times count.
func (oi OrderItem) TotalPrice() int {
	return oi.OrderPrice * oi.Count
}

// OrderLine is a requested item and quantity.
type OrderLine struct {
	ItemID int64
	Count  int
}

// Order is a member's purchase.
type Order struct {
	ID         int64
	MemberID   int64
	MemberName string
	Delivery   Delivery
	Items      []OrderItem
	OrderDate  time.Time
	Status     OrderStatus
	Auditable
}

// NewOrder builds a placed order shipped to the member's address.
func NewOrder(member Member, items []OrderItem, now time.Time) (*Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order needs at least one item", ErrInvalidArgument)
	}
	return &Order{
		MemberID:   member.ID,
		MemberName: member.Name,
		Delivery:   Delivery{Address: member.Address, Status: DeliveryReady},
		Items:      append([]OrderItem(nil), items...),
		OrderDate:  now,
		Status:     StatusOrder,
	}, nil
}

// Cancel marks the order cancelled. The caller restores stock for each line.
func (o *Order) Cancel() error {
	if o.Delivery.Status == DeliveryComp {
		return ErrAlreadyDelivered
	}
	if o.Status == StatusCancel {
		return ErrOrderCanceled
	}
	o.Status = StatusCancel
	return nil
}

// TotalPrice sums line totals.
func (o Order) TotalPrice() int {
	total := 0
	for _, oi := range o.Items {
		total += oi.TotalPrice()
	}
	return total
}

// OrderSearch filters orders by member name substring and status.
type OrderSearch struct {
	MemberName string
	Status     *OrderStatus
	Limit      int
}

// DefaultOrderSearchLimit caps criteria searches without an explicit limit.
const DefaultOrderSearchLimit = 1000
