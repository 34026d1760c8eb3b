package domain

import (
	"context"
	"fmt"

	"jpashop/internal/entities"
)

// PlaceOrder orders the given lines for a member.
func (u *Usecase) PlaceOrder(ctx context.Context, memberID int64, lines []entities.OrderLine) (*entities.Order, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if memberID <= 0 {
		return nil, fmt.Errorf("%w: member id must be positive", entities.ErrInvalidArgument)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: order needs at least one item", entities.ErrInvalidArgument)
	}
	for i, l := range lines {
		if l.ItemID <= 0 || l.Count <= 0 {
			return nil, fmt.Errorf("%w: line %d needs a positive item id and count", entities.ErrInvalidArgument, i)
		}
	}

	order, err := u.repo.CreateOrder(ctx, memberID, lines)
	if err != nil {
		return nil, err
	}
	u.log.Infow("order create", "order_id", order.ID, "total", order.TotalPrice())
	return order, nil
}

// Order returns an order by id.
func (u *Usecase) Order(ctx context.Context, id int64) (*entities.Order, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: order id must be positive", entities.ErrInvalidArgument)
	}
	return u.repo.GetOrder(ctx, id)
}

// CancelOrder cancels an order that has not been delivered.
func (u *Usecase) CancelOrder(ctx context.Context, id int64) (*entities.Order, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: order id must be positive", entities.ErrInvalidArgument)
	}
	return u.repo.CancelOrder(ctx, id)
}

// CompleteDelivery marks an order delivered.
func (u *Usecase) CompleteDelivery(ctx context.Context, orderID int64) (*entities.Order, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if orderID <= 0 {
		return nil, fmt.Errorf("%w: order id must be positive", entities.ErrInvalidArgument)
	}
	return u.repo.CompleteDelivery(ctx, orderID)
}
