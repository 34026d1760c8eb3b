package domain

import (
	"context"
	"fmt"

	"jpashop/internal/entities"
)

// Paging bounds for OrdersPage.
const (
	DefaultOrdersLimit = 100
	MaxOrdersLimit     = 1000
)

// SearchOrders returns orders matching search with their lines.
func (u *Usecase) SearchOrders(ctx context.Context, search entities.OrderSearch) ([]entities.OrderView, error) {
	orders, err := u.searchOrders(ctx, search)
	if err != nil {
		return nil, err
	}
	res := make([]entities.OrderView, 0, len(orders))
	for _, o := range orders {
		res = append(res, entities.ToOrderView(o))
	}
	return res, nil
}

// SearchSimpleOrders returns orders matching search without lines.
func (u *Usecase) SearchSimpleOrders(ctx context.Context, search entities.OrderSearch) ([]entities.SimpleOrder, error) {
	orders, err := u.searchOrders(ctx, search)
	if err != nil {
		return nil, err
	}
	res := make([]entities.SimpleOrder, 0, len(orders))
	for _, o := range orders {
		res = append(res, entities.ToSimpleOrder(o))
	}
	return res, nil
}

// SimpleOrders returns every order through the member/delivery join query.
func (u *Usecase) SimpleOrders(ctx context.Context) ([]entities.SimpleOrder, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.SimpleOrders(ctx)
}

// OrdersPage pages order roots and loads all of the page's lines in one batch.
func (u *Usecase) OrdersPage(ctx context.Context, offset, limit int) ([]entities.OrderView, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if limit == 0 {
		limit = DefaultOrdersLimit
	}
	if offset < 0 || limit < 0 || limit > MaxOrdersLimit {
		return nil, fmt.Errorf("%w: offset must be >= 0 and limit within 1..%d", entities.ErrInvalidArgument, MaxOrdersLimit)
	}

	roots, err := u.repo.OrdersWithMemberDelivery(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	views := make([]entities.OrderView, 0, len(roots))
	ids := make([]int64, 0, len(roots))
	for _, r := range roots {
		views = append(views, entities.ViewOf(r))
		ids = append(ids, r.OrderID)
	}
	if len(ids) == 0 {
		return views, nil
	}

	items, err := u.repo.OrderItemsByOrderIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	entities.AttachItems(views, items)
	return views, nil
}

// OrderViews returns every order through the projection query plus one IN query.
func (u *Usecase) OrderViews(ctx context.Context) ([]entities.OrderView, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.OrderViews(ctx)
}

// OrderViewsFlat returns every order by grouping the flat join in memory.
func (u *Usecase) OrderViewsFlat(ctx context.Context) ([]entities.OrderView, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	flats, err := u.repo.OrderFlats(ctx)
	if err != nil {
		return nil, err
	}
	return entities.GroupOrderFlats(flats), nil
}

func (u *Usecase) searchOrders(ctx context.Context, search entities.OrderSearch) ([]entities.Order, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if search.Status != nil && !search.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", entities.ErrInvalidArgument, *search.Status)
	}
	if search.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", entities.ErrInvalidArgument)
	}
	return u.repo.SearchOrders(ctx, search)
}
