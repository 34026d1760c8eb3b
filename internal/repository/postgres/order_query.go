package postgres

import (
	"context"
	"fmt"

	"jpashop/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	simpleOrderColumns = `SELECT o.id, m.name, o.order_date, o.status, d.city, d.street, d.zipcode`
	simpleOrdersQuery  = simpleOrderColumns + orderFrom + ` ORDER BY o.id`
	pagedOrdersQuery   = simpleOrderColumns + orderFrom + ` ORDER BY o.id LIMIT $1 OFFSET $2`
	orderItemViewQuery = `
SELECT oi.order_id, i.name, oi.order_price, oi.count
FROM order_items oi
JOIN items i ON i.id = oi.item_id
WHERE oi.order_id = ANY($1)
ORDER BY oi.order_id, oi.id`
	orderFlatsQuery = `
SELECT o.id, m.name, o.order_date, o.status, d.city, d.street, d.zipcode, i.name, oi.order_price, oi.count
FROM orders o
JOIN members m ON m.id = o.member_id
JOIN deliveries d ON d.id = o.delivery_id
JOIN order_items oi ON oi.order_id = o.id
JOIN items i ON i.id = oi.item_id
ORDER BY o.id, oi.id`
)

// SimpleOrders returns every order joined with its member and delivery in one query.
func (p *Postgres) SimpleOrders(ctx context.Context) ([]entities.SimpleOrder, error) {
	return p.querySimpleOrders(ctx, simpleOrdersQuery)
}

// OrdersWithMemberDelivery returns a window of order roots; lines are loaded separately.
func (p *Postgres) OrdersWithMemberDelivery(ctx context.Context, offset, limit int) ([]entities.SimpleOrder, error) {
	return p.querySimpleOrders(ctx, pagedOrdersQuery, limit, offset)
}

// OrderItemsByOrderIDs loads the lines of many orders with a single IN query.
func (p *Postgres) OrderItemsByOrderIDs(ctx context.Context, ids []int64) (map[int64][]entities.OrderItemView, error) {
	res := make(map[int64][]entities.OrderItemView, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	rows, err := p.db.Query(ctx, orderItemViewQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("select order item views: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v entities.OrderItemView
		if err := rows.Scan(&v.OrderID, &v.ItemName, &v.OrderPrice, &v.Count); err != nil {
			return nil, fmt.Errorf("scan order item view: %w", err)
		}
		res[v.OrderID] = append(res[v.OrderID], v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order item views: %w", err)
	}
	return res, nil
}

// OrderViews runs the root projection query and then one IN query for all lines.
func (p *Postgres) OrderViews(ctx context.Context) ([]entities.OrderView, error) {
	roots, err := p.SimpleOrders(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]entities.OrderView, 0, len(roots))
	ids := make([]int64, 0, len(roots))
	for _, r := range roots {
		views = append(views, entities.ViewOf(r))
		ids = append(ids, r.OrderID)
	}

	items, err := p.OrderItemsByOrderIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	entities.AttachItems(views, items)
	return views, nil
}

// OrderFlats returns one joined row per order line.
func (p *Postgres) OrderFlats(ctx context.Context) ([]entities.OrderFlat, error) {
	rows, err := p.db.Query(ctx, orderFlatsQuery)
	if err != nil {
		return nil, fmt.Errorf("select order flats: %w", err)
	}
	defer rows.Close()

	res := make([]entities.OrderFlat, 0)
	for rows.Next() {
		var f entities.OrderFlat
		if err := rows.Scan(
			&f.OrderID, &f.MemberName, &f.OrderDate, &f.Status,
			&f.Address.City, &f.Address.Street, &f.Address.Zipcode,
			&f.ItemName, &f.OrderPrice, &f.Count,
		); err != nil {
			return nil, fmt.Errorf("scan order flat: %w", err)
		}
		res = append(res, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order flats: %w", err)
	}
	return res, nil
}

func (p *Postgres) querySimpleOrders(ctx context.Context, query string, args ...any) ([]entities.SimpleOrder, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		p.log.Errorw("failed to select orders", "error", err)
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	res := make([]entities.SimpleOrder, 0)
	for rows.Next() {
		s, err := scanSimpleOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan simple order: %w", err)
		}
		res = append(res, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate simple orders: %w", err)
	}
	return res, nil
}

func scanSimpleOrder(row pgx.Row) (entities.SimpleOrder, error) {
	var s entities.SimpleOrder
	err := row.Scan(&s.OrderID, &s.MemberName, &s.OrderDate, &s.Status, &s.Address.City, &s.Address.Street, &s.Address.Zipcode)
	return s, err
}
