package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"jpashop/internal/auditor"
	"jpashop/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	orderColumns = `o.id, o.member_id, m.name, d.id, d.city, d.street, d.zipcode, d.status,
o.order_date, o.status, o.created_at, o.updated_at, o.created_by, o.updated_by`
	orderFrom = ` FROM orders o
JOIN members m ON m.id = o.member_id
JOIN deliveries d ON d.id = o.delivery_id`
	selectOrderQuery          = `SELECT ` + orderColumns + orderFrom + ` WHERE o.id = $1`
	selectOrderForUpdateQuery = selectOrderQuery + ` FOR UPDATE OF o, d`
	insertDeliveryQuery       = `INSERT INTO deliveries(city, street, zipcode, status) VALUES ($1, $2, $3, $4) RETURNING id`
	insertOrderQuery          = `
INSERT INTO orders(member_id, delivery_id, order_date, status, created_by, updated_by)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING id`
	insertOrderItemQuery  = `INSERT INTO order_items(order_id, item_id, order_price, count) VALUES ($1, $2, $3, $4) RETURNING id`
	selectOrderItemsQuery = `
SELECT oi.id, oi.order_id, oi.item_id, i.name, oi.order_price, oi.count
FROM order_items oi
JOIN items i ON i.id = oi.item_id
WHERE oi.order_id = ANY($1)
ORDER BY oi.order_id, oi.id`
	updateOrderStatusQuery    = `UPDATE orders SET status = $2, updated_at = NOW(), updated_by = $3 WHERE id = $1`
	updateDeliveryStatusQuery = `UPDATE deliveries SET status = $2 WHERE id = $1`
	touchOrderQuery           = `UPDATE orders SET updated_at = NOW(), updated_by = $2 WHERE id = $1`
)

// CreateOrder places an order in one transaction: items are locked, stock is removed
// and the delivery, order and lines are inserted.
func (p *Postgres) CreateOrder(ctx context.Context, memberID int64, lines []entities.OrderLine) (*entities.Order, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	member, err := scanMember(tx.QueryRow(ctx, selectMemberQuery, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("member lookup: %w", err)
	}

	locked, err := p.lockItems(ctx, tx, lines)
	if err != nil {
		return nil, err
	}

	orderItems := make([]entities.OrderItem, 0, len(lines))
	for _, l := range lines {
		item := locked[l.ItemID]
		oi, err := entities.NewOrderItem(item, item.Price, l.Count)
		if err != nil {
			return nil, err
		}
		orderItems = append(orderItems, oi)
	}

	order, err := entities.NewOrder(member, orderItems, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	for id, item := range locked {
		if _, err := tx.Exec(ctx, updateItemStockQuery, id, item.StockQuantity); err != nil {
			return nil, fmt.Errorf("update stock: %w", err)
		}
	}

	d := order.Delivery
	if err := tx.QueryRow(ctx, insertDeliveryQuery, d.Address.City, d.Address.Street, d.Address.Zipcode, d.Status).Scan(&order.Delivery.ID); err != nil {
		return nil, fmt.Errorf("insert delivery: %w", err)
	}
	if err := tx.QueryRow(ctx, insertOrderQuery, order.MemberID, order.Delivery.ID, order.OrderDate, order.Status, auditor.FromContext(ctx)).Scan(&order.ID); err != nil {
		p.log.Errorw("failed to insert order", "error", err, "member_id", memberID)
		return nil, fmt.Errorf("insert order: %w", err)
	}
	for _, oi := range order.Items {
		if _, err := tx.Exec(ctx, insertOrderItemQuery, order.ID, oi.ItemID, oi.OrderPrice, oi.Count); err != nil {
			return nil, fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("order placed", "order_id", order.ID, "member_id", memberID, "lines", len(order.Items))
	return p.GetOrder(ctx, order.ID)
}

// GetOrder fetches an order with member name, delivery and lines.
func (p *Postgres) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	order, err := scanOrder(p.db.QueryRow(ctx, selectOrderQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	items, err := p.orderItems(ctx, p.db, []int64{id})
	if err != nil {
		return nil, err
	}
	order.Items = items[id]
	return &order, nil
}

// CancelOrder cancels an order and returns each line's count to stock.
func (p *Postgres) CancelOrder(ctx context.Context, id int64) (*entities.Order, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	order, err := p.lockOrder(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := order.Cancel(); err != nil {
		return nil, err
	}

	lines := make([]entities.OrderLine, 0, len(order.Items))
	for _, oi := range order.Items {
		lines = append(lines, entities.OrderLine{ItemID: oi.ItemID, Count: oi.Count})
	}
	locked, err := p.lockItems(ctx, tx, lines)
	if err != nil {
		return nil, err
	}
	for _, oi := range order.Items {
		locked[oi.ItemID].AddStock(oi.Count)
	}
	for itemID, item := range locked {
		if _, err := tx.Exec(ctx, updateItemStockQuery, itemID, item.StockQuantity); err != nil {
			return nil, fmt.Errorf("restore stock: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, updateOrderStatusQuery, id, order.Status, auditor.FromContext(ctx)); err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("order canceled", "order_id", id)
	return p.GetOrder(ctx, id)
}

// CompleteDelivery marks the order's delivery complete.
func (p *Postgres) CompleteDelivery(ctx context.Context, orderID int64) (*entities.Order, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	order, err := p.lockOrder(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == entities.StatusCancel {
		return nil, entities.ErrOrderCanceled
	}

	if order.Delivery.Status != entities.DeliveryComp {
		if _, err := tx.Exec(ctx, updateDeliveryStatusQuery, order.Delivery.ID, entities.DeliveryComp); err != nil {
			return nil, fmt.Errorf("complete delivery: %w", err)
		}
		if _, err := tx.Exec(ctx, touchOrderQuery, orderID, auditor.FromContext(ctx)); err != nil {
			return nil, fmt.Errorf("touch order: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("delivery completed", "order_id", orderID)
	return p.GetOrder(ctx, orderID)
}

// SearchOrders returns orders whose member name contains search.MemberName and whose status matches.
func (p *Postgres) SearchOrders(ctx context.Context, search entities.OrderSearch) ([]entities.Order, error) {
	where, args := buildOrderFilter(search)
	limit := search.Limit
	if limit <= 0 {
		limit = entities.DefaultOrderSearchLimit
	}
	args = append(args, limit)
	query := `SELECT ` + orderColumns + orderFrom + where + ` ORDER BY o.id LIMIT $` + strconv.Itoa(len(args))

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		p.log.Errorw("failed to search orders", "error", err)
		return nil, fmt.Errorf("search orders: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	if len(ids) == 0 {
		return orders, nil
	}
	items, err := p.orderItems(ctx, p.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

func buildOrderFilter(search entities.OrderSearch) (string, []any) {
	conditions := make([]string, 0)
	args := make([]any, 0)
	idx := 1
	if search.MemberName != "" {
		conditions = append(conditions, "strpos(m.name, $"+strconv.Itoa(idx)+") > 0")
		args = append(args, search.MemberName)
		idx++
	}
	if search.Status != nil {
		conditions = append(conditions, "o.status = $"+strconv.Itoa(idx))
		args = append(args, *search.Status)
	}

	if len(conditions) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

// lockItems locks each distinct item in id order so concurrent orders cannot deadlock.
func (p *Postgres) lockItems(ctx context.Context, tx pgx.Tx, lines []entities.OrderLine) (map[int64]*entities.Item, error) {
	ids := make([]int64, 0, len(lines))
	seen := make(map[int64]struct{}, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.ItemID]; ok {
			continue
		}
		seen[l.ItemID] = struct{}{}
		ids = append(ids, l.ItemID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	locked := make(map[int64]*entities.Item, len(ids))
	for _, id := range ids {
		item, err := p.lockItem(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		locked[id] = item
	}
	return locked, nil
}

func (p *Postgres) lockOrder(ctx context.Context, tx pgx.Tx, id int64) (*entities.Order, error) {
	order, err := scanOrder(tx.QueryRow(ctx, selectOrderForUpdateQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrOrderNotFound
		}
		return nil, fmt.Errorf("lock order: %w", err)
	}
	items, err := p.orderItems(ctx, tx, []int64{id})
	if err != nil {
		return nil, err
	}
	order.Items = items[id]
	return &order, nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (p *Postgres) orderItems(ctx context.Context, q querier, ids []int64) (map[int64][]entities.OrderItem, error) {
	rows, err := q.Query(ctx, selectOrderItemsQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	res := make(map[int64][]entities.OrderItem, len(ids))
	for rows.Next() {
		var oi entities.OrderItem
		if err := rows.Scan(&oi.ID, &oi.OrderID, &oi.ItemID, &oi.ItemName, &oi.OrderPrice, &oi.Count); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		res[oi.OrderID] = append(res[oi.OrderID], oi)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}
	return res, nil
}

func scanOrder(row pgx.Row) (entities.Order, error) {
	var o entities.Order
	err := row.Scan(
		&o.ID, &o.MemberID, &o.MemberName,
		&o.Delivery.ID, &o.Delivery.Address.City, &o.Delivery.Address.Street, &o.Delivery.Address.Zipcode, &o.Delivery.Status,
		&o.OrderDate, &o.Status,
		&o.CreatedAt, &o.UpdatedAt, &o.CreatedBy, &o.UpdatedBy,
	)
	return o, err
}
