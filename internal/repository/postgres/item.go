package postgres

import (
	"context"
	"errors"
	"fmt"

	"jpashop/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	itemColumns     = `id, kind, name, price, stock_quantity, author, isbn, artist, etc, director, actor`
	insertItemQuery = `
INSERT INTO items(kind, name, price, stock_quantity, author, isbn, artist, etc, director, actor)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`
	selectItemQuery          = `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	selectItemForUpdateQuery = selectItemQuery + ` FOR UPDATE`
	selectItemsQuery         = `SELECT ` + itemColumns + ` FROM items ORDER BY id`
	updateItemQuery          = `UPDATE items SET name = $2, price = $3, stock_quantity = $4 WHERE id = $1`
	updateItemStockQuery     = `UPDATE items SET stock_quantity = $2 WHERE id = $1`
)

// SaveItem inserts an item of any kind.
func (p *Postgres) SaveItem(ctx context.Context, item entities.Item) (*entities.Item, error) {
	err := p.db.QueryRow(ctx, insertItemQuery,
		item.Kind, item.Name, item.Price, item.StockQuantity,
		item.Author, item.ISBN, item.Artist, item.Etc, item.Director, item.Actor,
	).Scan(&item.ID)
	if err != nil {
		p.log.Errorw("failed to insert item", "error", err, "name", item.Name)
		return nil, fmt.Errorf("insert item: %w", err)
	}

	p.log.Infow("item saved", "item_id", item.ID, "kind", item.Kind)
	return &item, nil
}

// GetItem fetches an item by id.
func (p *Postgres) GetItem(ctx context.Context, id int64) (*entities.Item, error) {
	item, err := scanItem(p.db.QueryRow(ctx, selectItemQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrItemNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &item, nil
}

// ListItems returns all items ordered by id.
func (p *Postgres) ListItems(ctx context.Context) ([]entities.Item, error) {
	rows, err := p.db.Query(ctx, selectItemsQuery)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]entities.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// UpdateItem overwrites name, price and stock.
func (p *Postgres) UpdateItem(ctx context.Context, id int64, upd entities.ItemUpdate) (*entities.Item, error) {
	tag, err := p.db.Exec(ctx, updateItemQuery, id, upd.Name, upd.Price, upd.StockQuantity)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrItemNotFound
	}

	p.log.Infow("item updated", "item_id", id)
	return p.GetItem(ctx, id)
}

func (p *Postgres) lockItem(ctx context.Context, tx pgx.Tx, id int64) (*entities.Item, error) {
	item, err := scanItem(tx.QueryRow(ctx, selectItemForUpdateQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrItemNotFound
		}
		return nil, fmt.Errorf("lock item: %w", err)
	}
	return &item, nil
}

func scanItem(row pgx.Row) (entities.Item, error) {
	var i entities.Item
	err := row.Scan(
		&i.ID, &i.Kind, &i.Name, &i.Price, &i.StockQuantity,
		&i.Author, &i.ISBN, &i.Artist, &i.Etc, &i.Director, &i.Actor,
	)
	return i, err
}
