package domain

import (
	"context"
	"fmt"
	"strings"

	"jpashop/internal/entities"
)

// RegisterItem stores a new item.
func (u *Usecase) RegisterItem(ctx context.Context, item entities.Item) (*entities.Item, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !item.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown item kind %q", entities.ErrInvalidArgument, item.Kind)
	}
	item.Name = strings.TrimSpace(item.Name)
	if err := validateItemFields(item.Name, item.Price, item.StockQuantity); err != nil {
		return nil, err
	}
	return u.repo.SaveItem(ctx, item)
}

// Item returns an item by id.
func (u *Usecase) Item(ctx context.Context, id int64) (*entities.Item, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: item id must be positive", entities.ErrInvalidArgument)
	}
	return u.repo.GetItem(ctx, id)
}

// Items lists every item.
func (u *Usecase) Items(ctx context.Context) ([]entities.Item, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListItems(ctx)
}

// UpdateItem edits name, price and stock of an item.
func (u *Usecase) UpdateItem(ctx context.Context, id int64, upd entities.ItemUpdate) (*entities.Item, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: item id must be positive", entities.ErrInvalidArgument)
	}
	upd.Name = strings.TrimSpace(upd.Name)
	if err := validateItemFields(upd.Name, upd.Price, upd.StockQuantity); err != nil {
		return nil, err
	}
	return u.repo.UpdateItem(ctx, id, upd)
}

func validateItemFields(name string, price, stock int) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: item name is required", entities.ErrInvalidArgument)
	case price < 0:
		return fmt.Errorf("%w: price must not be negative", entities.ErrInvalidArgument)
	case stock < 0:
		return fmt.Errorf("%w: stock quantity must not be negative", entities.ErrInvalidArgument)
	}
	return nil
}
