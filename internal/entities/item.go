package entities

import "fmt"

// ItemKind is the discriminator of the single-table item hierarchy.
type ItemKind string

const (
	// KindBook marks a book.
	KindBook ItemKind = "BOOK"
	// KindAlbum marks a music album.
	KindAlbum ItemKind = "ALBUM"
	// KindMovie marks a movie.
	KindMovie ItemKind = "MOVIE"
)

// Valid reports whether k is a known kind.
func (k ItemKind) Valid() bool {
	switch k {
	case KindBook, KindAlbum, KindMovie:
		return true
	}
	return false
}

// Item is a sellable product with stock.
type Item struct {
	ID            int64
	Kind          ItemKind
	Name          string
	Price         int
	StockQuantity int

	// BOOK
	Author string
	ISBN   string
	// ALBUM
	Artist string
	Etc    string
	// MOVIE
	Director string
	Actor    string
}

// ItemUpdate holds editable item fields.
type ItemUpdate struct {
	Name          string
	Price         int
	StockQuantity int
}

// AddStock increases stock by quantity.
func (i *Item) AddStock(quantity int) {
	i.StockQuantity += quantity
}

// RemoveStock decreases stock by quantity, refusing to go below zero.
func (i *Item) RemoveStock(quantity int) error {
	rest := i.StockQuantity - quantity
	if rest < 0 {
		return fmt.Errorf("%w: item %d has %d, requested %d", ErrNotEnoughStock, i.ID, i.StockQuantity, quantity)
	}
	i.StockQuantity = rest
	return nil
}

// Apply copies editable fields from u.
func (i *Item) Apply(u ItemUpdate) {
	i.Name = u.Name
	i.Price = u.Price
	i.StockQuantity = u.StockQuantity
}
