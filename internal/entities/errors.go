// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMemberNotFound is returned when a member does not exist.
	ErrMemberNotFound = errors.New("member not found")
	// ErrMemberExists signals a member name that is already taken.
	ErrMemberExists = errors.New("member exists")
	// ErrTeamExists signals team name conflict.
	ErrTeamExists = errors.New("team exists")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrItemNotFound signals missing item.
	ErrItemNotFound = errors.New("item not found")
	// ErrOrderNotFound signals missing order.
	ErrOrderNotFound = errors.New("order not found")
	// ErrNotEnoughStock signals an order line larger than the item stock.
	ErrNotEnoughStock = errors.New("not enough stock")
	// ErrAlreadyDelivered signals cancel attempt after delivery completed.
	ErrAlreadyDelivered = errors.New("already delivered")
	// ErrOrderCanceled signals modification attempt on a cancelled order.
	ErrOrderCanceled = errors.New("order canceled")
)
