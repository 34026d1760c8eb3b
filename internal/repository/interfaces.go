// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"jpashop/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// MemberInterface exposes member-related operations.
type MemberInterface interface {
	SaveMember(ctx context.Context, member entities.Member) (*entities.Member, error)
	GetMember(ctx context.Context, id int64) (*entities.Member, error)
	FindMembersByName(ctx context.Context, name string) ([]entities.Member, error)
	UpdateMember(ctx context.Context, id int64, upd entities.MemberUpdate) (*entities.Member, error)
	ListMembers(ctx context.Context) ([]entities.Member, error)
	SearchMembers(ctx context.Context, cond entities.MemberSearch) ([]entities.MemberTeam, error)
	SearchMembersPage(ctx context.Context, cond entities.MemberSearch, req entities.PageRequest) (entities.Page[entities.MemberTeam], error)
	BulkAgePlus(ctx context.Context, age int) (int64, error)
}

// TeamInterface exposes team-related operations.
type TeamInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	GetTeam(ctx context.Context, name string) (*entities.Team, error)
	ListTeams(ctx context.Context) ([]entities.Team, error)
}

// ItemInterface exposes item-related operations.
type ItemInterface interface {
	SaveItem(ctx context.Context, item entities.Item) (*entities.Item, error)
	GetItem(ctx context.Context, id int64) (*entities.Item, error)
	ListItems(ctx context.Context) ([]entities.Item, error)
	UpdateItem(ctx context.Context, id int64, upd entities.ItemUpdate) (*entities.Item, error)
}

// OrderInterface exposes order write paths and entity reads.
type OrderInterface interface {
	CreateOrder(ctx context.Context, memberID int64, lines []entities.OrderLine) (*entities.Order, error)
	GetOrder(ctx context.Context, id int64) (*entities.Order, error)
	CancelOrder(ctx context.Context, id int64) (*entities.Order, error)
	CompleteDelivery(ctx context.Context, orderID int64) (*entities.Order, error)
	SearchOrders(ctx context.Context, search entities.OrderSearch) ([]entities.Order, error)
}

// OrderQueryInterface exposes read-side order projections.
type OrderQueryInterface interface {
	SimpleOrders(ctx context.Context) ([]entities.SimpleOrder, error)
	OrdersWithMemberDelivery(ctx context.Context, offset, limit int) ([]entities.SimpleOrder, error)
	OrderItemsByOrderIDs(ctx context.Context, ids []int64) (map[int64][]entities.OrderItemView, error)
	OrderViews(ctx context.Context) ([]entities.OrderView, error)
	OrderFlats(ctx context.Context) ([]entities.OrderFlat, error)
}
