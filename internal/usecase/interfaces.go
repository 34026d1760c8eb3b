package usecase

import (
	"context"

	"jpashop/internal/entities"
)

// MemberUsecaseInterface abstracts member-related operations for delivery layer.
type MemberUsecaseInterface interface {
	JoinMember(ctx context.Context, member entities.Member) (*entities.Member, error)
	Member(ctx context.Context, id int64) (*entities.Member, error)
	UpdateMember(ctx context.Context, id int64, upd entities.MemberUpdate) (*entities.Member, error)
	Members(ctx context.Context, cond entities.MemberSearch, req entities.PageRequest) (entities.Page[entities.MemberTeam], error)
	SearchMembers(ctx context.Context, cond entities.MemberSearch) ([]entities.MemberTeam, error)
	BulkAgePlus(ctx context.Context, age int) (int64, error)
}

// TeamUsecaseInterface abstracts team-related operations.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	Team(ctx context.Context, name string) (*entities.Team, error)
	Teams(ctx context.Context) ([]entities.Team, error)
}

// ItemUsecaseInterface abstracts item-related operations.
type ItemUsecaseInterface interface {
	RegisterItem(ctx context.Context, item entities.Item) (*entities.Item, error)
	Item(ctx context.Context, id int64) (*entities.Item, error)
	Items(ctx context.Context) ([]entities.Item, error)
	UpdateItem(ctx context.Context, id int64, upd entities.ItemUpdate) (*entities.Item, error)
}

// OrderUsecaseInterface abstracts order write paths.
type OrderUsecaseInterface interface {
	PlaceOrder(ctx context.Context, memberID int64, lines []entities.OrderLine) (*entities.Order, error)
	Order(ctx context.Context, id int64) (*entities.Order, error)
	CancelOrder(ctx context.Context, id int64) (*entities.Order, error)
	CompleteDelivery(ctx context.Context, orderID int64) (*entities.Order, error)
}

// OrderQueryUsecaseInterface abstracts the read-side order projections.
type OrderQueryUsecaseInterface interface {
	SearchOrders(ctx context.Context, search entities.OrderSearch) ([]entities.OrderView, error)
	SearchSimpleOrders(ctx context.Context, search entities.OrderSearch) ([]entities.SimpleOrder, error)
	SimpleOrders(ctx context.Context) ([]entities.SimpleOrder, error)
	OrdersPage(ctx context.Context, offset, limit int) ([]entities.OrderView, error)
	OrderViews(ctx context.Context) ([]entities.OrderView, error)
	OrderViewsFlat(ctx context.Context) ([]entities.OrderView, error)
}
