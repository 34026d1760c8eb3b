package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestItemRemoveStock(t *testing.T) {
	item := &Item{ID: 1, Name: "JPA1 BOOK", StockQuantity: 10}

	require.NoError(t, item.RemoveStock(4))
	require.Equal(t, 6, item.StockQuantity)

	err := item.RemoveStock(7)
	require.ErrorIs(t, err, ErrNotEnoughStock)
	require.Equal(t, 6, item.StockQuantity)

	item.AddStock(4)
	require.Equal(t, 10, item.StockQuantity)
}

func TestNewOrderItemTakesStock(t *testing.T) {
	item := &Item{ID: 3, Name: "SPRING1 BOOK", Price: 20000, StockQuantity: 200}

	oi, err := NewOrderItem(item, item.Price, 3)
	require.NoError(t, err)
	require.Equal(t, 197, item.StockQuantity)
	require.Equal(t, 60000, oi.TotalPrice())
	require.Equal(t, "SPRING1 BOOK", oi.ItemName)

	_, err = NewOrderItem(item, item.Price, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestOrderLifecycle(t *testing.T) {
	member := Member{ID: 1, Name: "userA", Address: Address{City: "Seoul", Street: "1", Zipcode: "1111"}}
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	_, err := NewOrder(member, nil, now)
	require.ErrorIs(t, err, ErrInvalidArgument)

	order, err := NewOrder(member, []OrderItem{{ItemID: 1, OrderPrice: 10000, Count: 1}, {ItemID: 2, OrderPrice: 20000, Count: 2}}, now)
	require.NoError(t, err)
	require.Equal(t, StatusOrder, order.Status)
	require.Equal(t, DeliveryReady, order.Delivery.Status)
	require.Equal(t, member.Address, order.Delivery.Address)
	require.Equal(t, 50000, order.TotalPrice())

	require.NoError(t, order.Cancel())
	require.Equal(t, StatusCancel, order.Status)
	require.ErrorIs(t, order.Cancel(), ErrOrderCanceled)
}

func TestOrderCancelAfterDelivery(t *testing.T) {
	order := &Order{Status: StatusOrder, Delivery: Delivery{Status: DeliveryComp}}
	require.ErrorIs(t, order.Cancel(), ErrAlreadyDelivered)
	require.Equal(t, StatusOrder, order.Status)
}

func TestNewPageSkipsCount(t *testing.T) {
	failing := func() (int64, error) { return 0, errors.New("count must not run") }

	first, err := NewPage([]int{1, 2, 3}, PageRequest{Page: 0, Size: 5}, failing)
	require.NoError(t, err)
	require.Equal(t, int64(3), first.TotalElements)
	require.Equal(t, 1, first.TotalPages)
	require.True(t, first.First)
	require.True(t, first.Last)
	require.False(t, first.HasNext)

	last, err := NewPage([]int{1, 2}, PageRequest{Page: 2, Size: 5}, failing)
	require.NoError(t, err)
	require.Equal(t, int64(12), last.TotalElements)
	require.Equal(t, 3, last.TotalPages)
	require.True(t, last.Last)
}

func TestNewPageRunsCount(t *testing.T) {
	calls := 0
	count := func() (int64, error) {
		calls++
		return 100, nil
	}

	full, err := NewPage([]int{1, 2, 3, 4, 5}, PageRequest{Page: 1, Size: 5}, count)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Equal(t, int64(100), full.TotalElements)
	require.Equal(t, 20, full.TotalPages)
	require.True(t, full.HasNext)
	require.False(t, full.First)

	beyond, err := NewPage[int](nil, PageRequest{Page: 50, Size: 5}, count)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
	require.Empty(t, beyond.Content)
	require.NotNil(t, beyond.Content)
	require.False(t, beyond.HasNext)

	boom := errors.New("boom")
	_, err = NewPage([]int{1, 2}, PageRequest{Page: 0, Size: 2}, func() (int64, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
}

func TestPageRequestNormalize(t *testing.T) {
	r := PageRequest{Page: -1, Size: 0}.Normalize(DefaultPageSize, MaxPageSize)
	require.Equal(t, PageRequest{Page: 0, Size: DefaultPageSize}, r)

	r = PageRequest{Page: 3, Size: 5000}.Normalize(DefaultPageSize, MaxPageSize)
	require.Equal(t, PageRequest{Page: 3, Size: MaxPageSize}, r)
	require.Equal(t, 3*MaxPageSize, r.Offset())
}

func TestMapPage(t *testing.T) {
	p, err := NewPage([]int{1, 2}, PageRequest{Size: 10}, nil)
	require.NoError(t, err)

	doubled := MapPage(p, func(v int) int { return v * 2 })
	require.Equal(t, []int{2, 4}, doubled.Content)
	require.Equal(t, p.TotalElements, doubled.TotalElements)
}

func TestMemberSearchMatches(t *testing.T) {
	teamA := "teamA"
	m := MemberTeam{MemberID: 1, Username: "member1", Age: 30, TeamName: &teamA}
	ptr := func(v int) *int { return &v }

	require.True(t, MemberSearch{}.Matches(m))
	require.True(t, MemberSearch{TeamName: "teamA", AgeGoe: ptr(30), AgeLoe: ptr(40)}.Matches(m))
	require.False(t, MemberSearch{TeamName: "teamB"}.Matches(m))
	require.False(t, MemberSearch{AgeGoe: ptr(31)}.Matches(m))
	require.False(t, MemberSearch{AgeLoe: ptr(29)}.Matches(m))
	require.False(t, MemberSearch{Username: "member2"}.Matches(m))
	require.False(t, MemberSearch{TeamName: "teamA"}.Matches(MemberTeam{Username: "loner"}))
}

func TestGroupOrderFlats(t *testing.T) {
	flats := []OrderFlat{
		{OrderID: 4, MemberName: "userA", ItemName: "JPA1 BOOK", OrderPrice: 10000, Count: 1},
		{OrderID: 11, MemberName: "userB", ItemName: "SPRING1 BOOK", OrderPrice: 20000, Count: 3},
		{OrderID: 4, MemberName: "userA", ItemName: "JPA2 BOOK", OrderPrice: 20000, Count: 2},
		{OrderID: 11, MemberName: "userB", ItemName: "SPRING2 BOOK", OrderPrice: 40000, Count: 4},
	}

	views := GroupOrderFlats(flats)
	require.Len(t, views, 2)
	require.Equal(t, int64(4), views[0].OrderID)
	require.Equal(t, int64(11), views[1].OrderID)
	require.Equal(t, []string{"JPA1 BOOK", "JPA2 BOOK"}, []string{views[0].Items[0].ItemName, views[0].Items[1].ItemName})
	require.Equal(t, 4, views[1].Items[1].Count)

	require.Empty(t, GroupOrderFlats(nil))
}

func TestToOrderViewAndAttachItems(t *testing.T) {
	o := Order{ID: 7, MemberName: "userA", Status: StatusOrder, Items: []OrderItem{{ItemName: "JPA1 BOOK", OrderPrice: 10000, Count: 1}}}
	v := ToOrderView(o)
	require.Len(t, v.Items, 1)
	require.Equal(t, int64(7), v.Items[0].OrderID)

	views := []OrderView{ViewOf(ToSimpleOrder(o)), ViewOf(SimpleOrder{OrderID: 8})}
	AttachItems(views, map[int64][]OrderItemView{7: v.Items})
	require.Len(t, views[0].Items, 1)
	require.Empty(t, views[1].Items)
}

func TestAuditableTouch(t *testing.T) {
	var a Auditable
	t0 := time.Unix(100, 0)
	t1 := time.Unix(200, 0)

	a.Touch("alice", t0)
	a.Touch("bob", t1)

	require.Equal(t, t0, a.CreatedAt)
	require.Equal(t, "alice", a.CreatedBy)
	require.Equal(t, t1, a.UpdatedAt)
	require.Equal(t, "bob", a.UpdatedBy)
}
