package memory

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"jpashop/internal/auditor"
	"jpashop/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRepo(t *testing.T) (*Memory, context.Context) {
	t.Helper()
	ctx := auditor.WithAuditor(context.Background(), "tester")
	repo := New(zap.NewNop().Sugar())
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })
	return repo, ctx
}

func intPtr(v int) *int { return &v }

func TestMemberSearchAndPaging(t *testing.T) {
	repo, ctx := newRepo(t)

	_, err := repo.CreateTeam(ctx, entities.Team{Name: "teamA"})
	require.NoError(t, err)
	_, err = repo.CreateTeam(ctx, entities.Team{Name: "teamB"})
	require.NoError(t, err)
	_, err = repo.CreateTeam(ctx, entities.Team{Name: "teamA"})
	require.ErrorIs(t, err, entities.ErrTeamExists)

	for i := 0; i < 100; i++ {
		team := "teamA"
		if i%2 == 1 {
			team = "teamB"
		}
		_, err := repo.SaveMember(ctx, entities.Member{Name: "member" + strconv.Itoa(i), Age: i, TeamName: team})
		require.NoError(t, err)
	}
	_, err = repo.SaveMember(ctx, entities.Member{Name: "ghost", TeamName: "nope"})
	require.ErrorIs(t, err, entities.ErrTeamNotFound)

	found, err := repo.FindMembersByName(ctx, "member10")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "teamA", found[0].TeamName)
	require.Equal(t, "tester", found[0].CreatedBy)

	res, err := repo.SearchMembers(ctx, entities.MemberSearch{TeamName: "teamB", AgeGoe: intPtr(35), AgeLoe: intPtr(40)})
	require.NoError(t, err)
	require.Len(t, res, 3)
	require.Equal(t, "member35", res[0].Username)

	page, err := repo.SearchMembersPage(ctx, entities.MemberSearch{}, entities.PageRequest{Page: 0, Size: 3})
	require.NoError(t, err)
	require.Len(t, page.Content, 3)
	require.Equal(t, int64(100), page.TotalElements)
	require.True(t, page.HasNext)

	last, err := repo.SearchMembersPage(ctx, entities.MemberSearch{}, entities.PageRequest{Page: 33, Size: 3})
	require.NoError(t, err)
	require.Len(t, last.Content, 1)
	require.Equal(t, "member99", last.Content[0].Username)
	require.True(t, last.Last)

	beyond, err := repo.SearchMembersPage(ctx, entities.MemberSearch{}, entities.PageRequest{Page: 90, Size: 3})
	require.NoError(t, err)
	require.Empty(t, beyond.Content)
	require.Equal(t, int64(100), beyond.TotalElements)

	updated, err := repo.BulkAgePlus(ctx, 90)
	require.NoError(t, err)
	require.Equal(t, int64(10), updated)

	renamed, err := repo.UpdateMember(ctx, found[0].ID, entities.MemberUpdate{Name: "renamed", Age: intPtr(11)})
	require.NoError(t, err)
	require.Equal(t, "renamed", renamed.Name)
	require.Equal(t, 11, renamed.Age)
	require.Equal(t, "teamA", renamed.TeamName)

	_, err = repo.UpdateMember(ctx, 999, entities.MemberUpdate{Name: "x"})
	require.ErrorIs(t, err, entities.ErrMemberNotFound)

	team, err := repo.GetTeam(ctx, "teamA")
	require.NoError(t, err)
	require.Len(t, team.Members, 50)

	teams, err := repo.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)
}

func seedShop(t *testing.T, ctx context.Context, repo *Memory) (*entities.Member, *entities.Item, *entities.Item) {
	t.Helper()

	member, err := repo.SaveMember(ctx, entities.Member{Name: "userA", Address: entities.Address{City: "Seoul", Street: "1", Zipcode: "1111"}})
	require.NoError(t, err)
	book1, err := repo.SaveItem(ctx, entities.Item{Kind: entities.KindBook, Name: "JPA1 BOOK", Price: 10000, StockQuantity: 100})
	require.NoError(t, err)
	book2, err := repo.SaveItem(ctx, entities.Item{Kind: entities.KindBook, Name: "JPA2 BOOK", Price: 20000, StockQuantity: 100})
	require.NoError(t, err)
	return member, book1, book2
}

func TestOrderLifecycle(t *testing.T) {
	repo, ctx := newRepo(t)
	member, book1, book2 := seedShop(t, ctx, repo)

	order, err := repo.CreateOrder(ctx, member.ID, []entities.OrderLine{{ItemID: book1.ID, Count: 1}, {ItemID: book2.ID, Count: 2}})
	require.NoError(t, err)
	require.Equal(t, entities.StatusOrder, order.Status)
	require.Equal(t, "userA", order.MemberName)
	require.Equal(t, "Seoul", order.Delivery.Address.City)
	require.Equal(t, 50000, order.TotalPrice())
	require.Equal(t, "tester", order.CreatedBy)

	stock, err := repo.GetItem(ctx, book2.ID)
	require.NoError(t, err)
	require.Equal(t, 98, stock.StockQuantity)

	_, err = repo.CreateOrder(ctx, member.ID, []entities.OrderLine{{ItemID: book1.ID, Count: 50}, {ItemID: book2.ID, Count: 1000}})
	require.ErrorIs(t, err, entities.ErrNotEnoughStock)
	stock, err = repo.GetItem(ctx, book1.ID)
	require.NoError(t, err)
	require.Equal(t, 99, stock.StockQuantity, "failed order must not take stock")

	_, err = repo.CreateOrder(ctx, 42, []entities.OrderLine{{ItemID: book1.ID, Count: 1}})
	require.ErrorIs(t, err, entities.ErrMemberNotFound)
	_, err = repo.CreateOrder(ctx, member.ID, []entities.OrderLine{{ItemID: 42, Count: 1}})
	require.ErrorIs(t, err, entities.ErrItemNotFound)

	canceled, err := repo.CancelOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, entities.StatusCancel, canceled.Status)
	stock, err = repo.GetItem(ctx, book2.ID)
	require.NoError(t, err)
	require.Equal(t, 100, stock.StockQuantity)

	_, err = repo.CancelOrder(ctx, order.ID)
	require.ErrorIs(t, err, entities.ErrOrderCanceled)
	_, err = repo.CompleteDelivery(ctx, order.ID)
	require.ErrorIs(t, err, entities.ErrOrderCanceled)
	_, err = repo.CancelOrder(ctx, 777)
	require.ErrorIs(t, err, entities.ErrOrderNotFound)

	second, err := repo.CreateOrder(ctx, member.ID, []entities.OrderLine{{ItemID: book1.ID, Count: 2}})
	require.NoError(t, err)
	delivered, err := repo.CompleteDelivery(ctx, second.ID)
	require.NoError(t, err)
	require.Equal(t, entities.DeliveryComp, delivered.Delivery.Status)
	_, err = repo.CancelOrder(ctx, second.ID)
	require.ErrorIs(t, err, entities.ErrAlreadyDelivered)

	status := entities.StatusOrder
	orders, err := repo.SearchOrders(ctx, entities.OrderSearch{MemberName: "user", Status: &status})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, second.ID, orders[0].ID)

	limited, err := repo.SearchOrders(ctx, entities.OrderSearch{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	require.Equal(t, order.ID, limited[0].ID)
}

func TestOrderQueries(t *testing.T) {
	repo, ctx := newRepo(t)
	member, book1, book2 := seedShop(t, ctx, repo)

	for i := 0; i < 3; i++ {
		_, err := repo.CreateOrder(ctx, member.ID, []entities.OrderLine{{ItemID: book1.ID, Count: 1}, {ItemID: book2.ID, Count: i + 1}})
		require.NoError(t, err)
	}

	_, err := repo.UpdateItem(ctx, book1.ID, entities.ItemUpdate{Name: "JPA1 BOOK 2nd", Price: 12000, StockQuantity: 50})
	require.NoError(t, err)

	simple, err := repo.SimpleOrders(ctx)
	require.NoError(t, err)
	require.Len(t, simple, 3)

	window, err := repo.OrdersWithMemberDelivery(ctx, 1, 5)
	require.NoError(t, err)
	require.Len(t, window, 2)
	require.Equal(t, simple[1].OrderID, window[0].OrderID)

	empty, err := repo.OrdersWithMemberDelivery(ctx, 10, 5)
	require.NoError(t, err)
	require.Empty(t, empty)

	lines, err := repo.OrderItemsByOrderIDs(ctx, []int64{simple[2].OrderID, 999})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, "JPA1 BOOK 2nd", lines[simple[2].OrderID][0].ItemName)
	require.Equal(t, 10000, lines[simple[2].OrderID][0].OrderPrice, "order price is captured at order time")

	views, err := repo.OrderViews(ctx)
	require.NoError(t, err)
	flats, err := repo.OrderFlats(ctx)
	require.NoError(t, err)
	require.Len(t, flats, 6)
	require.Equal(t, views, entities.GroupOrderFlats(flats))
}

func TestConcurrentOrdersNeverOversell(t *testing.T) {
	repo, ctx := newRepo(t)
	member, book1, _ := seedShop(t, ctx, repo)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		placed int
	)
	for i := 0; i < 150; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.CreateOrder(ctx, member.ID, []entities.OrderLine{{ItemID: book1.ID, Count: 1}}); err == nil {
				mu.Lock()
				placed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 100, placed)
	item, err := repo.GetItem(ctx, book1.ID)
	require.NoError(t, err)
	require.Equal(t, 0, item.StockQuantity)
}

func TestMemberNamesAreUnique(t *testing.T) {
	repo, ctx := newRepo(t)

	first, err := repo.SaveMember(ctx, entities.Member{Name: "userA"})
	require.NoError(t, err)
	second, err := repo.SaveMember(ctx, entities.Member{Name: "userB"})
	require.NoError(t, err)

	_, err = repo.SaveMember(ctx, entities.Member{Name: "userA"})
	require.ErrorIs(t, err, entities.ErrMemberExists)

	_, err = repo.UpdateMember(ctx, second.ID, entities.MemberUpdate{Name: "userA"})
	require.ErrorIs(t, err, entities.ErrMemberExists)

	same, err := repo.UpdateMember(ctx, first.ID, entities.MemberUpdate{Name: "userA", Age: intPtr(3)})
	require.NoError(t, err)
	require.Equal(t, 3, same.Age)

	var (
		wg    sync.WaitGroup
		saved int
		mu    sync.Mutex
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.SaveMember(ctx, entities.Member{Name: "dup"}); err == nil {
				mu.Lock()
				saved++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1, saved)
}

func TestAuditorStampedOnBulkAndDelivery(t *testing.T) {
	repo, ctx := newRepo(t)

	member, err := repo.SaveMember(ctx, entities.Member{Name: "userA", Age: 40})
	require.NoError(t, err)
	book, err := repo.SaveItem(ctx, entities.Item{Kind: entities.KindBook, Name: "JPA1 BOOK", Price: 10000, StockQuantity: 10})
	require.NoError(t, err)
	order, err := repo.CreateOrder(ctx, member.ID, []entities.OrderLine{{ItemID: book.ID, Count: 1}})
	require.NoError(t, err)

	adminCtx := auditor.WithAuditor(context.Background(), "admin")

	n, err := repo.BulkAgePlus(adminCtx, 30)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
	aged, err := repo.GetMember(ctx, member.ID)
	require.NoError(t, err)
	require.Equal(t, "admin", aged.UpdatedBy)
	require.Equal(t, "tester", aged.CreatedBy)

	delivered, err := repo.CompleteDelivery(adminCtx, order.ID)
	require.NoError(t, err)
	require.Equal(t, "admin", delivered.UpdatedBy)
	require.False(t, delivered.UpdatedAt.Before(order.UpdatedAt))
}

func TestSearchOrdersMatchesNameLiterally(t *testing.T) {
	repo, ctx := newRepo(t)

	member, err := repo.SaveMember(ctx, entities.Member{Name: "user_A"})
	require.NoError(t, err)
	book, err := repo.SaveItem(ctx, entities.Item{Kind: entities.KindBook, Name: "JPA1 BOOK", Price: 10000, StockQuantity: 10})
	require.NoError(t, err)
	_, err = repo.CreateOrder(ctx, member.ID, []entities.OrderLine{{ItemID: book.ID, Count: 1}})
	require.NoError(t, err)

	none, err := repo.SearchOrders(ctx, entities.OrderSearch{MemberName: "%"})
	require.NoError(t, err)
	require.Empty(t, none)

	found, err := repo.SearchOrders(ctx, entities.OrderSearch{MemberName: "_A"})
	require.NoError(t, err)
	require.Len(t, found, 1)
}
