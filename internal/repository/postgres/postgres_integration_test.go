package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"jpashop/config"
	"jpashop/internal/auditor"
	"jpashop/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=jpashop",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server:  config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:    config.HTTPConfig{RequestTimeout: 5 * time.Second, DefaultPageSize: 20, MaxPageSize: 2000},
		Storage: config.StorageConfig{Backend: config.BackendPostgres},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "jpashop",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       8,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=jpashop sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}

func startRepo(t *testing.T) (*Postgres, context.Context) {
	t.Helper()
	ctx := auditor.WithAuditor(context.Background(), "tester")

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })
	return repo, ctx
}

func intPtr(v int) *int { return &v }

func TestMemberRepositoryIntegration(t *testing.T) {
	repo, ctx := startRepo(t)

	teamA, err := repo.CreateTeam(ctx, entities.Team{Name: "teamA"})
	require.NoError(t, err)
	require.Equal(t, "tester", teamA.CreatedBy)
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
	for _, mt := range res {
		require.Equal(t, "teamB", *mt.TeamName)
	}

	page, err := repo.SearchMembersPage(ctx, entities.MemberSearch{}, entities.PageRequest{Page: 0, Size: 3})
	require.NoError(t, err)
	require.Len(t, page.Content, 3)
	require.Equal(t, int64(100), page.TotalElements)
	require.Equal(t, 34, page.TotalPages)
	require.Equal(t, "member0", page.Content[0].Username)

	last, err := repo.SearchMembersPage(ctx, entities.MemberSearch{}, entities.PageRequest{Page: 33, Size: 3})
	require.NoError(t, err)
	require.Len(t, last.Content, 1)
	require.Equal(t, int64(100), last.TotalElements)
	require.True(t, last.Last)

	updated, err := repo.BulkAgePlus(ctx, 90)
	require.NoError(t, err)
	require.Equal(t, int64(10), updated)

	old, err := repo.FindMembersByName(ctx, "member99")
	require.NoError(t, err)
	require.Equal(t, 100, old[0].Age)

	renamed, err := repo.UpdateMember(ctx, found[0].ID, entities.MemberUpdate{Name: "renamed"})
	require.NoError(t, err)
	require.Equal(t, "renamed", renamed.Name)
	require.Equal(t, 10, renamed.Age)

	_, err = repo.UpdateMember(ctx, 999999, entities.MemberUpdate{Name: "x"})
	require.ErrorIs(t, err, entities.ErrMemberNotFound)

	team, err := repo.GetTeam(ctx, "teamA")
	require.NoError(t, err)
	require.Len(t, team.Members, 50)
}

func seedShop(t *testing.T, ctx context.Context, repo *Postgres) (*entities.Member, *entities.Item, *entities.Item) {
	t.Helper()

	member, err := repo.SaveMember(ctx, entities.Member{Name: "userA", Address: entities.Address{City: "Seoul", Street: "1", Zipcode: "1111"}})
	require.NoError(t, err)
	book1, err := repo.SaveItem(ctx, entities.Item{Kind: entities.KindBook, Name: "JPA1 BOOK", Price: 10000, StockQuantity: 100})
	require.NoError(t, err)
	book2, err := repo.SaveItem(ctx, entities.Item{Kind: entities.KindBook, Name: "JPA2 BOOK", Price: 20000, StockQuantity: 100})
	require.NoError(t, err)
	return member, book1, book2
}

func TestOrderRepositoryIntegration(t *testing.T) {
	repo, ctx := startRepo(t)
	member, book1, book2 := seedShop(t, ctx, repo)

	order, err := repo.CreateOrder(ctx, member.ID, []entities.OrderLine{{ItemID: book1.ID, Count: 1}, {ItemID: book2.ID, Count: 2}})
	require.NoError(t, err)
	require.Equal(t, entities.StatusOrder, order.Status)
	require.Equal(t, entities.DeliveryReady, order.Delivery.Status)
	require.Equal(t, "Seoul", order.Delivery.Address.City)
	require.Len(t, order.Items, 2)
	require.Equal(t, 50000, order.TotalPrice())

	stock, err := repo.GetItem(ctx, book2.ID)
	require.NoError(t, err)
	require.Equal(t, 98, stock.StockQuantity)

	_, err = repo.CreateOrder(ctx, member.ID, []entities.OrderLine{{ItemID: book1.ID, Count: 1000}})
	require.ErrorIs(t, err, entities.ErrNotEnoughStock)
	stock, err = repo.GetItem(ctx, book1.ID)
	require.NoError(t, err)
	require.Equal(t, 99, stock.StockQuantity)

	_, err = repo.CreateOrder(ctx, 424242, []entities.OrderLine{{ItemID: book1.ID, Count: 1}})
	require.ErrorIs(t, err, entities.ErrMemberNotFound)
	_, err = repo.CreateOrder(ctx, member.ID, []entities.OrderLine{{ItemID: 424242, Count: 1}})
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
	require.Len(t, orders[0].Items, 1)

	none, err := repo.SearchOrders(ctx, entities.OrderSearch{MemberName: "nobody"})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestOrderQueriesIntegration(t *testing.T) {
	repo, ctx := startRepo(t)
	member, book1, book2 := seedShop(t, ctx, repo)

	for i := 0; i < 3; i++ {
		_, err := repo.CreateOrder(ctx, member.ID, []entities.OrderLine{{ItemID: book1.ID, Count: 1}, {ItemID: book2.ID, Count: i + 1}})
		require.NoError(t, err)
	}

	simple, err := repo.SimpleOrders(ctx)
	require.NoError(t, err)
	require.Len(t, simple, 3)
	require.Equal(t, "userA", simple[0].MemberName)

	window, err := repo.OrdersWithMemberDelivery(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, window, 1)
	require.Equal(t, simple[1].OrderID, window[0].OrderID)

	lines, err := repo.OrderItemsByOrderIDs(ctx, []int64{simple[0].OrderID, simple[2].OrderID})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.Len(t, lines[simple[2].OrderID], 2)
	require.Equal(t, 3, lines[simple[2].OrderID][1].Count)

	views, err := repo.OrderViews(ctx)
	require.NoError(t, err)
	require.Len(t, views, 3)

	flats, err := repo.OrderFlats(ctx)
	require.NoError(t, err)
	require.Len(t, flats, 6)
	require.Equal(t, views, entities.GroupOrderFlats(flats))
}

func TestConcurrentOrdersNeverOversell(t *testing.T) {
	repo, ctx := startRepo(t)
	member, book1, _ := seedShop(t, ctx, repo)

	var wg sync.WaitGroup
	errs := make(chan error, 150)
	for i := 0; i < 150; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreateOrder(ctx, member.ID, []entities.OrderLine{{ItemID: book1.ID, Count: 1}})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	placed := 0
	for err := range errs {
		if err == nil {
			placed++
			continue
		}
		require.ErrorIs(t, err, entities.ErrNotEnoughStock)
	}
	require.Equal(t, 100, placed)

	item, err := repo.GetItem(ctx, book1.ID)
	require.NoError(t, err)
	require.Equal(t, 0, item.StockQuantity)
}

func TestMemberNamesAreUniqueIntegration(t *testing.T) {
	repo, ctx := startRepo(t)

	first, err := repo.SaveMember(ctx, entities.Member{Name: "userA"})
	require.NoError(t, err)
	second, err := repo.SaveMember(ctx, entities.Member{Name: "userB"})
	require.NoError(t, err)

	_, err = repo.SaveMember(ctx, entities.Member{Name: "userA"})
	require.ErrorIs(t, err, entities.ErrMemberExists)
	_, err = repo.UpdateMember(ctx, second.ID, entities.MemberUpdate{Name: "userA"})
	require.ErrorIs(t, err, entities.ErrMemberExists)
	_, err = repo.UpdateMember(ctx, first.ID, entities.MemberUpdate{Name: "userA"})
	require.NoError(t, err)

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		saved int
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

func TestAuditAndLiteralSearchIntegration(t *testing.T) {
	repo, ctx := startRepo(t)

	member, err := repo.SaveMember(ctx, entities.Member{Name: "user_A", Age: 40})
	require.NoError(t, err)
	book, err := repo.SaveItem(ctx, entities.Item{Kind: entities.KindBook, Name: "JPA1 BOOK", Price: 10000, StockQuantity: 10})
	require.NoError(t, err)
	order, err := repo.CreateOrder(ctx, member.ID, []entities.OrderLine{{ItemID: book.ID, Count: 1}})
	require.NoError(t, err)

	none, err := repo.SearchOrders(ctx, entities.OrderSearch{MemberName: "%"})
	require.NoError(t, err)
	require.Empty(t, none)
	found, err := repo.SearchOrders(ctx, entities.OrderSearch{MemberName: "_A"})
	require.NoError(t, err)
	require.Len(t, found, 1)

	adminCtx := auditor.WithAuditor(context.Background(), "admin")
	_, err = repo.BulkAgePlus(adminCtx, 30)
	require.NoError(t, err)
	aged, err := repo.GetMember(ctx, member.ID)
	require.NoError(t, err)
	require.Equal(t, "admin", aged.UpdatedBy)

	delivered, err := repo.CompleteDelivery(adminCtx, order.ID)
	require.NoError(t, err)
	require.Equal(t, "admin", delivered.UpdatedBy)
	require.Equal(t, "tester", delivered.CreatedBy)
}
