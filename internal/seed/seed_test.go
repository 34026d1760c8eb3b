package seed

import (
	"context"
	"testing"
	"time"

	"jpashop/config"
	"jpashop/internal/entities"
	"jpashop/internal/repository/memory"
	"jpashop/internal/usecase"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUsecase(t *testing.T) usecase.InterfaceUsecase {
	t.Helper()
	log := zap.NewNop().Sugar()
	repo := memory.New(log)
	require.NoError(t, repo.OnStart(context.Background()))
	return usecase.New(log, repo, time.Second)
}

func TestRunDisabled(t *testing.T) {
	uc := newUsecase(t)

	require.NoError(t, Run(context.Background(), zap.NewNop().Sugar(), uc, config.SeedConfig{}))

	items, err := uc.Items(context.Background())
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestRunIsRepeatable(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase(t)
	cfg := config.SeedConfig{Enabled: true, Members: 3}

	require.NoError(t, Run(ctx, zap.NewNop().Sugar(), uc, cfg))
	require.NoError(t, Run(ctx, zap.NewNop().Sugar(), uc, cfg))

	items, err := uc.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 4)

	orders, err := uc.OrderViews(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, "userA", orders[0].MemberName)
	require.Len(t, orders[0].Items, 2)
	require.Equal(t, "Jinju", orders[1].Address.City)

	page, err := uc.Members(ctx, entities.MemberSearch{}, entities.PageRequest{Size: 20})
	require.NoError(t, err)
	require.EqualValues(t, 5, page.TotalElements)

	book, err := uc.Item(ctx, items[0].ID)
	require.NoError(t, err)
	require.Equal(t, 99, book.StockQuantity)
}
