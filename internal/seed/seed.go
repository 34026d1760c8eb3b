// Package seed loads sample shop data on startup.
package seed

import (
	"context"
	"errors"
	"fmt"

	"jpashop/config"
	"jpashop/internal/entities"
	"jpashop/internal/usecase"

	"go.uber.org/zap"
)

type sampleOrder struct {
	member  entities.Member
	books   [2]string
	counts  [2]int
	catalog []entities.Item
}

func sampleOrders() []sampleOrder {
	return []sampleOrder{
		{
			member: entities.Member{Name: "userA", Address: entities.Address{City: "Seoul", Street: "1", Zipcode: "1111"}},
			books:  [2]string{"JPA1 BOOK", "JPA2 BOOK"},
			counts: [2]int{1, 2},
			catalog: []entities.Item{
				{Kind: entities.KindBook, Name: "JPA1 BOOK", Price: 10000, StockQuantity: 100},
				{Kind: entities.KindBook, Name: "JPA2 BOOK", Price: 20000, StockQuantity: 100},
			},
		},
		{
			member: entities.Member{Name: "userB", Address: entities.Address{City: "Jinju", Street: "2", Zipcode: "2222"}},
			books:  [2]string{"SPRING1 BOOK", "SPRING2 BOOK"},
			counts: [2]int{3, 4},
			catalog: []entities.Item{
				{Kind: entities.KindBook, Name: "SPRING1 BOOK", Price: 20000, StockQuantity: 200},
				{Kind: entities.KindBook, Name: "SPRING2 BOOK", Price: 40000, StockQuantity: 300},
			},
		},
	}
}

// Run loads sample members, books and orders. Members that already exist are
// left alone together with their sample order, so repeated runs add nothing.
func Run(ctx context.Context, log *zap.SugaredLogger, uc usecase.InterfaceUsecase, cfg config.SeedConfig) error {
	if !cfg.Enabled {
		return nil
	}
	log = log.Named("seed")

	items, err := uc.Items(ctx)
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}
	byName := make(map[string]int64, len(items))
	for _, it := range items {
		byName[it.Name] = it.ID
	}

	for _, so := range sampleOrders() {
		for _, it := range so.catalog {
			if _, ok := byName[it.Name]; ok {
				continue
			}
			created, err := uc.RegisterItem(ctx, it)
			if err != nil {
				return fmt.Errorf("register %s: %w", it.Name, err)
			}
			byName[created.Name] = created.ID
		}

		member, err := uc.JoinMember(ctx, so.member)
		if errors.Is(err, entities.ErrMemberExists) {
			log.Infow("seed member exists", "name", so.member.Name)
			continue
		}
		if err != nil {
			return fmt.Errorf("join %s: %w", so.member.Name, err)
		}

		lines := []entities.OrderLine{
			{ItemID: byName[so.books[0]], Count: so.counts[0]},
			{ItemID: byName[so.books[1]], Count: so.counts[1]},
		}
		order, err := uc.PlaceOrder(ctx, member.ID, lines)
		if err != nil {
			return fmt.Errorf("order for %s: %w", member.Name, err)
		}
		log.Infow("seed order placed", "member", member.Name, "order_id", order.ID)
	}

	joined := 0
	for i := 0; i < cfg.Members; i++ {
		_, err := uc.JoinMember(ctx, entities.Member{Name: fmt.Sprintf("user%d", i), Age: i})
		if errors.Is(err, entities.ErrMemberExists) {
			continue
		}
		if err != nil {
			return fmt.Errorf("join user%d: %w", i, err)
		}
		joined++
	}

	log.Infow("seed done", "extra_members", joined)
	return nil
}
