// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"jpashop/config"
	"jpashop/internal/repository/memory"
	"jpashop/internal/repository/postgres"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	MemberInterface
	TeamInterface
	ItemInterface
	OrderInterface
	OrderQueryInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case config.BackendPostgres:
		return postgres.New(ctx, log, cfg), nil
	case config.BackendMemory:
		return memory.New(log), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
