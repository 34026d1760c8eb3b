// Package memory implements the shop repository in process memory.
package memory

import (
	"context"
	"sync"
	"time"

	"jpashop/internal/entities"

	"go.uber.org/zap"
)

// Memory keeps every table in maps guarded by one lock. Reads return copies.
type Memory struct {
	log *zap.SugaredLogger
	now func() time.Time

	mu        sync.RWMutex
	teams     map[int64]entities.Team
	members   map[int64]entities.Member
	items     map[int64]entities.Item
	orders    map[int64]entities.Order
	seqTeam   int64
	seqMember int64
	seqItem   int64
	seqOrder  int64
	seqLine   int64
	seqShip   int64
}

// New returns an empty store.
func New(log *zap.SugaredLogger) *Memory {
	return &Memory{
		log:     log.Named("repo.memory"),
		now:     func() time.Time { return time.Now().UTC() },
		teams:   make(map[int64]entities.Team),
		members: make(map[int64]entities.Member),
		items:   make(map[int64]entities.Item),
		orders:  make(map[int64]entities.Order),
	}
}

// OnStart is a no-op.
func (m *Memory) OnStart(_ context.Context) error {
	m.log.Infow("memory storage ready")
	return nil
}

// OnStop is a no-op.
func (m *Memory) OnStop(_ context.Context) error {
	return nil
}
