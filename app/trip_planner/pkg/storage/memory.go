package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
)

// Memory 进程内存储，保存序列化后的副本
type Memory struct {
	mu    sync.RWMutex
	trips map[string][]byte
}

// NewMemory 创建内存存储
func NewMemory() *Memory {
	return &Memory{trips: make(map[string][]byte)}
}

var _ Store = (*Memory)(nil)

// Save implements Store
func (m *Memory) Save(_ context.Context, res *model.TripResult) error {
	if res.ID == "" {
		return fmt.Errorf("trip result has no id")
	}
	b, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal trip result: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[res.ID] = b
	return nil
}

// Get implements Store
func (m *Memory) Get(_ context.Context, id string) (*model.TripResult, error) {
	m.mu.RLock()
	b, ok := m.trips[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrNotFound, id)
	}
	var res model.TripResult
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, fmt.Errorf("unmarshal trip result: %w", err)
	}
	return &res, nil
}

// Close implements Store
func (m *Memory) Close() error { return nil }
