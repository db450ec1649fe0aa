// Package storage 行程结果持久化，支持内存与 PostgreSQL
package storage

import (
	"context"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/config"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
)

// Store 行程结果存储，按 ID 覆盖写入
type Store interface {
	Save(ctx context.Context, res *model.TripResult) error
	// Get 不存在时返回 model.ErrNotFound
	Get(ctx context.Context, id string) (*model.TripResult, error)
	Close() error
}

// New 配置了数据库地址时使用 PostgreSQL，否则使用内存存储
func New(cfg config.DBConfig) (Store, error) {
	if cfg.Host == "" {
		return NewMemory(), nil
	}
	return NewPostgres(cfg)
}
