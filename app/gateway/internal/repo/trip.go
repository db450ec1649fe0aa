package repo

import (
	"context"

	"github.com/iWorld-y/trip_planner/app/gateway/internal/domain"
)

// TripRepo 行程仓库接口
type TripRepo interface {
	// SaveTrip 按 ID 保存行程，已存在时覆盖
	SaveTrip(ctx context.Context, trip *domain.Trip) error
	// GetTrip 根据 ID 获取行程
	GetTrip(ctx context.Context, id string) (*domain.Trip, error)
}
