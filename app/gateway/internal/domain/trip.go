package domain

import "github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"

// Trip 一次行程规划结果
type Trip = model.TripResult

// TripRequest 行程请求
type TripRequest = model.TripRequest

// ReplanRequest 换目的地重新规划
type ReplanRequest struct {
	Destination string `json:"destination"`
}

// Health 健康检查响应
type Health struct {
	Status string `json:"status"`
}
