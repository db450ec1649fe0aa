// Package hotel 目的地酒店查询
package hotel

import (
	"context"
	"fmt"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/logger"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/serpapi"
)

// DefaultLimit 默认返回的酒店数量
const DefaultLimit = 5

// Searcher 酒店搜索
type Searcher interface {
	Hotels(ctx context.Context, q serpapi.HotelQuery, limit int) ([]model.HotelOption, error)
}

// Lookup 酒店查询
type Lookup struct {
	hotels Searcher
	limit  int
}

// NewLookup 创建酒店查询
func NewLookup(hotels Searcher, limit int) *Lookup {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Lookup{hotels: hotels, limit: limit}
}

// Hotels 按目的地、日期、人数与预算档位查询酒店
func (l *Lookup) Hotels(ctx context.Context, req model.TripRequest) ([]model.HotelOption, error) {
	checkOut := req.EndDate()
	// 单日行程也至少住一晚
	if !checkOut.After(req.StartDate.Time) {
		checkOut = req.StartDate.AddDays(1)
	}

	q := serpapi.HotelQuery{
		Query:      req.Destination,
		CheckIn:    req.StartDate,
		CheckOut:   checkOut,
		Adults:     req.Travellers,
		HotelClass: req.Budget.HotelClass(),
	}
	hotels, err := l.hotels.Hotels(ctx, q, l.limit)
	if err != nil {
		return nil, fmt.Errorf("hotel search for %s: %w", req.Destination, err)
	}
	if len(hotels) > l.limit {
		hotels = hotels[:l.limit]
	}
	logger.Log.Infof("酒店查询完成 [%s]: %d 家", req.Destination, len(hotels))
	return hotels, nil
}
