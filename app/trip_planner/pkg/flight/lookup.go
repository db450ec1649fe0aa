// Package flight 往返航班查询
package flight

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/logger"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
)

// AirportResolver 城市名到三字码
type AirportResolver interface {
	Resolve(ctx context.Context, city string) (string, error)
}

// Searcher 单程航班搜索
type Searcher interface {
	Flights(ctx context.Context, from, to string, date model.Date) (*model.FlightSearch, error)
}

// Lookup 往返航班查询
type Lookup struct {
	airports AirportResolver
	flights  Searcher
	parallel bool
}

// NewLookup 创建航班查询，parallel 为 true 时去程与返程并发查询
func NewLookup(airports AirportResolver, flights Searcher, parallel bool) *Lookup {
	return &Lookup{airports: airports, flights: flights, parallel: parallel}
}

// RoundTrip 查询 source → destination（depart 当天）与返程（ret 当天）。
// 两端机场代码各解析一次，任一步失败整体失败。
func (l *Lookup) RoundTrip(ctx context.Context, source, destination string, depart, ret model.Date) (*model.RoundTrip, error) {
	from, err := l.airports.Resolve(ctx, source)
	if err != nil {
		return nil, err
	}
	to, err := l.airports.Resolve(ctx, destination)
	if err != nil {
		return nil, err
	}
	logger.Log.Infof("查询往返航班 %s(%s) <-> %s(%s)", source, from, destination, to)

	var onward, back *model.FlightSearch
	if l.parallel {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			onward, err = l.flights.Flights(gctx, from, to, depart)
			return err
		})
		g.Go(func() error {
			var err error
			back, err = l.flights.Flights(gctx, to, from, ret)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("flight search: %w", err)
		}
	} else {
		if onward, err = l.flights.Flights(ctx, from, to, depart); err != nil {
			return nil, fmt.Errorf("onward flight search: %w", err)
		}
		if back, err = l.flights.Flights(ctx, to, from, ret); err != nil {
			return nil, fmt.Errorf("return flight search: %w", err)
		}
	}

	return &model.RoundTrip{Onward: *onward, Return: *back}, nil
}
