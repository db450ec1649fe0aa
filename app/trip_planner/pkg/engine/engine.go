package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/logger"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
)

// State 规划流程所处阶段
type State string

const (
	StateStart           State = "start"
	StateForecastFetched State = "forecast_fetched"
	StateDecisionMade    State = "decision_made"
	StateUnfavorablePath State = "unfavorable_path"
	StateFavorablePath   State = "favorable_path"
	StateDone            State = "done"
)

// ForecastLookup 天气预报查询
type ForecastLookup interface {
	Forecast(ctx context.Context, city string, start model.Date, days int) (*model.Forecast, error)
}

// Advisor 大模型生成的各个环节，均不返回错误
type Advisor interface {
	Judge(ctx context.Context, fc *model.Forecast) model.Decision
	Itinerary(ctx context.Context, req model.TripRequest) *model.Generated[model.Itinerary]
	Alternates(ctx context.Context, fc *model.Forecast, req model.TripRequest) *model.Generated[model.Alternates]
	Summary(ctx context.Context, req model.TripRequest, res *model.TripResult) *model.Generated[model.Summary]
}

// FlightLookup 往返航班查询
type FlightLookup interface {
	RoundTrip(ctx context.Context, source, destination string, depart, ret model.Date) (*model.RoundTrip, error)
}

// HotelLookup 酒店查询
type HotelLookup interface {
	Hotels(ctx context.Context, req model.TripRequest) ([]model.HotelOption, error)
}

// Stages 流程依赖的各个环节
type Stages struct {
	Weather ForecastLookup
	Advisor Advisor
	Flights FlightLookup
	Hotels  HotelLookup
}

// Engine 行程规划引擎
type Engine struct {
	stages   Stages
	parallel bool
	closers  []func() error
}

// New 使用给定环节创建引擎，parallel 为 true 时航班与酒店并发查询
func New(stages Stages, parallel bool) *Engine {
	return &Engine{stages: stages, parallel: parallel}
}

// Close 释放引擎持有的外部资源
func (e *Engine) Close() error {
	var firstErr error
	for _, c := range e.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// RunOptions 运行选项
type RunOptions struct {
	ProgressCallback func(state State, progress int)
}

func (o RunOptions) report(state State, progress int) {
	logger.Log.Debugf("规划进度: %s (%d%%)", state, progress)
	if o.ProgressCallback != nil {
		o.ProgressCallback(state, progress)
	}
}

// Plan 执行一次完整规划：天气 → 适宜性判断 → 分支。
// 天气不适宜时只生成备选目的地；适宜或未知时依次生成行程、航班、酒店与摘要。
// 航班或酒店查询失败会中断整个请求，模型输出解析失败不会。
func (e *Engine) Plan(ctx context.Context, req model.TripRequest, opts RunOptions) (*model.TripResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	logger.Log.Infof("开始规划行程 %s -> %s, %s 起 %d 天", req.Source, req.Destination, req.StartDate, req.Days)
	res := model.NewTripResult(req)
	res.ID = uuid.NewString()
	opts.report(StateStart, 0)

	fc, err := e.stages.Weather.Forecast(ctx, req.Destination, req.StartDate, req.Days)
	if err != nil {
		logger.Log.Errorf("天气查询失败 [%s]，按无天气数据继续: %v", req.Destination, err)
		fc = &model.Forecast{City: req.Destination}
	}
	res.Forecast = fc
	opts.report(StateForecastFetched, 15)

	res.Decision = e.stages.Advisor.Judge(ctx, fc)
	res.Status = res.Decision.Outcome
	opts.report(StateDecisionMade, 30)

	if !res.Decision.PlansTrip() {
		opts.report(StateUnfavorablePath, 40)
		res.Alternates = e.stages.Advisor.Alternates(ctx, fc, req)
		res.Message = fmt.Sprintf("Weather not suitable for %s: %s", req.Destination, res.Decision.Reason)
		return e.finish(res, opts), nil
	}

	opts.report(StateFavorablePath, 40)
	res.Itinerary = e.stages.Advisor.Itinerary(ctx, req)
	opts.report(StateFavorablePath, 55)

	if err := e.lookups(ctx, req, res, opts); err != nil {
		logger.Log.Errorf("行程规划失败 [%s]: %v", req.Destination, err)
		return nil, err
	}

	res.Summary = e.stages.Advisor.Summary(ctx, req, res)
	opts.report(StateFavorablePath, 95)

	res.Message = plannedMessage(res)
	return e.finish(res, opts), nil
}

// lookups 查询航班与酒店
func (e *Engine) lookups(ctx context.Context, req model.TripRequest, res *model.TripResult, opts RunOptions) error {
	flights := func(ctx context.Context) error {
		rt, err := e.stages.Flights.RoundTrip(ctx, req.Source, req.Destination, req.StartDate, req.EndDate())
		if err != nil {
			return fmt.Errorf("flight lookup: %w", err)
		}
		res.Flights = rt
		return nil
	}
	hotels := func(ctx context.Context) error {
		hs, err := e.stages.Hotels.Hotels(ctx, req)
		if err != nil {
			return fmt.Errorf("hotel lookup: %w", err)
		}
		res.Hotels = hs
		return nil
	}

	if e.parallel {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return flights(gctx) })
		g.Go(func() error { return hotels(gctx) })
		if err := g.Wait(); err != nil {
			return err
		}
		opts.report(StateFavorablePath, 85)
		return nil
	}

	if err := flights(ctx); err != nil {
		return err
	}
	opts.report(StateFavorablePath, 70)
	if err := hotels(ctx); err != nil {
		return err
	}
	opts.report(StateFavorablePath, 85)
	return nil
}

func (e *Engine) finish(res *model.TripResult, opts RunOptions) *model.TripResult {
	res.UpdatedAt = time.Now().UTC()
	opts.report(StateDone, 100)
	logger.Log.Infof("行程规划完成 [%s]: %s", res.Request.Destination, res.Status)
	return res
}

func plannedMessage(res *model.TripResult) string {
	if res.Status == model.OutcomeUnknown {
		return fmt.Sprintf("Trip to %s planned for %s without a weather check: %s",
			res.Request.Destination, res.Duration, res.Decision.Reason)
	}
	return fmt.Sprintf("Trip to %s planned for %s", res.Request.Destination, res.Duration)
}

// RegenerateItinerary 使用原请求参数重新生成行程
func (e *Engine) RegenerateItinerary(ctx context.Context, req model.TripRequest) *model.Generated[model.Itinerary] {
	logger.Log.Infof("重新生成行程 [%s]", req.Destination)
	return e.stages.Advisor.Itinerary(ctx, req)
}

// RegenerateAlternates 使用原预报与请求参数重新生成备选目的地
func (e *Engine) RegenerateAlternates(ctx context.Context, fc *model.Forecast, req model.TripRequest) *model.Generated[model.Alternates] {
	logger.Log.Infof("重新生成备选目的地 [%s]", req.Destination)
	return e.stages.Advisor.Alternates(ctx, fc, req)
}

// Replan 保持其余参数不变，换一个目的地重新规划
func (e *Engine) Replan(ctx context.Context, prev model.TripRequest, destination string, opts RunOptions) (*model.TripResult, error) {
	return e.Plan(ctx, prev.WithDestination(destination), opts)
}
