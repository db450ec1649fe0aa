package usecase

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/trip_planner/app/gateway/internal/domain"
	"github.com/iWorld-y/trip_planner/app/gateway/internal/repo"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/engine"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
)

// Planner 行程规划能力，由 engine.Engine 实现
type Planner interface {
	Plan(ctx context.Context, req model.TripRequest, opts engine.RunOptions) (*model.TripResult, error)
	RegenerateItinerary(ctx context.Context, req model.TripRequest) *model.Generated[model.Itinerary]
	RegenerateAlternates(ctx context.Context, fc *model.Forecast, req model.TripRequest) *model.Generated[model.Alternates]
	Replan(ctx context.Context, prev model.TripRequest, destination string, opts engine.RunOptions) (*model.TripResult, error)
}

type TripUseCase struct {
	repo    repo.TripRepo
	planner Planner
	log     *log.Helper
}

func NewTripUseCase(repo repo.TripRepo, planner Planner, logger log.Logger) *TripUseCase {
	return &TripUseCase{
		repo:    repo,
		planner: planner,
		log:     log.NewHelper(logger),
	}
}

func (uc *TripUseCase) progress(ctx context.Context) engine.RunOptions {
	helper := uc.log.WithContext(ctx)
	return engine.RunOptions{
		ProgressCallback: func(state engine.State, progress int) {
			helper.Debugf("planning %s (%d%%)", state, progress)
		},
	}
}

// planError 将规划错误映射为 HTTP 语义的错误
func (uc *TripUseCase) planError(ctx context.Context, err error) error {
	if stderrors.Is(err, model.ErrInvalidRequest) {
		return errors.BadRequest("INVALID_REQUEST", err.Error())
	}
	uc.log.WithContext(ctx).Errorf("trip planning failed: %v", err)
	return errors.ServiceUnavailable("PLANNING_FAILED", err.Error())
}

// PlanTrip 执行完整规划并保存结果
func (uc *TripUseCase) PlanTrip(ctx context.Context, req domain.TripRequest) (*domain.Trip, error) {
	trip, err := uc.planner.Plan(ctx, req, uc.progress(ctx))
	if err != nil {
		return nil, uc.planError(ctx, err)
	}
	if err := uc.repo.SaveTrip(ctx, trip); err != nil {
		return nil, err
	}
	uc.log.WithContext(ctx).Infof("trip %s planned: %s", trip.ID, trip.Status)
	return trip, nil
}

func (uc *TripUseCase) GetTrip(ctx context.Context, id string) (*domain.Trip, error) {
	return uc.repo.GetTrip(ctx, id)
}

// RegenerateItinerary 重新生成行程安排，仅适用于已规划行程的结果
func (uc *TripUseCase) RegenerateItinerary(ctx context.Context, id string) (*domain.Trip, error) {
	trip, err := uc.repo.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}
	if !trip.Decision.PlansTrip() {
		return nil, errors.BadRequest("ITINERARY_NOT_APPLICABLE", "weather is unfavorable, no itinerary to regenerate")
	}
	trip.Itinerary = uc.planner.RegenerateItinerary(ctx, trip.Request)
	trip.UpdatedAt = time.Now().UTC()
	if err := uc.repo.SaveTrip(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// RegenerateAlternates 重新生成备选目的地，仅适用于天气不适宜的结果
func (uc *TripUseCase) RegenerateAlternates(ctx context.Context, id string) (*domain.Trip, error) {
	trip, err := uc.repo.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip.Decision.PlansTrip() {
		return nil, errors.BadRequest("ALTERNATES_NOT_APPLICABLE", "trip was planned, no alternates to regenerate")
	}
	trip.Alternates = uc.planner.RegenerateAlternates(ctx, trip.Forecast, trip.Request)
	trip.UpdatedAt = time.Now().UTC()
	if err := uc.repo.SaveTrip(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// Replan 以新的目的地重新规划，生成新的行程记录
func (uc *TripUseCase) Replan(ctx context.Context, id string, req domain.ReplanRequest) (*domain.Trip, error) {
	if req.Destination == "" {
		return nil, errors.BadRequest("INVALID_REQUEST", "destination is required")
	}
	prev, err := uc.repo.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}
	trip, err := uc.planner.Replan(ctx, prev.Request, req.Destination, uc.progress(ctx))
	if err != nil {
		return nil, uc.planError(ctx, err)
	}
	if err := uc.repo.SaveTrip(ctx, trip); err != nil {
		return nil, err
	}
	uc.log.WithContext(ctx).Infof("trip %s replanned to %s as %s", id, req.Destination, trip.ID)
	return trip, nil
}
