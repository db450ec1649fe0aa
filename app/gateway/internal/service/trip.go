package service

import (
	nethttp "net/http"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/trip_planner/app/gateway/internal/domain"
	"github.com/iWorld-y/trip_planner/app/gateway/internal/usecase"
)

// TripService 行程规划 HTTP 接口
type TripService struct {
	uc  *usecase.TripUseCase
	log *log.Helper
}

func NewTripService(uc *usecase.TripUseCase, logger log.Logger) *TripService {
	return &TripService{
		uc:  uc,
		log: log.NewHelper(logger),
	}
}

func (s *TripService) Health(ctx http.Context) error {
	return ctx.Result(nethttp.StatusOK, &domain.Health{Status: "ok"})
}

func (s *TripService) CreateTrip(ctx http.Context) error {
	var req domain.TripRequest
	if err := ctx.Bind(&req); err != nil {
		return errors.BadRequest("INVALID_REQUEST", err.Error())
	}
	trip, err := s.uc.PlanTrip(ctx, req)
	if err != nil {
		return err
	}
	return ctx.Result(nethttp.StatusOK, trip)
}

func (s *TripService) GetTrip(ctx http.Context) error {
	trip, err := s.uc.GetTrip(ctx, ctx.Vars().Get("id"))
	if err != nil {
		return err
	}
	return ctx.Result(nethttp.StatusOK, trip)
}

func (s *TripService) RegenerateItinerary(ctx http.Context) error {
	trip, err := s.uc.RegenerateItinerary(ctx, ctx.Vars().Get("id"))
	if err != nil {
		return err
	}
	return ctx.Result(nethttp.StatusOK, trip)
}

func (s *TripService) RegenerateAlternates(ctx http.Context) error {
	trip, err := s.uc.RegenerateAlternates(ctx, ctx.Vars().Get("id"))
	if err != nil {
		return err
	}
	return ctx.Result(nethttp.StatusOK, trip)
}

func (s *TripService) Replan(ctx http.Context) error {
	var req domain.ReplanRequest
	if err := ctx.Bind(&req); err != nil {
		return errors.BadRequest("INVALID_REQUEST", err.Error())
	}
	trip, err := s.uc.Replan(ctx, ctx.Vars().Get("id"), req)
	if err != nil {
		return err
	}
	return ctx.Result(nethttp.StatusOK, trip)
}
