package data

import (
	"context"
	stderrors "errors"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/trip_planner/app/gateway/internal/domain"
	"github.com/iWorld-y/trip_planner/app/gateway/internal/repo"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
)

type tripRepo struct {
	data *Data
	log  *log.Helper
}

func NewTripRepo(data *Data, logger log.Logger) repo.TripRepo {
	return &tripRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *tripRepo) SaveTrip(ctx context.Context, trip *domain.Trip) error {
	if err := r.data.store.Save(ctx, trip); err != nil {
		r.log.WithContext(ctx).Errorf("save trip %s: %v", trip.ID, err)
		return errors.InternalServer("TRIP_SAVE_FAILED", "failed to save trip")
	}
	return nil
}

func (r *tripRepo) GetTrip(ctx context.Context, id string) (*domain.Trip, error) {
	trip, err := r.data.store.Get(ctx, id)
	if err != nil {
		if stderrors.Is(err, model.ErrNotFound) {
			return nil, errors.NotFound("TRIP_NOT_FOUND", "trip not found")
		}
		return nil, err
	}
	return trip, nil
}
