package main

import (
	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/trip_planner/app/gateway/internal/conf"
	"github.com/iWorld-y/trip_planner/app/gateway/internal/data"
	"github.com/iWorld-y/trip_planner/app/gateway/internal/server"
	"github.com/iWorld-y/trip_planner/app/gateway/internal/service"
	"github.com/iWorld-y/trip_planner/app/gateway/internal/usecase"
)

// initApp 按依赖顺序组装各层
func initApp(confServer *conf.Server, confData *conf.Data, confPlanner *conf.Planner, logger log.Logger) (*kratos.App, func(), error) {
	dataData, cleanup, err := data.NewData(confData, logger)
	if err != nil {
		return nil, nil, err
	}
	eng, cleanup2, err := server.NewPlannerEngine(confPlanner, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	tripRepo := data.NewTripRepo(dataData, logger)
	tripUseCase := usecase.NewTripUseCase(tripRepo, eng, logger)
	tripService := service.NewTripService(tripUseCase, logger)
	httpServer := server.NewHTTPServer(confServer, tripService, logger)
	app := newApp(logger, httpServer)
	return app, func() {
		cleanup2()
		cleanup()
	}, nil
}

func newApp(logger log.Logger, hs *http.Server) *kratos.App {
	return kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(logger),
		kratos.Server(
			hs,
		),
	)
}
