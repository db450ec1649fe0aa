package server

import (
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/rs/cors"

	"github.com/iWorld-y/trip_planner/app/gateway/internal/conf"
	"github.com/iWorld-y/trip_planner/app/gateway/internal/service"
)

func NewHTTPServer(c *conf.Server, s *service.TripService, logger log.Logger) *http.Server {
	origins := []string{"*"}
	if c.Http != nil && len(c.Http.CorsOrigins) > 0 {
		origins = c.Http.CorsOrigins
	}
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
		),
		http.Filter(cors.New(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
		}).Handler),
	}
	if c.Http != nil && c.Http.Addr != "" {
		opts = append(opts, http.Address(c.Http.Addr))
	}
	if c.Http != nil && c.Http.Timeout != "" {
		if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
			opts = append(opts, http.Timeout(d))
		}
	}

	srv := http.NewServer(opts...)

	srv.Route("/").GET("/health", s.Health)

	r := srv.Route("/api/v1")
	r.POST("/trips", s.CreateTrip)
	r.GET("/trips/{id}", s.GetTrip)
	r.POST("/trips/{id}/itinerary/regenerate", s.RegenerateItinerary)
	r.POST("/trips/{id}/alternates/regenerate", s.RegenerateAlternates)
	r.POST("/trips/{id}/replan", s.Replan)

	return srv
}
