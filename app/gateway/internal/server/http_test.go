package server

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/trip_planner/app/gateway/internal/conf"
	"github.com/iWorld-y/trip_planner/app/gateway/internal/data"
	"github.com/iWorld-y/trip_planner/app/gateway/internal/service"
	"github.com/iWorld-y/trip_planner/app/gateway/internal/usecase"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/engine"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
)

type stubForecast struct{}

func (stubForecast) Forecast(_ context.Context, city string, start model.Date, days int) (*model.Forecast, error) {
	return &model.Forecast{City: city, Days: []model.DayForecast{{Date: start, Description: "heavy rain"}}}, nil
}

type stubAdvisor struct{}

func (stubAdvisor) Judge(context.Context, *model.Forecast) model.Decision {
	return model.Decision{Outcome: model.OutcomeUnfavorable, Reason: "monsoon"}
}

func (stubAdvisor) Itinerary(context.Context, model.TripRequest) *model.Generated[model.Itinerary] {
	return &model.Generated[model.Itinerary]{Raw: "itinerary"}
}

func (stubAdvisor) Alternates(context.Context, *model.Forecast, model.TripRequest) *model.Generated[model.Alternates] {
	return &model.Generated[model.Alternates]{
		Raw:    "alternates",
		Parsed: &model.Alternates{Suggestions: []model.Suggestion{{Place: "Shimla", Reason: "dry"}}},
	}
}

func (stubAdvisor) Summary(context.Context, model.TripRequest, *model.TripResult) *model.Generated[model.Summary] {
	return &model.Generated[model.Summary]{Raw: "summary"}
}

func newTestServer(t *testing.T) nethttp.Handler {
	d, cleanup, err := data.NewData(&conf.Data{}, log.DefaultLogger)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	eng := engine.New(engine.Stages{Weather: stubForecast{}, Advisor: stubAdvisor{}}, false)
	uc := usecase.NewTripUseCase(data.NewTripRepo(d, log.DefaultLogger), eng, log.DefaultLogger)
	return NewHTTPServer(&conf.Server{Http: &conf.HTTP{Timeout: "5s"}}, service.NewTripService(uc, log.DefaultLogger), log.DefaultLogger)
}

func do(t *testing.T, h nethttp.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const tripBody = `{"source":"Delhi","destination":"Jaipur","start_date":"2025-07-01","days":3,"trip_type":"Cultural","budget":"Medium","travellers":2}`

func TestHTTP_Health(t *testing.T) {
	rec := do(t, newTestServer(t), nethttp.MethodGet, "/health", "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestHTTP_TripLifecycle(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, nethttp.MethodPost, "/api/v1/trips", tripBody)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())

	var trip model.TripResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trip))
	assert.NotEmpty(t, trip.ID)
	assert.Equal(t, model.OutcomeUnfavorable, trip.Status)
	require.NotNil(t, trip.Alternates)

	rec = do(t, h, nethttp.MethodGet, "/api/v1/trips/"+trip.ID, "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	rec = do(t, h, nethttp.MethodPost, "/api/v1/trips/"+trip.ID+"/alternates/regenerate", "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	rec = do(t, h, nethttp.MethodPost, "/api/v1/trips/"+trip.ID+"/itinerary/regenerate", "")
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)

	rec = do(t, h, nethttp.MethodPost, "/api/v1/trips/"+trip.ID+"/replan", `{"destination":"Shimla"}`)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	var next model.TripResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &next))
	assert.Equal(t, "Shimla", next.Request.Destination)
}

func TestHTTP_Errors(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, nethttp.MethodGet, "/api/v1/trips/nope", "")
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)

	rec = do(t, h, nethttp.MethodPost, "/api/v1/trips", `{"source":"Delhi","days":3}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestHTTP_CORS(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
