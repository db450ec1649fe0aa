package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/engine"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/logger"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
)

func TestPlanFlags_Request(t *testing.T) {
	p := planFlags{from: "Delhi", to: "Jaipur", start: "2025-12-20", days: 3, tripType: "Cultural", budget: "High", travellers: 2}
	req, err := p.request()
	require.NoError(t, err)
	assert.Equal(t, "Jaipur", req.Destination)
	assert.Equal(t, model.BudgetHigh, req.Budget)
	assert.Equal(t, "2025-12-22", req.EndDate().String())

	p.start = "20-12-2025"
	_, err = p.request()
	assert.Error(t, err)

	p.start = "2025-12-20"
	p.budget = "Shoestring"
	_, err = p.request()
	assert.True(t, errors.Is(err, model.ErrInvalidRequest))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]string{"duration": "2025-12-20 → 2025-12-22"}))
	assert.Contains(t, buf.String(), "→")
	assert.Contains(t, buf.String(), "\n  \"duration\"")
}

type rainyForecast struct{}

func (rainyForecast) Forecast(_ context.Context, city string, start model.Date, _ int) (*model.Forecast, error) {
	return &model.Forecast{City: city, Days: []model.DayForecast{{Date: start, Description: "heavy rain"}}}, nil
}

type monsoonAdvisor struct{}

func (monsoonAdvisor) Judge(context.Context, *model.Forecast) model.Decision {
	return model.Decision{Outcome: model.OutcomeUnfavorable, Reason: "monsoon"}
}

func (monsoonAdvisor) Itinerary(context.Context, model.TripRequest) *model.Generated[model.Itinerary] {
	return &model.Generated[model.Itinerary]{}
}

func (monsoonAdvisor) Alternates(context.Context, *model.Forecast, model.TripRequest) *model.Generated[model.Alternates] {
	return &model.Generated[model.Alternates]{Raw: `["Shimla"]`}
}

func (monsoonAdvisor) Summary(context.Context, model.TripRequest, *model.TripResult) *model.Generated[model.Summary] {
	return &model.Generated[model.Summary]{}
}

func TestPlanAndWrite_StdoutIsJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, logger.InitLoggerWithOutput("debug", "", &stderr))
	t.Cleanup(func() { _ = logger.InitLogger("info", "") })

	p := planFlags{from: "Delhi", to: "Mumbai", start: "2025-07-01", days: 2, tripType: "Fun", budget: "Low", travellers: 1}
	req, err := p.request()
	require.NoError(t, err)

	eng := engine.New(engine.Stages{Weather: rainyForecast{}, Advisor: monsoonAdvisor{}}, false)
	res, err := planAndWrite(context.Background(), eng, req, &stdout)
	require.NoError(t, err)

	var got model.TripResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got), stdout.String())
	assert.Equal(t, res.ID, got.ID)
	assert.Equal(t, model.OutcomeUnfavorable, got.Status)
	assert.Contains(t, stderr.String(), "done")
}
