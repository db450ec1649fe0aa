package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest(t *testing.T) TripRequest {
	start, err := ParseDate("2025-07-01")
	require.NoError(t, err)
	return TripRequest{
		Source:      "Delhi",
		Destination: "Jaipur",
		StartDate:   start,
		Days:        3,
		TripType:    TripCultural,
		Budget:      BudgetMedium,
		Travellers:  2,
	}
}

func TestTripRequest_Validate(t *testing.T) {
	req := validRequest(t)
	assert.NoError(t, req.Validate())

	cases := map[string]func(r *TripRequest){
		"missing source":   func(r *TripRequest) { r.Source = "" },
		"zero days":        func(r *TripRequest) { r.Days = 0 },
		"too many days":    func(r *TripRequest) { r.Days = 16 },
		"bad budget":       func(r *TripRequest) { r.Budget = "Cheap" },
		"bad trip type":    func(r *TripRequest) { r.TripType = "Business" },
		"no travellers":    func(r *TripRequest) { r.Travellers = 0 },
		"missing start":    func(r *TripRequest) { r.StartDate = Date{} },
		"crowd travellers": func(r *TripRequest) { r.Travellers = 20 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			r := validRequest(t)
			mutate(&r)
			err := r.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidRequest))
		})
	}
}

func TestTripRequest_EndDate(t *testing.T) {
	req := validRequest(t)
	assert.Equal(t, "2025-07-03", req.EndDate().String())

	req.Days = 1
	assert.Equal(t, "2025-07-01", req.EndDate().String())
}

func TestTripRequest_WithDestination(t *testing.T) {
	req := validRequest(t)
	other := req.WithDestination("Shimla")
	assert.Equal(t, "Shimla", other.Destination)
	assert.Equal(t, "Jaipur", req.Destination)
	assert.Equal(t, req.StartDate, other.StartDate)
}

func TestDate_JSON(t *testing.T) {
	var req TripRequest
	err := json.Unmarshal([]byte(`{"source":"Delhi","start_date":"2025-12-24","days":2}`), &req)
	require.NoError(t, err)
	assert.Equal(t, "2025-12-24", req.StartDate.String())

	out, err := json.Marshal(req.StartDate)
	require.NoError(t, err)
	assert.Equal(t, `"2025-12-24"`, string(out))

	err = json.Unmarshal([]byte(`{"start_date":"24/12/2025"}`), &req)
	assert.Error(t, err)
}

func TestNormalizeOutcome(t *testing.T) {
	assert.Equal(t, OutcomeFavorable, NormalizeOutcome("favourable"))
	assert.Equal(t, OutcomeFavorable, NormalizeOutcome(" Favorable "))
	assert.Equal(t, OutcomeUnfavorable, NormalizeOutcome("UNFAVOURABLE"))
	assert.Equal(t, OutcomeUnfavorable, NormalizeOutcome("unfavorable"))
	assert.Equal(t, OutcomeUnknown, NormalizeOutcome("maybe"))
	assert.Equal(t, OutcomeUnknown, NormalizeOutcome(""))
}

func TestDecision_PlansTrip(t *testing.T) {
	assert.True(t, Decision{Outcome: OutcomeFavorable}.PlansTrip())
	assert.True(t, Decision{Outcome: OutcomeUnknown}.PlansTrip())
	assert.False(t, Decision{Outcome: OutcomeUnfavorable}.PlansTrip())
}

func TestBudget_HotelClass(t *testing.T) {
	assert.Equal(t, 2, BudgetLow.HotelClass())
	assert.Equal(t, 3, BudgetMedium.HotelClass())
	assert.Equal(t, 4, BudgetHigh.HotelClass())
	assert.Equal(t, 5, BudgetLuxury.HotelClass())
	assert.Equal(t, 0, Budget("Free").HotelClass())
}

func TestNewTripResult_Duration(t *testing.T) {
	res := NewTripResult(validRequest(t))
	assert.Equal(t, "2025-07-01 → 2025-07-03", res.Duration)
	assert.False(t, res.CreatedAt.IsZero())
}

func TestFlightSearch_All(t *testing.T) {
	s := &FlightSearch{
		Best:  []FlightOption{{Price: 100}},
		Other: []FlightOption{{Price: 200}, {Price: 300}},
	}
	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, 100, all[0].Price)

	var empty *FlightSearch
	assert.Nil(t, empty.All())
}
