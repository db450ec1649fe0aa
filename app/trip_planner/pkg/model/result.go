package model

import (
	"fmt"
	"time"
)

// TripResult 一次规划的最终结果，由各阶段逐步填充
type TripResult struct {
	ID       string      `json:"id"`
	Status   Outcome     `json:"status"`
	Message  string      `json:"message"`
	Request  TripRequest `json:"request"`
	Duration string      `json:"duration"`
	Forecast *Forecast   `json:"weather_forecast"`
	Decision Decision    `json:"decision"`

	// 天气适宜（或未知）时填充
	Itinerary *Generated[Itinerary] `json:"itinerary,omitempty"`
	Flights   *RoundTrip            `json:"flights,omitempty"`
	Hotels    []HotelOption         `json:"hotels,omitempty"`
	Summary   *Generated[Summary]   `json:"summary,omitempty"`

	// 天气不适宜时填充
	Alternates *Generated[Alternates] `json:"alternate_suggestions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTripResult 以请求初始化结果
func NewTripResult(req TripRequest) *TripResult {
	now := time.Now().UTC()
	return &TripResult{
		Request:   req,
		Duration:  fmt.Sprintf("%s → %s", req.StartDate, req.EndDate()),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
