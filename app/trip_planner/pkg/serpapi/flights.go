package serpapi

import (
	"context"
	"net/url"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
)

// 单程
const oneWay = "2"

type flightsResponse struct {
	BestFlights  []model.FlightOption `json:"best_flights"`
	OtherFlights []model.FlightOption `json:"other_flights"`
}

// Flights 查询 from → to 在 date 当天的单程航班，from/to 为三字码
func (c *Client) Flights(ctx context.Context, from, to string, date model.Date) (*model.FlightSearch, error) {
	params := url.Values{}
	params.Set("departure_id", from)
	params.Set("arrival_id", to)
	params.Set("outbound_date", date.String())
	params.Set("currency", c.opts.Currency)
	params.Set("type", oneWay)
	if c.opts.Country != "" {
		params.Set("gl", c.opts.Country)
	}

	var resp flightsResponse
	if err := c.get(ctx, "google_flights", params, &resp); err != nil {
		return nil, err
	}

	return &model.FlightSearch{
		From:  from,
		To:    to,
		Date:  date,
		Best:  resp.BestFlights,
		Other: resp.OtherFlights,
	}, nil
}
