package model

// Airport 航段起降机场
type Airport struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time"`
}

// FlightLeg 单个航段
type FlightLeg struct {
	DepartureAirport Airport `json:"departure_airport"`
	ArrivalAirport   Airport `json:"arrival_airport"`
	Duration         int     `json:"duration"`
	Airplane         string  `json:"airplane"`
	Airline          string  `json:"airline"`
	AirlineLogo      string  `json:"airline_logo,omitempty"`
	TravelClass      string  `json:"travel_class"`
	FlightNumber     string  `json:"flight_number"`
	Legroom          string  `json:"legroom,omitempty"`
	Overnight        bool    `json:"overnight,omitempty"`
}

// Layover 中转，位于相邻航段之间
type Layover struct {
	Duration  int    `json:"duration"`
	Name      string `json:"name"`
	ID        string `json:"id"`
	Overnight bool   `json:"overnight,omitempty"`
}

// CarbonEmissions 碳排放信息
type CarbonEmissions struct {
	ThisFlight          int `json:"this_flight"`
	TypicalForThisRoute int `json:"typical_for_this_route"`
	DifferencePercent   int `json:"difference_percent"`
}

// FlightOption 一个可选航班组合
type FlightOption struct {
	Legs            []FlightLeg      `json:"flights"`
	Layovers        []Layover        `json:"layovers,omitempty"`
	TotalDuration   int              `json:"total_duration"`
	Price           int              `json:"price"`
	Type            string           `json:"type,omitempty"`
	AirlineLogo     string           `json:"airline_logo,omitempty"`
	CarbonEmissions *CarbonEmissions `json:"carbon_emissions,omitempty"`
}

// FlightSearch 单程航班查询结果
type FlightSearch struct {
	From  string         `json:"from"`
	To    string         `json:"to"`
	Date  Date           `json:"date"`
	Best  []FlightOption `json:"best_flights"`
	Other []FlightOption `json:"other_flights"`
}

// All 返回全部航班，best 在前
func (s *FlightSearch) All() []FlightOption {
	if s == nil {
		return nil
	}
	out := make([]FlightOption, 0, len(s.Best)+len(s.Other))
	out = append(out, s.Best...)
	return append(out, s.Other...)
}

// RoundTrip 往返航班
type RoundTrip struct {
	Onward FlightSearch `json:"onward"`
	Return FlightSearch `json:"return"`
}

// HotelOption 住宿选项
type HotelOption struct {
	Name          string   `json:"name"`
	Thumbnail     string   `json:"thumbnail"`
	RatePerNight  string   `json:"rate_per_night,omitempty"`
	TotalRate     string   `json:"total_rate,omitempty"`
	OverallRating float64  `json:"overall_rating"`
	HotelClass    int      `json:"hotel_class,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	Link          string   `json:"link,omitempty"`
}
