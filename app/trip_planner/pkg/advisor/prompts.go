package advisor

import (
	"fmt"
	"strings"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
)

// 摘要提示词中每个方向最多带上的航班数量
const summaryFlightsPerLeg = 3

func judgePrompt(fc *model.Forecast) string {
	return fmt.Sprintf(`The weather forecast of %s is given as follows:
%s

Is this weather forecast good for planning a trip to %s?
Respond ONLY with a single valid JSON object in the following format:
{
  "decision": "favourable" or "unfavourable",
  "reason": "short reason, required when the decision is unfavourable"
}`, fc.City, compact(fc.Days), fc.City)
}

func itineraryPrompt(req model.TripRequest) string {
	tripType := strings.ToLower(string(req.TripType))
	return fmt.Sprintf(`You are a travel planner AI. Plan a detailed day-wise itinerary for a %s trip
to %s from %s to %s for %d people with a %s budget. Type of trip to be planned is %s.

Include morning, lunch, afternoon, and evening activities for each day.
Suggest realistic tourist spots, restaurants, and local experiences.
Respond ONLY with a single valid JSON object keeping the key format exactly as given:
{
  "Day 1": {
    "Morning": "...",
    "Lunch": "...",
    "Afternoon": "...",
    "Evening": "..."
  }
}
Include one "Day N" entry for each of the %d days.`,
		tripType, req.Destination, req.StartDate, req.EndDate(), req.Travellers,
		strings.ToLower(string(req.Budget)), req.TripType, req.Days)
}

func alternatesPrompt(fc *model.Forecast, req model.TripRequest) string {
	var details string
	if fc.Empty() {
		details = "no forecast details available"
	} else {
		details = compact(fc)
	}
	return fmt.Sprintf(`The weather forecast for %s from %s for %d days is unfavorable
(details: %s).

Suggest %d alternate destinations with airports that would be better suited for a %s trip
around the same time. Consider a similar budget range (%s) and traveller comfort.

For each alternate destination, provide:
- The destination name
- A short reason why it is a good alternative (e.g., weather, attractions, vibe)

You must respond ONLY with a single, valid JSON in the format below. Do not include any
introductory text, explanations, or markdown formatting outside of the JSON structure.
{
  "alternate_suggestions": [
    {"place": "Name of Destination 1", "reason": "Why it is a good alternative"},
    {"place": "Name of Destination 2", "reason": "Why it is a good alternative"},
    {"place": "Name of Destination 3", "reason": "Why it is a good alternative"}
  ]
}`, req.Destination, req.StartDate, req.Days, details, MaxAlternates,
		strings.ToLower(string(req.TripType)), req.Budget)
}

func summaryPrompt(req model.TripRequest, res *model.TripResult) string {
	var itinerary string
	if res.Itinerary != nil {
		itinerary = res.Itinerary.Raw
	}

	var flights string
	if res.Flights != nil {
		flights = compact(map[string][]model.FlightOption{
			"onward": topFlights(&res.Flights.Onward),
			"return": topFlights(&res.Flights.Return),
		})
	}

	return fmt.Sprintf(`Create a short summary for a trip to %s for %d people having %s budget.

Here are the details:
- Itinerary: %s
- Flights: %s
- Hotels: %s
- Weather: %s

Summarize key highlights, best activities, and overall travel plan.
Respond ONLY with a single valid JSON object with exactly these keys:
{
  "weather_tips": ["tips such as carry sunscreen, umbrella, drink coconut water or something relevant"],
  "flight": "2-3 lines recommending the best flight for the round trip keeping the budget in mind",
  "accommodation": "2-3 lines recommending a hotel from the data given",
  "activities": ["activity at place", "..."],
  "dining": ["dishes or food spots special to %s", "..."]
}`, req.Destination, req.Travellers, req.Budget, itinerary, flights, compact(res.Hotels), compact(res.Forecast), req.Destination)
}

func topFlights(s *model.FlightSearch) []model.FlightOption {
	all := s.All()
	if len(all) > summaryFlightsPerLeg {
		all = all[:summaryFlightsPerLeg]
	}
	return all
}
