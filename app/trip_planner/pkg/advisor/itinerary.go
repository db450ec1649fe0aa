package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/extract"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/logger"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
)

var dayKey = regexp.MustCompile(`(?i)^\s*day\s*[-_ ]?(\d+)\s*$`)

// Itinerary 生成按天的行程，启用联网增强。解析失败时 Parsed 为 nil。
func (a *Advisor) Itinerary(ctx context.Context, req model.TripRequest) *model.Generated[model.Itinerary] {
	raw := a.generate(ctx, "itinerary", itineraryPrompt(req), true)
	out := &model.Generated[model.Itinerary]{Raw: raw}

	it, err := ParseItinerary(raw)
	if err != nil {
		logger.Log.Warnf("行程解析失败 [%s]: %v", req.Destination, err)
		return out
	}
	out.Parsed = it
	return out
}

// ParseItinerary 解析形如 {"Day 1": {"Morning": ...}} 的行程，允许外层再包一层对象
func ParseItinerary(raw string) (*model.Itinerary, error) {
	obj, err := extract.Decode[map[string]json.RawMessage](raw)
	if err != nil {
		return nil, err
	}

	days := collectDays(*obj)
	if len(days) == 0 {
		// {"itinerary": {"Day 1": ...}}
		for _, v := range *obj {
			var inner map[string]json.RawMessage
			if json.Unmarshal(v, &inner) == nil {
				if days = collectDays(inner); len(days) > 0 {
					break
				}
			}
		}
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: no day entries found", model.ErrParse)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })
	return &model.Itinerary{Days: days}, nil
}

func collectDays(obj map[string]json.RawMessage) []model.DayPlan {
	var days []model.DayPlan
	for k, v := range obj {
		m := dayKey.FindStringSubmatch(k)
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])

		var slots map[string]json.RawMessage
		if err := json.Unmarshal(v, &slots); err != nil {
			continue
		}
		plan := model.DayPlan{Day: n, Label: fmt.Sprintf("Day %d", n)}
		for slot, val := range slots {
			text := flatten(val)
			switch strings.ToLower(strings.TrimSpace(slot)) {
			case "morning":
				plan.Morning = text
			case "lunch":
				plan.Lunch = text
			case "afternoon":
				plan.Afternoon = text
			case "evening", "dinner":
				if plan.Evening == "" {
					plan.Evening = text
				} else {
					plan.Evening += " " + text
				}
			}
		}
		days = append(days, plan)
	}
	return days
}

// flatten 将字符串、字符串数组或任意 JSON 值转换为文本
func flatten(v json.RawMessage) string {
	var s string
	if json.Unmarshal(v, &s) == nil {
		return strings.TrimSpace(s)
	}
	var list []string
	if json.Unmarshal(v, &list) == nil {
		return strings.Join(list, "; ")
	}
	return strings.TrimSpace(string(v))
}
