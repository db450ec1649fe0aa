package advisor

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/extract"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/logger"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
)

// textList 兼容单个字符串与字符串数组
type textList []string

func (l *textList) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*l = list
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s = strings.TrimSpace(s); s != "" {
		*l = []string{s}
	}
	return nil
}

// text 兼容字符串与其他 JSON 值
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = text(strings.TrimSpace(s))
		return nil
	}
	*t = text(flatten(b))
	return nil
}

type rawSummary struct {
	WeatherTips   textList `json:"weather_tips"`
	Flight        text     `json:"flight"`
	Accommodation text     `json:"accommodation"`
	Accomodation  text     `json:"accomodation"`
	Activities    textList `json:"activities"`
	Dining        textList `json:"dining"`
}

// Summary 基于已生成的行程、航班、酒店与天气生成摘要，不启用联网增强
func (a *Advisor) Summary(ctx context.Context, req model.TripRequest, res *model.TripResult) *model.Generated[model.Summary] {
	raw := a.generate(ctx, "summary", summaryPrompt(req, res), false)
	out := &model.Generated[model.Summary]{Raw: raw}

	s, err := ParseSummary(raw)
	if err != nil {
		logger.Log.Warnf("摘要解析失败 [%s]: %v", req.Destination, err)
		return out
	}
	out.Parsed = s
	return out
}

// ParseSummary 解析摘要，兼容 accomodation 拼写
func ParseSummary(raw string) (*model.Summary, error) {
	r, err := extract.Decode[rawSummary](raw)
	if err != nil {
		return nil, err
	}
	acc := r.Accommodation
	if acc == "" {
		acc = r.Accomodation
	}
	return &model.Summary{
		WeatherTips:   r.WeatherTips,
		Flight:        string(r.Flight),
		Accommodation: string(acc),
		Activities:    r.Activities,
		Dining:        r.Dining,
	}, nil
}
