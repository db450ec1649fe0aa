package model

import "strings"

// DayForecast 单日天气预报
type DayForecast struct {
	Date        Date    `json:"date"`
	Description string  `json:"weather"`
	Temp        float64 `json:"temp"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// Forecast 目的地多日天气预报，天数可能少于请求天数
type Forecast struct {
	City    string        `json:"city"`
	Country string        `json:"country"`
	Days    []DayForecast `json:"forecast"`
}

// Empty 是否没有任何天气数据
func (f *Forecast) Empty() bool {
	return f == nil || len(f.Days) == 0
}

// Outcome 天气适宜性结论
type Outcome string

const (
	OutcomeFavorable   Outcome = "favorable"
	OutcomeUnfavorable Outcome = "unfavorable"
	OutcomeUnknown     Outcome = "unknown"
)

// NormalizeOutcome 统一英式/美式拼写，无法识别的值视为 unknown
func NormalizeOutcome(s string) Outcome {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "favorable", "favourable":
		return OutcomeFavorable
	case "unfavorable", "unfavourable":
		return OutcomeUnfavorable
	default:
		return OutcomeUnknown
	}
}

// Decision 天气适宜性判断结果
type Decision struct {
	Outcome Outcome `json:"decision"`
	Reason  string  `json:"reason,omitempty"`
}

// PlansTrip unknown 与 favorable 一样进入完整规划
func (d Decision) PlansTrip() bool {
	return d.Outcome != OutcomeUnfavorable
}
