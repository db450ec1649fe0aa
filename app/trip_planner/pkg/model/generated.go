package model

// Generated 模型生成的内容：原始文本总是保留，Parsed 为 nil 表示结构化提取失败
type Generated[T any] struct {
	Raw    string `json:"raw"`
	Parsed *T     `json:"parsed"`
}

// OK 是否提取成功
func (g *Generated[T]) OK() bool {
	return g != nil && g.Parsed != nil
}

// DayPlan 单日行程
type DayPlan struct {
	Day       int    `json:"day"`
	Label     string `json:"label"`
	Morning   string `json:"morning"`
	Lunch     string `json:"lunch"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}

// Itinerary 按天排序的行程
type Itinerary struct {
	Days []DayPlan `json:"days"`
}

// Suggestion 备选目的地
type Suggestion struct {
	Place  string `json:"place"`
	Reason string `json:"reason"`
}

// Alternates 备选目的地列表，目标数量为 3
type Alternates struct {
	Suggestions []Suggestion `json:"alternate_suggestions"`
}

// Summary 行程摘要
type Summary struct {
	WeatherTips   []string `json:"weather_tips"`
	Flight        string   `json:"flight"`
	Accommodation string   `json:"accommodation"`
	Activities    []string `json:"activities"`
	Dining        []string `json:"dining"`
}
