// Package weather OpenWeather 每日天气预报客户端
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
)

const (
	defaultBaseURL = "https://api.openweathermap.org/data/2.5"
	// MaxForecastDays 服务端最多返回 16 天预报
	MaxForecastDays = 16
)

// Client OpenWeather API 客户端
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	now     func() time.Time
}

// NewClient 创建天气客户端，baseURL 为空时使用官方地址
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

type dailyResponse struct {
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
	List []struct {
		Dt   int64 `json:"dt"`
		Temp struct {
			Day float64 `json:"day"`
		} `json:"temp"`
		Humidity int     `json:"humidity"`
		Speed    float64 `json:"speed"`
		Weather  []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

// Count 计算需要向服务端请求的天数：覆盖从今天到行程结束，且不超过 16 天
func Count(now time.Time, start model.Date, days int) int {
	lead := int(math.Floor(start.Sub(now).Hours() / 24))
	return min(max(lead+days+1, days), MaxForecastDays)
}

// Forecast 查询 city 从 start 开始 days 天的预报。
// 结果只保留落在 [start, start+days) 内的日期，可能少于 days 条。
func (c *Client) Forecast(ctx context.Context, city string, start model.Date, days int) (*model.Forecast, error) {
	u, err := url.Parse(c.baseURL + "/forecast/daily")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("q", city)
	q.Set("units", "metric")
	q.Set("cnt", strconv.Itoa(Count(c.now(), start, days)))
	q.Set("appid", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: weather request: %v", model.ErrLookup, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: weather read body: %v", model.ErrLookup, err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: weather api error (status %d): %s", model.ErrLookup, res.StatusCode, string(body))
	}

	var data dailyResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: weather unmarshal response: %v", model.ErrLookup, err)
	}

	out := &model.Forecast{City: data.City.Name, Country: data.City.Country}
	if out.City == "" {
		out.City = city
	}

	end := start.AddDays(days)
	for _, d := range data.List {
		date := model.NewDate(time.Unix(d.Dt, 0).UTC())
		if date.Before(start.Time) || !date.Before(end.Time) {
			continue
		}
		var desc string
		if len(d.Weather) > 0 {
			desc = capitalize(d.Weather[0].Description)
		}
		out.Days = append(out.Days, model.DayForecast{
			Date:        date,
			Description: desc,
			Temp:        d.Temp.Day,
			Humidity:    d.Humidity,
			WindSpeed:   d.Speed,
		})
	}
	return out, nil
}

// capitalize 首字母大写，其余小写
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
