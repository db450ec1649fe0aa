package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
)

func date(t *testing.T, s string) model.Date {
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestCount(t *testing.T) {
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	// 当天出发，已过零点按 -1 天计
	assert.Equal(t, 3, Count(now, date(t, "2025-07-01"), 3))
	// 明天出发，不足一整天按 0 计
	assert.Equal(t, 4, Count(now, date(t, "2025-07-02"), 3))
	// 一周后出发
	assert.Equal(t, 12, Count(now, date(t, "2025-07-08"), 5))
	// 超过上限
	assert.Equal(t, MaxForecastDays, Count(now, date(t, "2025-07-20"), 10))
	// 过去的日期不少于 days
	assert.Equal(t, 3, Count(now, date(t, "2025-06-20"), 3))
}

func TestForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/forecast/daily", r.URL.Path)
		assert.Equal(t, "Jaipur", q.Get("q"))
		assert.Equal(t, "metric", q.Get("units"))
		assert.Equal(t, "3", q.Get("cnt"))
		assert.Equal(t, "owm-key", q.Get("appid"))
		// 2025-07-01 .. 2025-07-04, 12:00 UTC
		_, _ = w.Write([]byte(`{"city":{"name":"Jaipur","country":"IN"},"list":[
			{"dt":1751371200,"temp":{"day":38.2},"humidity":30,"speed":4.1,"weather":[{"description":"sky is clear"}]},
			{"dt":1751457600,"temp":{"day":36.9},"humidity":45,"speed":5.2,"weather":[{"description":"light rain"}]},
			{"dt":1751544000,"temp":{"day":33.0},"humidity":70,"speed":6.0,"weather":[{"description":"moderate rain"}]},
			{"dt":1751630400,"temp":{"day":32.4},"humidity":75,"speed":6.3,"weather":[{"description":"heavy intensity rain"}]}]}`))
	}))
	defer srv.Close()

	c := NewClient("owm-key", srv.URL, time.Second)
	c.now = func() time.Time { return time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC) }

	fc, err := c.Forecast(context.Background(), "Jaipur", date(t, "2025-07-02"), 2)
	require.NoError(t, err)
	assert.Equal(t, "Jaipur", fc.City)
	assert.Equal(t, "IN", fc.Country)
	require.Len(t, fc.Days, 2)
	assert.Equal(t, "2025-07-02", fc.Days[0].Date.String())
	assert.Equal(t, "Light rain", fc.Days[0].Description)
	assert.Equal(t, "2025-07-03", fc.Days[1].Date.String())
	assert.Equal(t, 70, fc.Days[1].Humidity)
}

func TestForecast_NonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod":"404","message":"city not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient("k", srv.URL, time.Second)
	_, err := c.Forecast(context.Background(), "Atlantis", date(t, "2025-07-02"), 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrLookup))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Sky is clear", capitalize("sky is clear"))
	assert.Equal(t, "Overcast clouds", capitalize("OVERCAST CLOUDS"))
	assert.Equal(t, "", capitalize(""))
}
