package serpapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
)

// NoImageThumbnail 酒店无图片时使用的占位图
const NoImageThumbnail = "https://upload.wikimedia.org/wikipedia/commons/a/ac/No_image_available.svg"

// HotelQuery 酒店查询参数
type HotelQuery struct {
	Query      string
	CheckIn    model.Date
	CheckOut   model.Date
	Adults     int
	HotelClass int
}

type rate struct {
	Lowest string `json:"lowest"`
}

type property struct {
	Name   string `json:"name"`
	Link   string `json:"link"`
	Images []struct {
		Thumbnail string `json:"thumbnail"`
	} `json:"images"`
	RatePerNight        rate     `json:"rate_per_night"`
	TotalRate           rate     `json:"total_rate"`
	OverallRating       float64  `json:"overall_rating"`
	ExtractedHotelClass int      `json:"extracted_hotel_class"`
	Amenities           []string `json:"amenities"`
}

type hotelsResponse struct {
	Properties []property `json:"properties"`
}

// Hotels 查询酒店，按服务端返回顺序保留前 limit 个，limit <= 0 表示不截断
func (c *Client) Hotels(ctx context.Context, q HotelQuery, limit int) ([]model.HotelOption, error) {
	params := url.Values{}
	params.Set("q", q.Query)
	params.Set("check_in_date", q.CheckIn.String())
	params.Set("check_out_date", q.CheckOut.String())
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("currency", c.opts.Currency)
	if q.HotelClass > 0 {
		params.Set("hotel_class", strconv.Itoa(q.HotelClass))
	}

	var resp hotelsResponse
	if err := c.get(ctx, "google_hotels", params, &resp); err != nil {
		return nil, err
	}

	props := resp.Properties
	if limit > 0 && len(props) > limit {
		props = props[:limit]
	}

	hotels := make([]model.HotelOption, 0, len(props))
	for _, p := range props {
		thumb := NoImageThumbnail
		if len(p.Images) > 0 && p.Images[0].Thumbnail != "" {
			thumb = p.Images[0].Thumbnail
		}
		hotels = append(hotels, model.HotelOption{
			Name:          p.Name,
			Thumbnail:     thumb,
			RatePerNight:  p.RatePerNight.Lowest,
			TotalRate:     p.TotalRate.Lowest,
			OverallRating: p.OverallRating,
			HotelClass:    p.ExtractedHotelClass,
			Amenities:     p.Amenities,
			Link:          p.Link,
		})
	}
	return hotels, nil
}
