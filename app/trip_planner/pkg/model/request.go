package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Budget 预算档位
type Budget string

const (
	BudgetLow    Budget = "Low"
	BudgetMedium Budget = "Medium"
	BudgetHigh   Budget = "High"
	BudgetLuxury Budget = "Luxury"
)

// HotelClass 将预算档位映射为酒店星级
func (b Budget) HotelClass() int {
	switch b {
	case BudgetLow:
		return 2
	case BudgetMedium:
		return 3
	case BudgetHigh:
		return 4
	case BudgetLuxury:
		return 5
	default:
		return 0
	}
}

// TripType 行程类型
type TripType string

const (
	TripFamily     TripType = "Family"
	TripAdventure  TripType = "Adventure"
	TripRomantic   TripType = "Romantic"
	TripCultural   TripType = "Cultural"
	TripRelaxation TripType = "Relaxation"
	TripFun        TripType = "Fun"
)

// Date 仅包含日期的时间，JSON 格式为 YYYY-MM-DD
type Date struct {
	time.Time
}

// NewDate 截断到当天零点（UTC）
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate 解析 YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

// AddDays 返回 n 天之后的日期
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

// MarshalJSON 实现 json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON 实现 json.Unmarshaler
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TripRequest 用户提交的行程请求，整个流程中只读
type TripRequest struct {
	Source      string   `json:"source" validate:"required"`
	Destination string   `json:"destination" validate:"required"`
	StartDate   Date     `json:"start_date"`
	Days        int      `json:"days" validate:"min=1,max=15"`
	TripType    TripType `json:"trip_type" validate:"oneof=Family Adventure Romantic Cultural Relaxation Fun"`
	Budget      Budget   `json:"budget" validate:"oneof=Low Medium High Luxury"`
	Travellers  int      `json:"travellers" validate:"min=1,max=15"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate 校验请求参数
func (r TripRequest) Validate() error {
	if r.StartDate.IsZero() {
		return fmt.Errorf("%w: start_date is required", ErrInvalidRequest)
	}
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: field %s failed on '%s'", ErrInvalidRequest, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

// EndDate 结束日期 = 开始日期 + (天数 - 1)
func (r TripRequest) EndDate() Date {
	return r.StartDate.AddDays(r.Days - 1)
}

// WithDestination 返回目的地替换后的请求副本
func (r TripRequest) WithDestination(destination string) TripRequest {
	r.Destination = destination
	return r
}
