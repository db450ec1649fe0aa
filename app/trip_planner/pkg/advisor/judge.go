package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/extract"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/logger"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
)

const (
	reasonNoWeather   = "No weather data available"
	reasonParseFailed = "Failed to parse LLM response"
)

type verdict struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
}

// Judge 判断天气是否适合出行。预报为空时不调用模型，直接返回 unknown。
func (a *Advisor) Judge(ctx context.Context, fc *model.Forecast) model.Decision {
	if fc.Empty() {
		return model.Decision{Outcome: model.OutcomeUnknown, Reason: reasonNoWeather}
	}

	raw := a.generate(ctx, "judge", judgePrompt(fc), false)
	v, err := extract.Decode[verdict](raw)
	if err == nil && strings.TrimSpace(v.Decision) == "" {
		err = fmt.Errorf("%w: missing decision", model.ErrParse)
	}
	if err != nil {
		logger.Log.Warnf("天气判断解析失败: %v", err)
		return model.Decision{Outcome: model.OutcomeUnknown, Reason: reasonParseFailed}
	}

	d := model.Decision{
		Outcome: model.NormalizeOutcome(v.Decision),
		Reason:  strings.TrimSpace(v.Reason),
	}
	logger.Log.Infof("天气判断 [%s]: %s", fc.City, d.Outcome)
	return d
}
