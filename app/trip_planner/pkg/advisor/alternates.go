package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/extract"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/logger"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
)

// MaxAlternates 备选目的地数量上限
const MaxAlternates = 3

// Alternates 天气不适宜时推荐备选目的地，启用联网增强
func (a *Advisor) Alternates(ctx context.Context, fc *model.Forecast, req model.TripRequest) *model.Generated[model.Alternates] {
	raw := a.generate(ctx, "alternates", alternatesPrompt(fc, req), true)
	out := &model.Generated[model.Alternates]{Raw: raw}

	alt, err := ParseAlternates(raw)
	if err != nil {
		logger.Log.Warnf("备选目的地解析失败 [%s]: %v", req.Destination, err)
		return out
	}
	out.Parsed = alt
	return out
}

// ParseAlternates 支持三种形式：
// {"alternate_suggestions": [{place, reason}]}、[{place, reason}] 与 ["place", ...]
func ParseAlternates(raw string) (*model.Alternates, error) {
	block, ok := extract.FirstBlock(extract.StripFences(raw))
	if !ok {
		return nil, fmt.Errorf("%w: no json block found", model.ErrParse)
	}

	items := json.RawMessage(block)
	if strings.HasPrefix(block, "{") {
		var wrapper struct {
			Suggestions json.RawMessage `json:"alternate_suggestions"`
		}
		if err := json.Unmarshal([]byte(block), &wrapper); err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrParse, err)
		}
		items = wrapper.Suggestions
	}

	var list []json.RawMessage
	if err := json.Unmarshal(items, &list); err != nil {
		return nil, fmt.Errorf("%w: suggestions are not a list", model.ErrParse)
	}

	alt := &model.Alternates{}
	for _, item := range list {
		if s, ok := suggestion(item); ok {
			alt.Suggestions = append(alt.Suggestions, s)
		}
		if len(alt.Suggestions) == MaxAlternates {
			break
		}
	}
	if len(alt.Suggestions) == 0 {
		return nil, fmt.Errorf("%w: no usable suggestions", model.ErrParse)
	}
	return alt, nil
}

func suggestion(item json.RawMessage) (model.Suggestion, bool) {
	var name string
	if json.Unmarshal(item, &name) == nil {
		name = strings.TrimSpace(name)
		return model.Suggestion{Place: name}, name != ""
	}
	var s model.Suggestion
	if json.Unmarshal(item, &s) != nil {
		return s, false
	}
	s.Place = strings.TrimSpace(s.Place)
	s.Reason = strings.TrimSpace(s.Reason)
	return s, s.Place != ""
}
