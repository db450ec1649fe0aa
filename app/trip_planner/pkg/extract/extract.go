// Package extract 从模型输出的自由文本中提取结构化 JSON
package extract

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
)

// StripFences 去掉 markdown 代码块标记
func StripFences(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```JSON")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

// FirstBlock 返回文本中第一个括号配平且能通过 JSON 校验的对象或数组。
// 扫描时会跳过字符串字面量内的括号。
func FirstBlock(text string) (string, bool) {
	for i := 0; i < len(text); i++ {
		if text[i] != '{' && text[i] != '[' {
			continue
		}
		end, ok := matchClose(text, i)
		if !ok {
			continue
		}
		block := text[i : end+1]
		if json.Valid([]byte(block)) {
			return block, true
		}
	}
	return "", false
}

// matchClose 找到 start 处开括号对应的闭括号位置
func matchClose(text string, start int) (int, bool) {
	var stack []byte
	inString, escaped := false, false

	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '}', ']':
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return 0, false
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// Decode 依次尝试文本中的 JSON 块，返回第一个能解码为 T 的结果。
// T 为结构体或 map 时只考虑 {...}，为切片时只考虑 [...]。
func Decode[T any](text string) (*T, error) {
	clean := StripFences(text)
	opens := openers(reflect.TypeFor[T]())

	var lastErr error
	for i := 0; i < len(clean); i++ {
		if strings.IndexByte(opens, clean[i]) < 0 {
			continue
		}
		end, ok := matchClose(clean, i)
		if !ok {
			continue
		}
		var out T
		if err := json.Unmarshal([]byte(clean[i:end+1]), &out); err != nil {
			lastErr = err
			continue
		}
		return &out, nil
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrParse, lastErr)
	}
	return nil, fmt.Errorf("%w: no json block found", model.ErrParse)
}

func openers(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Struct, reflect.Map:
		return "{"
	case reflect.Slice, reflect.Array:
		return "["
	}
	return "{["
}
