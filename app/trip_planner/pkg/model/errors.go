package model

import "errors"

var (
	// ErrLookup 第三方服务（天气、航班、酒店、搜索）返回非成功响应
	ErrLookup = errors.New("lookup failed")

	// ErrResolution 无法从搜索结果中解析出合法的三字码机场代码
	ErrResolution = errors.New("airport code resolution failed")

	// ErrParse 无法从模型输出中提取结构化数据，永远不会中断流程
	ErrParse = errors.New("structured extraction failed")

	// ErrInvalidRequest 行程请求参数不合法
	ErrInvalidRequest = errors.New("invalid trip request")

	// ErrNotFound 行程记录不存在
	ErrNotFound = errors.New("trip not found")
)
