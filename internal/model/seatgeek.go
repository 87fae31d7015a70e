package model

import "github.com/shopspring/decimal"

// ========== SeatGeek 官方 API 响应结构（GET /events） ==========

// SeatGeekEventsResponse GET /events 的根响应
type SeatGeekEventsResponse struct {
	Events []SeatGeekEvent `json:"events"`
}

// SeatGeekEvent 单条事件
type SeatGeekEvent struct {
	ID            int64               `json:"id"`
	Title         string              `json:"title"`
	URL           string              `json:"url"`
	DatetimeLocal string              `json:"datetime_local"` // 无时区，场馆当地时间
	DatetimeUTC   string              `json:"datetime_utc"`   // 无时区后缀的 UTC 时间
	Score         float64             `json:"score"`
	Stats         *SeatGeekStats      `json:"stats"`
	Venue         SeatGeekVenue       `json:"venue"`
	Performers    []SeatGeekPerformer `json:"performers"`
}

// SeatGeekStats 价格统计，字段可能为 null
type SeatGeekStats struct {
	LowestPrice  decimal.NullDecimal `json:"lowest_price"`
	HighestPrice decimal.NullDecimal `json:"highest_price"`
	ListingCount int                 `json:"listing_count"`
}

// SeatGeekVenue 场馆
type SeatGeekVenue struct {
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

// SeatGeekPerformer 演出者（取第一位的图片）
type SeatGeekPerformer struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}
