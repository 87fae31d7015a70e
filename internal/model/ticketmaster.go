package model

import "github.com/shopspring/decimal"

// ========== Ticketmaster Discovery API 响应结构（GET /events.json、/suggest.json） ==========

// TicketmasterEventsResponse events.json / suggest.json 的根响应
type TicketmasterEventsResponse struct {
	Embedded *TicketmasterEmbeddedEvents `json:"_embedded"`
}

// TicketmasterEmbeddedEvents _embedded 节点，无结果时整个节点缺失
type TicketmasterEmbeddedEvents struct {
	Events []TicketmasterEvent `json:"events"`
}

// TicketmasterEvent 单条事件
type TicketmasterEvent struct {
	ID          string                      `json:"id"`
	Name        string                      `json:"name"`
	URL         string                      `json:"url"`
	Dates       TicketmasterDates           `json:"dates"`
	PriceRanges []TicketmasterPriceRange    `json:"priceRanges"`
	Images      []TicketmasterImage         `json:"images"`
	Embedded    *TicketmasterEmbeddedVenues `json:"_embedded"`
}

// TicketmasterDates 时间信息
type TicketmasterDates struct {
	Start TicketmasterStart `json:"start"`
}

// TicketmasterStart 开始时间，dateTime 为带时区的 UTC 时间
type TicketmasterStart struct {
	LocalDate string `json:"localDate"`
	LocalTime string `json:"localTime"`
	DateTime  string `json:"dateTime"`
}

// TicketmasterPriceRange 价格区间
type TicketmasterPriceRange struct {
	Type     string              `json:"type"`
	Currency string              `json:"currency"`
	Min      decimal.NullDecimal `json:"min"`
	Max      decimal.NullDecimal `json:"max"`
}

// TicketmasterImage 图片候选
type TicketmasterImage struct {
	Ratio  string `json:"ratio"` // 16_9 / 3_2 / 4_3 ...
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// TicketmasterEmbeddedVenues 事件内嵌的场馆
type TicketmasterEmbeddedVenues struct {
	Venues []TicketmasterVenue `json:"venues"`
}

// TicketmasterVenue 场馆
type TicketmasterVenue struct {
	Name string `json:"name"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	State struct {
		StateCode string `json:"stateCode"`
	} `json:"state"`
}
