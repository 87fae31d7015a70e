package service

import "TicketCompare/internal/model"

// EventSummary 列表页单个活动信息，附带最低价报价
type EventSummary struct {
	*model.Event
	BestDeal      *model.PriceQuote `json:"best_deal,omitempty"`
	PlatformCount int               `json:"platform_count"`
}

// EventListResult 列表返回
type EventListResult struct {
	Query string         `json:"query,omitempty"`
	Total int            `json:"total"`
	Items []EventSummary `json:"items"`
}

// BuildEventList 为每个活动计算最低价，保持输入顺序
func BuildEventList(query string, events []*model.Event) *EventListResult {
	result := &EventListResult{
		Query: query,
		Total: len(events),
		Items: make([]EventSummary, 0, len(events)),
	}
	for _, e := range events {
		summary := EventSummary{Event: e, PlatformCount: len(e.Prices)}
		if best, ok := model.BestDeal(e.Prices); ok {
			summary.BestDeal = &best
		}
		result.Items = append(result.Items, summary)
	}
	return result
}
