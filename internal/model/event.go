package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venue 场馆
type Venue struct {
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"` // 州/地区代码
}

func init() {
	// 价格以 JSON 数字输出，前端直接 toFixed(2)
	decimal.MarshalJSONWithoutQuotes = true
}

// PriceQuote 单个平台对某场活动的报价
type PriceQuote struct {
	Lowest  decimal.Decimal `json:"lowest"`
	Highest decimal.Decimal `json:"highest"`
	Source  PlatformType    `json:"source"`
	URL     string          `json:"url"` // 购票深链
}

// Event 合并后的活动，ID 即规范化标题键
type Event struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Datetime string       `json:"datetime"` // 平台原样返回的开始时间
	StartsAt time.Time    `json:"-"`        // 解析后的开始时间，解析失败为零值
	Venue    Venue        `json:"venue"`
	Prices   []PriceQuote `json:"prices"`
	Image    string       `json:"image"`
	URL      string       `json:"url"`
}

// HasQuoteFrom 是否已有该平台的报价
func (e *Event) HasQuoteFrom(source PlatformType) bool {
	for _, q := range e.Prices {
		if q.Source == source {
			return true
		}
	}
	return false
}

// NormalizedEvent 各平台原始事件归一化后的中间结构，只有带报价的记录才会被构建
type NormalizedEvent struct {
	Title    string
	Datetime string
	StartsAt time.Time
	Venue    Venue
	Quote    PriceQuote
	Image    string // 平台未提供图片时为空
	URL      string
}

// BestDeal 最低价报价：按 Lowest 取最小，相同取靠前的一条
func BestDeal(quotes []PriceQuote) (PriceQuote, bool) {
	if len(quotes) == 0 {
		return PriceQuote{}, false
	}
	best := quotes[0]
	for _, q := range quotes[1:] {
		if q.Lowest.LessThan(best.Lowest) {
			best = q
		}
	}
	return best, true
}
