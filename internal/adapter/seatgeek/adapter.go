package seatgeek

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"TicketCompare/internal/adapter"
	"TicketCompare/internal/config"
	"TicketCompare/internal/interfaces"
	"TicketCompare/internal/model"
	"TicketCompare/internal/utils/httpclient"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func init() {
	adapter.Register(model.PlatformSeatGeek, NewSeatGeekAdapter)
}

type Adapter struct {
	cfg        *config.PlatformConfig
	httpClient *http.Client
	loc        *time.Location
	logger     *logrus.Logger
}

func NewSeatGeekAdapter(cfg *config.PlatformConfig, loc *time.Location, logger *logrus.Logger) interfaces.PlatformAdapter {
	return &Adapter{
		cfg:        cfg,
		httpClient: httpclient.NewHTTPClient(cfg, logger),
		loc:        loc,
		logger:     logger,
	}
}

// GetName ========== 实现PlatformAdapter接口 ==========
func (s *Adapter) GetName() string {
	return "SeatGeek"
}

func (s *Adapter) GetType() model.PlatformType {
	return model.PlatformSeatGeek
}

func (s *Adapter) FetchEvents(ctx context.Context, query model.EventQuery) ([]*model.PlatformRawEvent, error) {
	events, err := s.listEvents(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("获取SeatGeek事件失败: %w", err)
	}

	// 封装为通用RawEvent
	rawEvents := make([]*model.PlatformRawEvent, 0, len(events))
	for _, e := range events {
		rawEvents = append(rawEvents, &model.PlatformRawEvent{
			Platform: model.PlatformSeatGeek,
			ID:       strconv.FormatInt(e.ID, 10),
			Data:     e,
		})
	}

	s.logger.WithField("keyword", query.Keyword).Debugf("成功获取SeatGeek事件共%d条", len(rawEvents))
	return rawEvents, nil
}

func (s *Adapter) FetchSuggestions(ctx context.Context, keyword string, size int) ([]string, error) {
	events, err := s.listEvents(ctx, model.EventQuery{Keyword: keyword, Size: size})
	if err != nil {
		return nil, fmt.Errorf("获取SeatGeek联想词失败: %w", err)
	}
	titles := make([]string, 0, len(events))
	for _, e := range events {
		titles = append(titles, e.Title)
	}
	return titles, nil
}

// listEvents GET /events?q=..&per_page=..[&sort=score.desc]
func (s *Adapter) listEvents(ctx context.Context, query model.EventQuery) ([]model.SeatGeekEvent, error) {
	params := url.Values{}
	if query.Keyword != "" {
		params.Set("q", query.Keyword)
	}
	if query.Size > 0 {
		params.Set("per_page", strconv.Itoa(query.Size))
	}
	if query.Top {
		params.Set("sort", "score.desc")
	}

	var resp model.SeatGeekEventsResponse
	if err := httpclient.GetJSON(ctx, s.httpClient, fmt.Sprintf("%s/events?%s", s.cfg.BaseURL, params.Encode()), &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}

func (s *Adapter) Normalize(raw []*model.PlatformRawEvent) []*model.NormalizedEvent {
	out := make([]*model.NormalizedEvent, 0, len(raw))
	for _, r := range raw {
		e, ok := r.Data.(model.SeatGeekEvent)
		if !ok {
			s.logger.Warn("RawEvent数据类型错误，跳过")
			continue
		}
		ne, ok := NormalizeEvent(e, s.loc)
		if !ok {
			s.logger.WithField("platform_event_id", r.ID).Debug("SeatGeek事件无有效价格，跳过")
			continue
		}
		out = append(out, ne)
	}
	return out
}

// NormalizeEvent 把 SeatGeek 事件转为通用结构。
// lowest_price/highest_price 至少一个非空非零才产生报价；lowest 缺失记 0，highest 缺失取 lowest。
func NormalizeEvent(e model.SeatGeekEvent, loc *time.Location) (*model.NormalizedEvent, bool) {
	if e.Stats == nil {
		return nil, false
	}
	if !present(e.Stats.LowestPrice) && !present(e.Stats.HighestPrice) {
		return nil, false
	}

	lowest := decimal.Zero
	if e.Stats.LowestPrice.Valid {
		lowest = e.Stats.LowestPrice.Decimal
	}
	highest := lowest
	if e.Stats.HighestPrice.Valid {
		highest = e.Stats.HighestPrice.Decimal
	}
	if lowest.IsNegative() || highest.IsNegative() {
		return nil, false
	}
	if highest.LessThan(lowest) {
		highest = lowest
	}

	var image string
	if len(e.Performers) > 0 {
		image = e.Performers[0].Image
	}

	return &model.NormalizedEvent{
		Title:    e.Title,
		Datetime: e.DatetimeLocal,
		StartsAt: startTime(e, loc),
		Venue: model.Venue{
			Name:  e.Venue.Name,
			City:  e.Venue.City,
			State: e.Venue.State,
		},
		Quote: model.PriceQuote{
			Lowest:  lowest,
			Highest: highest,
			Source:  model.PlatformSeatGeek,
			URL:     e.URL,
		},
		Image: image,
		URL:   e.URL,
	}, true
}

// startTime datetime_utc 优先（按 UTC 解释），否则 datetime_local 按配置时区解释
func startTime(e model.SeatGeekEvent, loc *time.Location) time.Time {
	if t, ok := adapter.ParseTime(e.DatetimeUTC, time.UTC); ok {
		return t
	}
	t, _ := adapter.ParseTime(e.DatetimeLocal, loc)
	return t
}

func present(d decimal.NullDecimal) bool {
	return d.Valid && !d.Decimal.IsZero()
}
