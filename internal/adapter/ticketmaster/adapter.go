package ticketmaster

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

// PreferredRatio 优先选用的图片比例
const PreferredRatio = "16_9"

func init() {
	adapter.Register(model.PlatformTicketmaster, NewTicketmasterAdapter)
}

type Adapter struct {
	cfg        *config.PlatformConfig
	httpClient *http.Client
	loc        *time.Location
	logger     *logrus.Logger
}

func NewTicketmasterAdapter(cfg *config.PlatformConfig, loc *time.Location, logger *logrus.Logger) interfaces.PlatformAdapter {
	return &Adapter{
		cfg:        cfg,
		httpClient: httpclient.NewHTTPClient(cfg, logger),
		loc:        loc,
		logger:     logger,
	}
}

// GetName ========== 实现PlatformAdapter接口 ==========
func (t *Adapter) GetName() string {
	return "Ticketmaster"
}

func (t *Adapter) GetType() model.PlatformType {
	return model.PlatformTicketmaster
}

func (t *Adapter) FetchEvents(ctx context.Context, query model.EventQuery) ([]*model.PlatformRawEvent, error) {
	events, err := t.get(ctx, "events.json", query.Keyword, query.Size)
	if err != nil {
		return nil, fmt.Errorf("获取Ticketmaster事件失败: %w", err)
	}

	rawEvents := make([]*model.PlatformRawEvent, 0, len(events))
	for _, e := range events {
		rawEvents = append(rawEvents, &model.PlatformRawEvent{
			Platform: model.PlatformTicketmaster,
			ID:       e.ID,
			Data:     e,
		})
	}

	t.logger.WithField("keyword", query.Keyword).Debugf("成功获取Ticketmaster事件共%d条", len(rawEvents))
	return rawEvents, nil
}

func (t *Adapter) FetchSuggestions(ctx context.Context, keyword string, size int) ([]string, error) {
	events, err := t.get(ctx, "suggest.json", keyword, size)
	if err != nil {
		return nil, fmt.Errorf("获取Ticketmaster联想词失败: %w", err)
	}
	names := make([]string, 0, len(events))
	for _, e := range events {
		names = append(names, e.Name)
	}
	return names, nil
}

// get 调用 events.json / suggest.json，无结果时 _embedded 缺失，返回空列表
func (t *Adapter) get(ctx context.Context, endpoint, keyword string, size int) ([]model.TicketmasterEvent, error) {
	params := url.Values{}
	if keyword != "" {
		params.Set("keyword", keyword)
	}
	if size > 0 {
		params.Set("size", strconv.Itoa(size))
	}

	var resp model.TicketmasterEventsResponse
	if err := httpclient.GetJSON(ctx, t.httpClient, fmt.Sprintf("%s/%s?%s", t.cfg.BaseURL, endpoint, params.Encode()), &resp); err != nil {
		return nil, err
	}
	if resp.Embedded == nil {
		return nil, nil
	}
	return resp.Embedded.Events, nil
}

func (t *Adapter) Normalize(raw []*model.PlatformRawEvent) []*model.NormalizedEvent {
	out := make([]*model.NormalizedEvent, 0, len(raw))
	for _, r := range raw {
		e, ok := r.Data.(model.TicketmasterEvent)
		if !ok {
			t.logger.Warn("RawEvent数据类型错误，跳过")
			continue
		}
		ne, ok := NormalizeEvent(e, t.loc)
		if !ok {
			t.logger.WithField("platform_event_id", r.ID).Debug("Ticketmaster事件价格区间不完整，跳过")
			continue
		}
		out = append(out, ne)
	}
	return out
}

// NormalizeEvent 把 Ticketmaster 事件转为通用结构。
// 仅当 priceRanges[0] 的 min、max 都非空非零时产生报价，否则整条跳过。
func NormalizeEvent(e model.TicketmasterEvent, loc *time.Location) (*model.NormalizedEvent, bool) {
	if len(e.PriceRanges) == 0 {
		return nil, false
	}
	pr := e.PriceRanges[0]
	if !present(pr.Min) || !present(pr.Max) {
		return nil, false
	}
	if pr.Min.Decimal.IsNegative() || pr.Max.Decimal.LessThan(pr.Min.Decimal) {
		return nil, false
	}

	return &model.NormalizedEvent{
		Title:    e.Name,
		Datetime: datetime(e.Dates.Start),
		StartsAt: startTime(e.Dates.Start, loc),
		Venue:    venue(e),
		Quote: model.PriceQuote{
			Lowest:  pr.Min.Decimal,
			Highest: pr.Max.Decimal,
			Source:  model.PlatformTicketmaster,
			URL:     e.URL,
		},
		Image: SelectImage(e.Images),
		URL:   e.URL,
	}, true
}

// SelectImage 优先 16_9 比例，否则第一张；无图返回空
func SelectImage(images []model.TicketmasterImage) string {
	for _, img := range images {
		if img.Ratio == PreferredRatio && img.URL != "" {
			return img.URL
		}
	}
	if len(images) > 0 {
		return images[0].URL
	}
	return ""
}

// datetime 原样返回 dateTime，缺失时拼 localDate + localTime
func datetime(s model.TicketmasterStart) string {
	if s.DateTime != "" {
		return s.DateTime
	}
	if s.LocalDate == "" || s.LocalTime == "" {
		return s.LocalDate
	}
	return s.LocalDate + "T" + s.LocalTime
}

func startTime(s model.TicketmasterStart, loc *time.Location) time.Time {
	if t, ok := adapter.ParseTime(s.DateTime, time.UTC); ok {
		return t
	}
	t, _ := adapter.ParseTime(datetime(s), loc)
	return t
}

func venue(e model.TicketmasterEvent) model.Venue {
	if e.Embedded == nil || len(e.Embedded.Venues) == 0 {
		return model.Venue{}
	}
	v := e.Embedded.Venues[0]
	return model.Venue{
		Name:  v.Name,
		City:  v.City.Name,
		State: v.State.StateCode,
	}
}

func present(d decimal.NullDecimal) bool {
	return d.Valid && !d.Decimal.IsZero()
}
