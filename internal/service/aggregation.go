package service

import (
	"sort"
	"strings"
	"time"

	"TicketCompare/internal/model"
)

// Reconciler 把多个平台归一化后的事件按规范化标题归并为一个列表
type Reconciler struct {
	placeholderImage string
}

func NewReconciler(placeholderImage string) *Reconciler {
	return &Reconciler{placeholderImage: placeholderImage}
}

// Reconcile 按平台顺序处理各批次，每批按给定顺序处理：
// 首次出现的键新建 Event；已存在且来自其他平台时追加报价，新平台带图则图片与链接以新平台为准。
// 同一平台对同一键的重复记录只保留第一条。结果按开始时间稳定升序，时间未知的排在最后。
func (r *Reconciler) Reconcile(batches ...[]*model.NormalizedEvent) []*model.Event {
	byKey := make(map[string]*model.Event)
	ordered := make([]*model.Event, 0)

	for _, batch := range batches {
		for _, n := range batch {
			if n == nil {
				continue
			}
			// 标题全是符号时键为空，这些记录同样归入 "" 这一组
			key := IdentityKey(n.Title)

			existing, ok := byKey[key]
			if !ok {
				e := r.newEvent(key, n)
				byKey[key] = e
				ordered = append(ordered, e)
				continue
			}
			if existing.HasQuoteFrom(n.Quote.Source) {
				continue
			}
			existing.Prices = append(existing.Prices, n.Quote)
			if n.Image != "" {
				existing.Image = n.Image
				existing.URL = n.URL
			}
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return startsBefore(ordered[i].StartsAt, ordered[j].StartsAt)
	})
	return ordered
}

func (r *Reconciler) newEvent(key string, n *model.NormalizedEvent) *model.Event {
	image := n.Image
	if image == "" {
		image = r.placeholderImage
	}
	return &model.Event{
		ID:       key,
		Title:    n.Title,
		Datetime: n.Datetime,
		StartsAt: n.StartsAt,
		Venue:    n.Venue,
		Prices:   []model.PriceQuote{n.Quote},
		Image:    image,
		URL:      n.URL,
	}
}

// IdentityKey 小写后只保留 ASCII 小写字母和数字
func IdentityKey(title string) string {
	lower := strings.ToLower(title)
	var b strings.Builder
	b.Grow(len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// startsBefore 零值时间视为最晚
func startsBefore(a, b time.Time) bool {
	if a.IsZero() {
		return false
	}
	if b.IsZero() {
		return true
	}
	return a.Before(b)
}
