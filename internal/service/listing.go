package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"TicketCompare/internal/config"
	"TicketCompare/internal/interfaces"
	"TicketCompare/internal/model"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ListingService 搜索、热门、联想词。各平台并发请求，单个平台失败只当作空结果，不重试
type ListingService struct {
	adapters   []interfaces.PlatformAdapter
	reconciler *Reconciler
	cfg        config.ListingConfig
	logger     *logrus.Logger
}

// NewListingService adapters 的顺序即合并顺序
func NewListingService(adapters []interfaces.PlatformAdapter, reconciler *Reconciler, cfg config.ListingConfig, logger *logrus.Logger) *ListingService {
	return &ListingService{
		adapters:   adapters,
		reconciler: reconciler,
		cfg:        cfg,
		logger:     logger,
	}
}

// SearchEvents 按关键字搜索并合并
func (s *ListingService) SearchEvents(ctx context.Context, query string) []*model.Event {
	return s.listEvents(ctx, model.EventQuery{Keyword: strings.TrimSpace(query), Size: s.cfg.SearchSize})
}

// GetTopEvents 热门活动（SeatGeek 按 score 倒序）
func (s *ListingService) GetTopEvents(ctx context.Context) []*model.Event {
	return s.listEvents(ctx, model.EventQuery{Size: s.cfg.TopSize, Top: true})
}

func (s *ListingService) listEvents(ctx context.Context, query model.EventQuery) []*model.Event {
	batches := make([][]*model.NormalizedEvent, len(s.adapters))

	// 等待所有平台结束，错误只记录不向上返回，避免 errgroup 短路
	var g errgroup.Group
	for i, a := range s.adapters {
		g.Go(func() error {
			raw, err := a.FetchEvents(ctx, query)
			if err != nil {
				s.logFetchError(ctx, a, err, "拉取事件失败，按空结果处理")
				return nil
			}
			batches[i] = a.Normalize(raw)
			return nil
		})
	}
	_ = g.Wait()

	events := s.reconciler.Reconcile(batches...)
	s.logger.WithFields(logrus.Fields{
		"keyword": query.Keyword,
		"top":     query.Top,
		"events":  len(events),
	}).Info("活动列表合并完成")
	return events
}

// SuggestionQuery 去掉首尾空白；长度不足最短长度时返回 false，此时不应请求上游
func (s *ListingService) SuggestionQuery(query string) (string, bool) {
	q := strings.TrimSpace(query)
	return q, utf8.RuneCountInString(q) >= s.minSuggestLen()
}

// GetSuggestions 查询长度不足时直接返回空，不发请求；结果按首次出现顺序去重
func (s *ListingService) GetSuggestions(ctx context.Context, query string) []string {
	q, ok := s.SuggestionQuery(query)
	if !ok {
		return []string{}
	}

	lists := make([][]string, len(s.adapters))
	var g errgroup.Group
	for i, a := range s.adapters {
		g.Go(func() error {
			names, err := a.FetchSuggestions(ctx, q, s.cfg.SuggestSize)
			if err != nil {
				s.logFetchError(ctx, a, err, "拉取联想词失败，按空结果处理")
				return nil
			}
			lists[i] = names
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, names := range lists {
		for _, name := range names {
			if name == "" {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}

func (s *ListingService) minSuggestLen() int {
	if s.cfg.SuggestMinLen <= 0 {
		return 2
	}
	return s.cfg.SuggestMinLen
}

// logFetchError 调用方已取消（被新请求替代或客户端断开）时只记 debug
func (s *ListingService) logFetchError(ctx context.Context, a interfaces.PlatformAdapter, err error, msg string) {
	entry := s.logger.WithError(err).WithFields(logrus.Fields{
		"platform":      a.GetType(),
		"platform_name": a.GetName(),
	})
	if ctx.Err() != nil {
		entry.Debug(msg)
		return
	}
	entry.Warn(msg)
}
