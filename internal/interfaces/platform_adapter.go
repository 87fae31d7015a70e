package interfaces

import (
	"context"

	"TicketCompare/internal/model"
)

// PlatformAdapter 所有票务平台必须实现的核心接口
//
//go:generate mockgen -destination=mocks/mock_platform_adapter.go -package=mocks -source=platform_adapter.go PlatformAdapter
type PlatformAdapter interface {
	GetName() string                                                                            // 平台名称
	GetType() model.PlatformType                                                                // 平台类型
	FetchEvents(ctx context.Context, query model.EventQuery) ([]*model.PlatformRawEvent, error) // 拉取事件
	Normalize(raw []*model.PlatformRawEvent) []*model.NormalizedEvent                           // 归一化，无报价的记录被丢弃
	FetchSuggestions(ctx context.Context, keyword string, size int) ([]string, error)           // 联想词
}
