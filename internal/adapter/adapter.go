package adapter

import (
	"time"

	"TicketCompare/internal/config"
	"TicketCompare/internal/interfaces"

	"github.com/sirupsen/logrus"
)

// Factory 平台适配器工厂函数签名
// 入参：平台配置、解析无时区时间所用的时区、日志实例
// 出参：实现PlatformAdapter接口的适配器实例
type Factory func(cfg *config.PlatformConfig, loc *time.Location, logger *logrus.Logger) interfaces.PlatformAdapter

// 平台时间格式（ParseInLocation 对带偏移的格式会使用字符串里的偏移）
var timeLayouts = []string{
	time.RFC3339,          // Ticketmaster dateTime "2006-01-02T15:04:05Z"
	"2006-01-02T15:04:05", // SeatGeek datetime_local / datetime_utc
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime 解析平台时间字符串，无时区的按 loc 解释；全部失败返回 false
func ParseTime(value string, loc *time.Location) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
