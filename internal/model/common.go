package model

// PlatformType 平台类型枚举
type PlatformType string

const (
	PlatformSeatGeek     PlatformType = "seatgeek"
	PlatformTicketmaster PlatformType = "ticketmaster"
)

// Valid 是否为已知平台
func (p PlatformType) Valid() bool {
	switch p {
	case PlatformSeatGeek, PlatformTicketmaster:
		return true
	}
	return false
}

// PlatformRawEvent 所有平台的原始事件通用结构
type PlatformRawEvent struct {
	Platform PlatformType // 来源平台
	ID       string       // 平台原生事件ID
	Data     interface{}  // 平台原生数据（SeatGeekEvent/TicketmasterEvent）
}

// EventQuery 拉取事件的查询条件
type EventQuery struct {
	Keyword string // 关键字，为空时按热门拉取
	Size    int    // 每页条数
	Top     bool   // 热门模式（SeatGeek 按 score 倒序）
}
