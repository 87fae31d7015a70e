package api

import (
	"net/http"
	"strings"

	"TicketCompare/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ClientIDHeader 同一客户端的新请求会替代其进行中的旧请求
const ClientIDHeader = "X-Client-ID"

// ListingHandler 提供给前端的活动查询接口
type ListingHandler struct {
	listingService *service.ListingService
	superseder     *service.Superseder
	logger         *logrus.Logger
}

// NewListingHandler 创建 ListingHandler
func NewListingHandler(listingService *service.ListingService, superseder *service.Superseder, logger *logrus.Logger) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
		superseder:     superseder,
		logger:         logger,
	}
}

// SearchEvents 搜索接口
// GET /api/events/search?q=taylor+swift
func (h *ListingHandler) SearchEvents(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	ticket := h.superseder.Begin(c.Request.Context(), supersedeKey(c))
	defer ticket.Done()

	events := h.listingService.SearchEvents(ticket.Context(), query)
	if h.abortIfSuperseded(c, ticket) {
		return
	}
	c.JSON(http.StatusOK, service.BuildEventList(query, events))
}

// TopEvents 热门活动接口
// GET /api/events/top
func (h *ListingHandler) TopEvents(c *gin.Context) {
	ticket := h.superseder.Begin(c.Request.Context(), supersedeKey(c))
	defer ticket.Done()

	events := h.listingService.GetTopEvents(ticket.Context())
	if h.abortIfSuperseded(c, ticket) {
		return
	}
	c.JSON(http.StatusOK, service.BuildEventList("", events))
}

// Suggestions 联想词接口，q 少于 2 个字符时返回空列表
// GET /api/suggestions?q=ta
func (h *ListingHandler) Suggestions(c *gin.Context) {
	query, ok := h.listingService.SuggestionQuery(c.Query("q"))
	if !ok {
		c.JSON(http.StatusOK, gin.H{"items": []string{}})
		return
	}

	ticket := h.superseder.Begin(c.Request.Context(), supersedeKey(c))
	defer ticket.Done()

	suggestions := h.listingService.GetSuggestions(ticket.Context(), query)
	if h.abortIfSuperseded(c, ticket) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": suggestions})
}

// Health 存活检查
func (h *ListingHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *ListingHandler) abortIfSuperseded(c *gin.Context, ticket *service.Ticket) bool {
	if !ticket.Superseded() {
		return false
	}
	h.logger.WithFields(logrus.Fields{
		"client_id": clientID(c),
		"path":      c.FullPath(),
		"inflight":  h.superseder.InFlight(),
	}).Debug("请求已被同一客户端的新请求替代")
	c.JSON(http.StatusConflict, gin.H{"error": "superseded"})
	return true
}

// supersedeKey 同一客户端的同一接口共用一个替代键，不同接口互不影响
func supersedeKey(c *gin.Context) string {
	id := clientID(c)
	if id == "" {
		return ""
	}
	return c.FullPath() + "|" + id
}

func clientID(c *gin.Context) string {
	if v := c.GetHeader(ClientIDHeader); v != "" {
		return v
	}
	return c.Query("client_id")
}
