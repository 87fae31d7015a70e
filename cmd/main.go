package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TicketCompare/internal/adapter"
	_ "TicketCompare/internal/adapter/seatgeek"
	_ "TicketCompare/internal/adapter/ticketmaster"
	"TicketCompare/internal/api"
	"TicketCompare/internal/config"
	"TicketCompare/internal/service"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// 1. 加载配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("加载配置文件失败: %v", err)
	}

	// 2. 初始化日志
	logrusLogger := newLogger(cfg.Log)
	logrusLogger.Info("配置文件加载成功")

	// 3. 按配置顺序初始化平台适配器（SeatGeek 在前，Ticketmaster 在后）
	registry := adapter.NewPlatformRegistry(cfg, logrusLogger)
	if registry.GetPlatformCount() == 0 {
		logrusLogger.Warn("没有可用的平台适配器，所有查询将返回空结果")
	}

	listingService := service.NewListingService(
		registry.Adapters(),
		service.NewReconciler(cfg.Listing.PlaceholderImage),
		cfg.Listing,
		logrusLogger,
	)
	listingHandler := api.NewListingHandler(listingService, service.NewSuperseder(), logrusLogger)

	// 4. 配置Gin运行模式（从配置读取：debug/release）
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery(), api.RequestID(), api.AccessLog(logrusLogger))

	if cfg.Server.Pprof {
		pprof.Register(r)
		logrusLogger.Info("已注册pprof")
	}
	logrusLogger.Infof("Gin运行模式: %s", cfg.Server.Mode)

	// 5. 注册API路由
	api.RegisterRoutes(r, listingHandler)

	// 6. 启动服务，收到信号后优雅退出
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}
	srvErr := make(chan error, 1)
	go func() {
		logrusLogger.Infof("服务启动成功，端口：%d", cfg.Server.Port)
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrusLogger.Fatalf("启动服务失败: %v", err)
		}
	case <-stopCtx.Done():
		logrusLogger.Info("收到退出信号，停止服务")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrusLogger.WithError(err).Error("服务关闭失败")
	}
	logrusLogger.Info("服务已停止")
}

// newLogger 按配置设置日志级别与格式
func newLogger(cfg config.LogConfig) *logrus.Logger {
	l := logrus.New()
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	if cfg.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	return l
}
