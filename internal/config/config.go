package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // 容器内可能没有系统时区库

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 全局配置结构体（完全匹配config.yaml）
type Config struct {
	Server    ServerConfig              `mapstructure:"server"`    // 服务器配置
	Log       LogConfig                 `mapstructure:"log"`       // 日志配置
	Listing   ListingConfig             `mapstructure:"listing"`   // 列表/聚合配置
	Platforms map[string]PlatformConfig `mapstructure:"platforms"` // 多平台独立配置
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port  int    `mapstructure:"port"`  // 服务端口
	Mode  string `mapstructure:"mode"`  // Gin运行模式：debug/release/test
	Pprof bool   `mapstructure:"pprof"` // 是否注册pprof
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug/info/warn/error
	Format string `mapstructure:"format"` // text/json
}

// ListingConfig 搜索、热门、联想词相关参数
type ListingConfig struct {
	SearchSize       int      `mapstructure:"search_size"`       // 搜索每个平台拉取条数
	TopSize          int      `mapstructure:"top_size"`          // 热门每个平台拉取条数
	SuggestSize      int      `mapstructure:"suggest_size"`      // 联想词每个平台拉取条数
	SuggestMinLen    int      `mapstructure:"suggest_min_len"`   // 联想词最短查询长度
	PlaceholderImage string   `mapstructure:"placeholder_image"` // 无图时的占位图
	Timezone         string   `mapstructure:"timezone"`          // 解析无时区时间所用时区
	EnabledPlatforms []string `mapstructure:"enabled_platforms"` // 启用的平台，顺序即合并顺序
}

// PlatformConfig 单个平台的独立配置
type PlatformConfig struct {
	BaseURL  string `mapstructure:"base_url"`  // API基础地址
	Timeout  int    `mapstructure:"timeout"`   // 请求超时（秒）
	AuthKey  string `mapstructure:"auth_key"`  // SeatGeek client_id / Ticketmaster apikey
	AuthName string `mapstructure:"auth_name"` // 认证参数名（client_id/apikey）
	Proxy    string `mapstructure:"proxy"`     // 代理地址
}

// RequestTimeout 单次请求超时，未配置时 10 秒
func (p *PlatformConfig) RequestTimeout() time.Duration {
	if p.Timeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(p.Timeout) * time.Second
}

// Location 解析 listing.timezone，非法或为空时用 UTC
func (l *ListingConfig) Location() *time.Location {
	if l.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LoadConfig 加载配置文件（config/config.yaml），敏感项从 .env 覆盖（不提交 git）
func LoadConfig() (*Config, error) {
	// 1. 加载 .env（若存在），env 中的值会覆盖 config.yaml 中同名字段
	_ = godotenv.Load() // 忽略错误（.env 可不存在）
	return LoadConfigFrom("./config")
}

// LoadConfigFrom 从指定目录读取 config.yaml
func LoadConfigFrom(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	setDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}
	if cfg.Platforms == nil {
		cfg.Platforms = make(map[string]PlatformConfig)
	}

	// 敏感字段：用 env 覆盖（优先级 env > yaml）
	overrideFromEnv(&cfg)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("listing.search_size", 50)
	v.SetDefault("listing.top_size", 6)
	v.SetDefault("listing.suggest_size", 5)
	v.SetDefault("listing.suggest_min_len", 2)
	v.SetDefault("listing.placeholder_image", "https://images.unsplash.com/photo-1540039155733-5bb30b53aa14?ixlib=rb-1.2.1&auto=format&fit=crop&w=1350&q=80")
	v.SetDefault("listing.timezone", "UTC")
	v.SetDefault("listing.enabled_platforms", []string{"seatgeek", "ticketmaster"})
}

// overrideFromEnv 用环境变量覆盖敏感配置
func overrideFromEnv(cfg *Config) {
	if s, ok := cfg.Platforms["seatgeek"]; ok {
		if v := os.Getenv("SEATGEEK_CLIENT_ID"); v != "" {
			s.AuthKey = v
		}
		if v := os.Getenv("SEATGEEK_PROXY"); v != "" {
			s.Proxy = v
		}
		cfg.Platforms["seatgeek"] = s
	}
	if t, ok := cfg.Platforms["ticketmaster"]; ok {
		if v := os.Getenv("TICKETMASTER_API_KEY"); v != "" {
			t.AuthKey = v
		}
		if v := os.Getenv("TICKETMASTER_PROXY"); v != "" {
			t.Proxy = v
		}
		cfg.Platforms["ticketmaster"] = t
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
}
