package httpclient

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"TicketCompare/internal/config"

	"github.com/sirupsen/logrus"
)

// ErrUnexpectedStatus 平台返回非 2xx
var ErrUnexpectedStatus = errors.New("unexpected status code")

// NewHTTPClient 通用HTTP客户端构建方法（支持代理、超时、自动解压、认证参数注入）
func NewHTTPClient(cfg *config.PlatformConfig, logger *logrus.Logger) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		IdleConnTimeout:     30 * time.Second,
		DisableCompression:  true, // 由 compressedTransport 自行处理
		TLSHandshakeTimeout: 10 * time.Second,
	}

	// 配置代理
	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			logger.WithError(err).WithField("proxy", cfg.Proxy).Warn("代理地址解析失败，将不使用代理")
		} else {
			transport.Proxy = http.ProxyURL(proxyURL)
			logger.WithField("proxy", cfg.Proxy).Info("HTTP客户端已配置代理")
		}
	}

	var rt http.RoundTripper = &compressedTransport{transport: transport, logger: logger}
	if cfg.AuthName != "" && cfg.AuthKey != "" {
		rt = &authTransport{transport: rt, name: cfg.AuthName, key: cfg.AuthKey}
	}

	return &http.Client{
		Timeout:   cfg.RequestTimeout(),
		Transport: rt,
	}
}

// GetJSON 发起 GET 请求并把响应体解析到 out
func GetJSON(ctx context.Context, client *http.Client, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("构建请求失败: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// 读一小段错误信息便于排查
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("解析响应失败: %w", err)
	}
	return nil
}

// authTransport 把平台凭证作为查询参数追加到每个请求（SeatGeek client_id、Ticketmaster apikey）
type authTransport struct {
	transport http.RoundTripper
	name      string
	key       string
}

func (a *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTripper 不能修改原请求
	r := req.Clone(req.Context())
	q := r.URL.Query()
	if q.Get(a.name) == "" {
		q.Set(a.name, a.key)
	}
	r.URL.RawQuery = q.Encode()
	return a.transport.RoundTrip(r)
}

type compressedTransport struct {
	transport http.RoundTripper
	logger    *logrus.Logger
}

func (c *compressedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("Accept-Encoding", "gzip")
	resp, err := c.transport.RoundTrip(r)
	if err != nil {
		return nil, err
	}

	// 处理gzip解压
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			// 头部已被读取一部分，原始响应不能再交给调用方
			_ = resp.Body.Close()
			c.logger.WithError(err).Warn("gzip解压失败")
			return nil, fmt.Errorf("gzip解压失败: %w", err)
		}
		resp.Body = &gzipReadCloser{
			Reader: gzReader,
			closer: resp.Body,
		}
		resp.Header.Del("Content-Encoding")
		resp.ContentLength = -1
	}

	return resp, nil
}

// gzipReadCloser 关闭时同时关闭解压reader和原始响应体
type gzipReadCloser struct {
	*gzip.Reader
	closer io.ReadCloser
}

func (g *gzipReadCloser) Close() error {
	if err := g.Reader.Close(); err != nil {
		_ = g.closer.Close()
		return err
	}
	return g.closer.Close()
}
