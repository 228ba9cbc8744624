package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/namhuunam/xxvn-crawler-go/internal/config"
	"github.com/namhuunam/xxvn-crawler-go/pkg/logger"
	"github.com/namhuunam/xxvn-crawler-go/pkg/ratelimit"
)

// Error API 调用失败
// Retryable 表示该类错误在重试预算内会被重试；调用方收到它意味着预算已耗尽，
// 应跳过当前条目而不是中止整个任务
type Error struct {
	Retryable bool
	Msg       string
	Err       error
}

// Error 实现 error 接口
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

// Unwrap 返回底层错误
func (e *Error) Unwrap() error {
	return e.Err
}

// Client 上游 API 客户端，带重试与请求节流
type Client struct {
	baseURL    string
	httpClient *resty.Client
	retries    int
	limiter    ratelimit.Limiter
}

// NewClient 创建 API 客户端
func NewClient(cfg *config.APIConfig) *Client {
	return NewClientWithLimiter(cfg, ratelimit.NewIntervalLimiter(time.Duration(cfg.Delay)*time.Second))
}

// NewClientWithLimiter 创建带自定义节流器的客户端（测试用）
func NewClientWithLimiter(cfg *config.APIConfig, limiter ratelimit.Limiter) *Client {
	client := resty.New()
	client.SetTimeout(time.Duration(cfg.Timeout) * time.Second)
	client.SetHeaders(map[string]string{
		"Accept":     "application/json",
		"User-Agent": "XxvnCrawler/1.0 Go",
	})

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: client,
		retries:    cfg.Retries,
		limiter:    limiter,
	}
}

// MoviesPage 获取列表页
func (c *Client) MoviesPage(page int) (*Envelope, error) {
	return c.Request("phim-moi-cap-nhat", map[string]string{"page": strconv.Itoa(page)})
}

// MovieDetail 按 slug 获取电影详情
func (c *Client) MovieDetail(slug string) (*Envelope, error) {
	return c.Request("phim/"+slug, nil)
}

// Request 发送 GET 请求，失败时在重试预算内重试
// 传输错误、非 200 状态码、JSON 解析失败、status != true 一律视为可重试；
// 成功返回前执行固定间隔等待，为下一次调用限速
func (c *Client) Request(endpoint string, query map[string]string) (*Envelope, error) {
	url := c.baseURL + "/" + endpoint
	var lastErr error

	for attempt := 0; attempt < c.retries; attempt++ {
		// 首次尝试不退避，之后按次数线性退避
		c.limiter.Backoff(attempt)

		req := c.httpClient.R()
		if len(query) > 0 {
			req.SetQueryParams(query)
		}

		resp, err := req.Get(url)
		if err != nil {
			logger.Error().Err(err).Str("endpoint", endpoint).Int("attempt", attempt).Msg("API 请求异常")
			lastErr = err
			continue
		}

		if resp.StatusCode() != http.StatusOK {
			logger.Warn().Int("status", resp.StatusCode()).Str("endpoint", endpoint).Int("attempt", attempt).Msg("API 请求失败")
			lastErr = fmt.Errorf("状态码 %d", resp.StatusCode())
			continue
		}

		var env Envelope
		if err := json.Unmarshal(resp.Body(), &env); err != nil {
			logger.Warn().Err(err).Str("endpoint", endpoint).Int("attempt", attempt).Msg("API 响应解析失败")
			lastErr = err
			continue
		}

		if !env.Status {
			if env.Msg != "" {
				logger.Error().Str("msg", env.Msg).Str("endpoint", endpoint).Msg("API 返回错误")
			}
			lastErr = fmt.Errorf("上游返回 status=false")
			continue
		}

		// 成功后固定间隔等待，为下一次调用限速
		c.limiter.Wait()
		return &env, nil
	}

	return nil, &Error{
		Retryable: true,
		Msg:       fmt.Sprintf("重试 %d 次后放弃: %s", c.retries, endpoint),
		Err:       lastErr,
	}
}
