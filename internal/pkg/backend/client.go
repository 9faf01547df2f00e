package backend

import (
	"context"
	log "log/slog"
	"net/http"
	"net/url"
	"time"

	"Quill/internal/api/config"
	"Quill/internal/pkg/consts"
	"Quill/internal/pkg/logger"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// SessionClearer 401 时整体清除触发请求的会话
type SessionClearer interface {
	Clear(ctx context.Context, sid string) error
}

// Client 对内容后端的唯一出站通道。应用启动时构造一次，逐层注入，
// 每个请求从 Context 取当前会话的 token 并附加 Bearer 凭据。
type Client struct {
	http     *resty.Client
	sessions SessionClearer
}

func New(cfg config.BackendConfig, sessions SessionClearer) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetHeader("Content-Type", "application/json").
		SetTransport(&logger.BackendTransport{Transport: http.DefaultTransport})

	c := &Client{http: httpClient, sessions: sessions}

	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token, ok := req.Context().Value(consts.CtxSessionToken).(string); ok && token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	})

	httpClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == http.StatusUnauthorized {
			c.expireSession(resp.Request.Context())
			return ErrSessionExpired
		}
		if resp.IsError() {
			return normalize(resp.StatusCode(), resp.Body())
		}
		return nil
	})

	return c
}

// expireSession 全局副作用：与触发调用方无关，一律整体清除会话
func (c *Client) expireSession(ctx context.Context) {
	sid, ok := ctx.Value(consts.CtxSessionID).(string)
	if !ok || sid == "" || c.sessions == nil {
		return
	}
	if err := c.sessions.Clear(ctx, sid); err != nil {
		log.ErrorContext(ctx, "failed to clear expired session", "err", err)
	}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if out != nil {
		req.SetResult(out)
	}
	_, err := req.Get(path)
	return c.finish(ctx, err)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	_, err := req.Post(path)
	return c.finish(ctx, err)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	_, err := req.Put(path)
	return c.finish(ctx, err)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.http.R().SetContext(ctx).Delete(path)
	return c.finish(ctx, err)
}

// finish 把传输层失败也收敛到统一的错误形态
func (c *Client) finish(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrSessionExpired) {
		return ErrSessionExpired
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	log.ErrorContext(ctx, "backend transport failure", "err", errors.Wrap(err, "backend request failed"))
	return genericError()
}
