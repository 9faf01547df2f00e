package middleware

import (
	"context"
	log "log/slog"

	"Quill/internal/model"
	"Quill/internal/pkg/consts"
	"Quill/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware 从 sid cookie 还原会话并注入 Context。
// 存储读取失败按未登录处理，不影响请求继续。
func SessionMiddleware(store session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(cookieName)
		if err != nil || sid == "" {
			c.Next()
			return
		}

		ctx := context.WithValue(c.Request.Context(), consts.CtxSessionID, sid)

		sess, err := store.Get(ctx, sid)
		if err != nil {
			log.WarnContext(ctx, "session load failed", "err", err)
		}
		if sess.Authenticated() {
			ctx = context.WithValue(ctx, consts.CtxSessionToken, sess.Token)
			c.Set(consts.CtxSessionUser, sess.User)
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// CurrentUser 当前登录用户，未登录为 nil
func CurrentUser(c *gin.Context) *model.User {
	if v, ok := c.Get(consts.CtxSessionUser); ok {
		if user, ok := v.(*model.User); ok {
			return user
		}
	}
	return nil
}
