package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Quill/internal/model"
	"Quill/internal/pkg/consts"
	"Quill/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSessionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const cookieName = "sid"

	store := session.NewMemoryStore()
	user := &model.User{ID: "u1", Name: "jane", Email: "jane@example.com"}
	err := store.Set(context.Background(), "sid-1", &session.Session{Token: "opaque-token", User: user}, time.Hour)
	assert.NoError(t, err)

	var (
		gotUser  *model.User
		gotToken string
		gotSid   string
	)

	r := gin.New()
	r.Use(SessionMiddleware(store, cookieName))
	r.GET("/probe", func(c *gin.Context) {
		gotUser = CurrentUser(c)
		gotToken, _ = c.Request.Context().Value(consts.CtxSessionToken).(string)
		gotSid, _ = c.Request.Context().Value(consts.CtxSessionID).(string)
		c.Status(http.StatusOK)
	})
	r.GET("/guarded", RequireLogin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	probe := func(cookie string) {
		gotUser, gotToken, gotSid = nil, "", ""
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: cookieName, Value: cookie})
		}
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	t.Run("restores the session from the cookie", func(t *testing.T) {
		probe("sid-1")
		assert.Equal(t, user, gotUser)
		assert.Equal(t, "opaque-token", gotToken)
		assert.Equal(t, "sid-1", gotSid)
	})

	t.Run("no cookie means anonymous", func(t *testing.T) {
		probe("")
		assert.Nil(t, gotUser)
		assert.Empty(t, gotToken)
		assert.Empty(t, gotSid)
	})

	t.Run("unknown sid stays anonymous but keeps the sid in context", func(t *testing.T) {
		probe("sid-unknown")
		assert.Nil(t, gotUser)
		assert.Empty(t, gotToken)
		assert.Equal(t, "sid-unknown", gotSid, "the 401 handler needs the sid to clear the store")
	})

	t.Run("guarded routes redirect anonymous visitors to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("guarded routes pass logged in visitors through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: "sid-1"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
