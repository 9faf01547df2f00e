package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"Quill/internal/api/config"
	"Quill/internal/pkg/consts"

	"github.com/stretchr/testify/assert"
)

type fakeClearer struct {
	cleared []string
}

func (f *fakeClearer) Clear(_ context.Context, sid string) error {
	f.cleared = append(f.cleared, sid)
	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *fakeClearer, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	clearer := &fakeClearer{}
	client := New(config.BackendConfig{BaseURL: srv.URL, Timeout: 5}, clearer)
	return client, clearer, srv.Close
}

func sessionContext(sid, token string) context.Context {
	ctx := context.WithValue(context.Background(), consts.CtxSessionID, sid)
	return context.WithValue(ctx, consts.CtxSessionToken, token)
}

func TestClient(t *testing.T) {
	t.Run("injects bearer credentials from context", func(t *testing.T) {
		var gotAuth string
		client, _, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ok":true}`))
		})
		defer closeFn()

		var out map[string]bool
		err := client.Get(sessionContext("sid-1", "tok-123"), "/posts", nil, &out)
		assert.NoError(t, err)
		assert.Equal(t, "Bearer tok-123", gotAuth)
	})

	t.Run("no credentials without a session", func(t *testing.T) {
		var gotAuth string
		client, _, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		})
		defer closeFn()

		err := client.Get(context.Background(), "/posts", nil, nil)
		assert.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("401 clears the session and signals expiry", func(t *testing.T) {
		client, clearer, closeFn := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		defer closeFn()

		err := client.Get(sessionContext("sid-1", "stale"), "/posts/drafts", nil, nil)
		assert.ErrorIs(t, err, ErrSessionExpired)
		assert.Equal(t, []string{"sid-1"}, clearer.cleared)
	})

	t.Run("401 without a session still signals expiry", func(t *testing.T) {
		client, clearer, closeFn := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		defer closeFn()

		err := client.Get(context.Background(), "/posts/drafts", nil, nil)
		assert.ErrorIs(t, err, ErrSessionExpired)
		assert.Empty(t, clearer.cleared)
	})

	t.Run("structured error payload is preserved", func(t *testing.T) {
		client, _, closeFn := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"status":422,"message":"Title is required","errors":[{"field":"title","message":"must not be blank"}]}`))
		})
		defer closeFn()

		err := client.Post(context.Background(), "/posts", map[string]string{}, nil)

		var apiErr *APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 422, apiErr.Status)
		assert.Equal(t, "Title is required", apiErr.Message)
		assert.Len(t, apiErr.Errors, 1)
		assert.Equal(t, "title", apiErr.Errors[0].Field)
	})

	t.Run("unstructured failure collapses to a generic error", func(t *testing.T) {
		client, _, closeFn := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("<html>tomcat stack trace</html>"))
		})
		defer closeFn()

		err := client.Get(context.Background(), "/categories", nil, nil)

		var apiErr *APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
		assert.Equal(t, "An unexpected error occurred", apiErr.Message)
	})

	t.Run("transport failure collapses to a generic error", func(t *testing.T) {
		client, _, closeFn := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {})
		closeFn() // 服务器直接关掉，模拟网络不可达

		err := client.Get(context.Background(), "/tags", nil, nil)

		var apiErr *APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "An unexpected error occurred", apiErr.Message)
	})
}

func TestNormalize(t *testing.T) {
	t.Run("missing message falls back to generic", func(t *testing.T) {
		got := normalize(http.StatusBadRequest, []byte(`{"foo":"bar"}`))
		assert.Equal(t, "An unexpected error occurred", got.Message)
	})

	t.Run("status filled from http status when absent", func(t *testing.T) {
		got := normalize(http.StatusConflict, []byte(`{"message":"Category name already exists"}`))
		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, "Category name already exists", got.Message)
	})
}
