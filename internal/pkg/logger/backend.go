package logger

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"time"
)

// BackendTransport 记录对内容后端的出站请求
type BackendTransport struct {
	Transport http.RoundTripper
}

func (t *BackendTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.Transport.RoundTrip(req)
	elapsed := time.Since(start)

	fields := []any{
		log.String("method", req.Method),
		log.String("url", req.URL.String()),
		log.Duration("latency", elapsed),
	}

	if err != nil {
		log.ErrorContext(req.Context(), "BACKEND_CALL_ERROR", append(fields, log.Any("err", err))...)
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var resBody []byte
		if resp.Body != nil {
			resBody, _ = io.ReadAll(resp.Body)
			resp.Body = io.NopCloser(bytes.NewBuffer(resBody))
		}

		limit := 1000
		resStr := string(resBody)
		if len(resStr) > limit {
			resStr = resStr[:limit] + "...[truncated]"
		}
		fields = append(fields, log.Int("status", resp.StatusCode), log.String("res_body", resStr))

		log.WarnContext(req.Context(), "BACKEND_CALL_FAIL", fields...)
		return resp, nil
	}

	fields = append(fields, log.Int("status", resp.StatusCode))
	if elapsed > 500*time.Millisecond {
		log.WarnContext(req.Context(), "BACKEND_CALL_SLOW", fields...)
	} else {
		log.InfoContext(req.Context(), "BACKEND_CALL", fields...)
	}

	return resp, nil
}
