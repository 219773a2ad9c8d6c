package mockbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/adapters/apiclient"
)

// Respond реализует apiclient.MockTransport: запрос прогоняется через тот же
// chi-роутер, что обслуживал бы настоящий HTTP, только без сети.
// Перед ответом выдерживается искусственная задержка, чтобы UI-потоки
// (спиннеры, отмена) вели себя как с живым backend-ом.
func (b *Backend) Respond(ctx context.Context, endpoint string, opts apiclient.RequestOptions) (json.RawMessage, error) {
	if b.delay > 0 {
		timer := time.NewTimer(b.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	req, err := b.buildRequest(ctx, endpoint, opts)
	if err != nil {
		return nil, err
	}

	rec := &responseRecorder{status: http.StatusOK}
	b.router.ServeHTTP(rec, req)

	if rec.status >= 400 {
		return nil, fmt.Errorf("%s", extractErrorMessage(rec.body.Bytes(), rec.status))
	}

	return json.RawMessage(rec.body.Bytes()), nil
}

func (b *Backend) buildRequest(ctx context.Context, endpoint string, opts apiclient.RequestOptions) (*http.Request, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	url := endpoint
	if query := apiclient.BuildQuery(opts.Params); query != "" {
		url = url + "?" + query
	}

	var body io.Reader
	switch v := opts.Body.(type) {
	case nil:
	case io.Reader:
		body = v
	case []byte:
		body = bytes.NewReader(v)
	case string:
		body = bytes.NewReader([]byte(v))
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode mock request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

// extractErrorMessage достает сообщение из тела ошибки mock-обработчика
func extractErrorMessage(body []byte, status int) string {
	var payload struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Detail != "" {
			return payload.Detail
		}
	}
	return fmt.Sprintf("mock backend error: status %d", status)
}

// responseRecorder - минимальный in-memory http.ResponseWriter
type responseRecorder struct {
	header http.Header
	body   bytes.Buffer
	status int
}

func (r *responseRecorder) Header() http.Header {
	if r.header == nil {
		r.header = make(http.Header)
	}
	return r.header
}

func (r *responseRecorder) Write(p []byte) (int, error) {
	return r.body.Write(p)
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
}
