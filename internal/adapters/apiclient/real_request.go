package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/contextkeys"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/port"
	"github.com/google/uuid"
)

// realRequest выполняет запрос к живому backend-у.
// Любая ошибка возвращается наверх, в request, который решает про fallback.
func (c *Client) realRequest(ctx context.Context, endpoint string, opts RequestOptions) (json.RawMessage, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ApiClient",
		"method":    "realRequest",
	})

	url := c.baseURL + endpoint
	if query := BuildQuery(opts.Params); query != "" {
		url = url + "?" + query
	}

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	body, contentType, err := encodeBody(method, opts.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	// Токен подставляется только если вызывающий не задал Authorization сам
	if token := c.session.Current().Token; token != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	// Заголовок для трассировки
	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID == "" {
		traceID = uuid.New().String()
	}
	req.Header.Set("X-Trace-ID", traceID)

	logger.Debug("Sending request to backend", port.Fields{"url": url, "http_method": method})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Failed to perform request to backend", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("Failed to read response body", err, nil)
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("%s", normalizeErrorBody(resp.StatusCode, bodyBytes))
		logger.Error("Received error response from backend", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	if !json.Valid(bodyBytes) {
		err := fmt.Errorf("backend returned malformed JSON body")
		logger.Error("Failed to decode response from backend", err, nil)
		return nil, err
	}

	logger.Debug("Successfully received response", port.Fields{"status_code": resp.StatusCode, "bytes": len(bodyBytes)})

	return json.RawMessage(bodyBytes), nil
}

// encodeBody сериализует тело запроса.
// Структурные значения превращаются в JSON; []byte и io.Reader проходят
// как есть (multipart и прочие бинарные формы формирует вызывающий).
func encodeBody(method string, body any) (io.Reader, string, error) {
	if body == nil || method == http.MethodGet {
		return nil, "", nil
	}

	switch b := body.(type) {
	case io.Reader:
		return b, "", nil
	case []byte:
		return bytes.NewReader(b), "", nil
	case string:
		return bytes.NewReader([]byte(b)), "application/json", nil
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(raw), "application/json", nil
	}
}
