package apiclient

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/contextkeys"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/port"
)

// RequestOptions описывает один вызов API: метод, query-параметры,
// дополнительные заголовки и тело запроса.
type RequestOptions struct {
	Method  string // по умолчанию GET
	Params  map[string]any
	Headers map[string]string
	Body    any
}

// Response - конверт ответа. Origin явно сообщает, откуда пришли данные:
// живой backend, mock-режим разработки или аварийная подмена mock-данными.
type Response struct {
	Data   json.RawMessage
	Origin domain.Origin
}

// MockTransport - контракт встроенного mock-backend-а
type MockTransport interface {
	Respond(ctx context.Context, endpoint string, opts RequestOptions) (json.RawMessage, error)
}

// Client - единая точка всех сетевых вызовов приложения.
// Режим (живой backend или mock) выбирается один раз при создании
// и не пересматривается на каждый вызов.
type Client struct {
	baseURL    string
	useReal    bool
	httpClient *http.Client
	mock       MockTransport
	session    port.SessionStorePort
}

type Config struct {
	BaseURL        string
	UseRealBackend bool
	HTTPClient     *http.Client
}

func NewClient(cfg Config, mock MockTransport, session port.SessionStorePort) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		useReal:    cfg.UseRealBackend,
		httpClient: httpClient,
		mock:       mock,
		session:    session,
	}
}

// request выполняет вызов выбранным транспортом.
// В режиме живого backend-а ЛЮБАЯ ошибка (сеть, не-2xx статус, битое тело)
// не доходит до вызывающего: ответ один раз подменяется mock-данными,
// а подмена помечается Origin == OriginFallback. Повторных попыток нет.
func (c *Client) request(ctx context.Context, endpoint string, opts RequestOptions) (Response, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ApiClient",
		"endpoint":  endpoint,
	})

	if !c.useReal {
		logger.Debug("Using mock transport", nil)
		data, err := c.mock.Respond(ctx, endpoint, opts)
		if err != nil {
			return Response{}, err
		}
		return Response{Data: data, Origin: domain.OriginMock}, nil
	}

	data, err := c.realRequest(ctx, endpoint, opts)
	if err == nil {
		return Response{Data: data, Origin: domain.OriginLive}, nil
	}

	// Отмена контекста - это не сбой backend-а, подменять данные нельзя
	if ctx.Err() != nil {
		return Response{}, ctx.Err()
	}

	logger.Warn("Backend request failed, falling back to mock data", port.Fields{
		"error": err.Error(),
	})

	data, mockErr := c.mock.Respond(ctx, endpoint, opts)
	if mockErr != nil {
		return Response{}, mockErr
	}
	return Response{Data: data, Origin: domain.OriginFallback}, nil
}
