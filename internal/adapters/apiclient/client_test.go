package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
)

type stubSessionStore struct {
	session domain.Session
}

func (s *stubSessionStore) Current() domain.Session { return s.session }

func (s *stubSessionStore) Set(session domain.Session) error {
	s.session = session
	return nil
}

func (s *stubSessionStore) Clear() error {
	s.session = domain.Session{}
	return nil
}

func (s *stubSessionStore) Subscribe(fn func(domain.Session)) func() { return func() {} }

type stubTransport struct {
	data  json.RawMessage
	err   error
	calls int
}

func (s *stubTransport) Respond(ctx context.Context, endpoint string, opts RequestOptions) (json.RawMessage, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

func TestRequestMockMode(t *testing.T) {
	mock := &stubTransport{data: json.RawMessage(`{"totalListings":1250}`)}
	client := NewClient(Config{UseRealBackend: false}, mock, &stubSessionStore{})

	resp, err := client.request(context.Background(), "/stats", RequestOptions{})
	if err != nil {
		t.Fatalf("request() error = %v", err)
	}
	if resp.Origin != domain.OriginMock {
		t.Errorf("Origin = %q; want %q", resp.Origin, domain.OriginMock)
	}
	if string(resp.Data) != `{"totalListings":1250}` {
		t.Errorf("Data = %s", resp.Data)
	}
}

func TestRequestLiveSuccess(t *testing.T) {
	var gotAuth, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"listings":[],"total":0}`))
	}))
	defer server.Close()

	mock := &stubTransport{data: json.RawMessage(`{}`)}
	session := &stubSessionStore{session: domain.Session{Token: "tok123", User: domain.User{ID: 1}}}
	client := NewClient(Config{BaseURL: server.URL, UseRealBackend: true}, mock, session)

	resp, err := client.request(context.Background(), "/listings", RequestOptions{
		Params: map[string]any{"forRent": true, "search": ""},
	})
	if err != nil {
		t.Fatalf("request() error = %v", err)
	}
	if resp.Origin != domain.OriginLive {
		t.Errorf("Origin = %q; want %q", resp.Origin, domain.OriginLive)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q; want %q", gotAuth, "Bearer tok123")
	}
	if gotQuery != "forRent=true" {
		t.Errorf("query = %q; want %q", gotQuery, "forRent=true")
	}
	if mock.calls != 0 {
		t.Errorf("mock transport was called %d times in live mode", mock.calls)
	}
}

func TestRequestNoTokenNoAuthHeader(t *testing.T) {
	var sawAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAuth = r.Header.Get("Authorization") != ""
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, UseRealBackend: true}, &stubTransport{}, &stubSessionStore{})
	if _, err := client.request(context.Background(), "/stats", RequestOptions{}); err != nil {
		t.Fatalf("request() error = %v", err)
	}
	if sawAuth {
		t.Error("Authorization header was sent without an active session")
	}
}

func TestRequestFallbackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "boom"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	mock := &stubTransport{data: json.RawMessage(`{"listings":[],"total":6}`)}
	client := NewClient(Config{BaseURL: server.URL, UseRealBackend: true}, mock, &stubSessionStore{})

	resp, err := client.request(context.Background(), "/listings", RequestOptions{})
	if err != nil {
		t.Fatalf("request() error = %v; want silent fallback", err)
	}
	if resp.Origin != domain.OriginFallback {
		t.Errorf("Origin = %q; want %q", resp.Origin, domain.OriginFallback)
	}
	if mock.calls != 1 {
		t.Errorf("mock transport calls = %d; want 1", mock.calls)
	}
	if string(resp.Data) != `{"listings":[],"total":6}` {
		t.Errorf("Data = %s; want mock payload", resp.Data)
	}
}

func TestRequestFallbackOnNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	mock := &stubTransport{data: json.RawMessage(`{"ok":true}`)}
	client := NewClient(Config{BaseURL: server.URL, UseRealBackend: true}, mock, &stubSessionStore{})

	resp, err := client.request(context.Background(), "/stats", RequestOptions{})
	if err != nil {
		t.Fatalf("request() error = %v; want silent fallback", err)
	}
	if resp.Origin != domain.OriginFallback {
		t.Errorf("Origin = %q; want %q", resp.Origin, domain.OriginFallback)
	}
}

func TestRequestFallbackOnMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	mock := &stubTransport{data: json.RawMessage(`{}`)}
	client := NewClient(Config{BaseURL: server.URL, UseRealBackend: true}, mock, &stubSessionStore{})

	resp, err := client.request(context.Background(), "/stats", RequestOptions{})
	if err != nil {
		t.Fatalf("request() error = %v; want silent fallback", err)
	}
	if resp.Origin != domain.OriginFallback {
		t.Errorf("Origin = %q; want %q", resp.Origin, domain.OriginFallback)
	}
}

func TestRequestCancelledContextDoesNotFallBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	mock := &stubTransport{data: json.RawMessage(`{}`)}
	client := NewClient(Config{BaseURL: server.URL, UseRealBackend: true}, mock, &stubSessionStore{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.request(ctx, "/stats", RequestOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("request() error = %v; want context.Canceled", err)
	}
	if mock.calls != 0 {
		t.Errorf("mock transport calls = %d; cancellation must not trigger fallback", mock.calls)
	}
}

func TestRequestMockErrorIsReturned(t *testing.T) {
	mock := &stubTransport{err: errors.New("Proprietatea nu a fost găsită")}
	client := NewClient(Config{UseRealBackend: false}, mock, &stubSessionStore{})

	_, err := client.request(context.Background(), "/properties/99", RequestOptions{})
	if err == nil || err.Error() != "Proprietatea nu a fost găsită" {
		t.Fatalf("request() error = %v; want mock error passed through", err)
	}
}
