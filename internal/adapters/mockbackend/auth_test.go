package mockbackend

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/adapters/apiclient"
)

func postJSON(t *testing.T, b *Backend, endpoint string, body any) (json.RawMessage, error) {
	t.Helper()
	return b.Respond(context.Background(), endpoint, apiclient.RequestOptions{
		Method: http.MethodPost,
		Body:   body,
	})
}

func TestLoginSuccess(t *testing.T) {
	data, err := postJSON(t, newTestBackend(), "/auth/login", map[string]string{
		"email":    "ana.maria@example.com",
		"password": "parola123",
	})
	if err != nil {
		t.Fatalf("login error = %v", err)
	}

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID    int64  `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("unmarshal login response: %v", err)
	}

	if !strings.HasPrefix(resp.Token, "mock_jwt_token_") {
		t.Errorf("token = %q; want mock_jwt_token_ prefix", resp.Token)
	}
	// Имя синтезируется из локальной части адреса
	if resp.User.Name != "ana.maria" {
		t.Errorf("user.name = %q; want %q", resp.User.Name, "ana.maria")
	}
	if resp.User.Email != "ana.maria@example.com" {
		t.Errorf("user.email = %q", resp.User.Email)
	}
}

func TestLoginMissingCredentials(t *testing.T) {
	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing password", map[string]string{"email": "ana@example.com"}},
		{"missing email", map[string]string{"password": "parola123"}},
		{"empty body", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := postJSON(t, newTestBackend(), "/auth/login", tt.body)
			if err == nil {
				t.Fatal("login succeeded; want error")
			}
			if err.Error() != "Email și parolă sunt obligatorii" {
				t.Errorf("error = %q; want %q", err.Error(), "Email și parolă sunt obligatorii")
			}
		})
	}
}

// Порядок проверок фиксирован: обязательные поля, формат email, длина пароля
func TestRegisterValidationOrder(t *testing.T) {
	tests := []struct {
		name string
		body map[string]string
		want string
	}{
		{
			name: "all fields missing",
			body: map[string]string{},
			want: "Toate câmpurile sunt obligatorii",
		},
		{
			name: "bad email reported before short password",
			body: map[string]string{"name": "Ana", "email": "bad-email", "password": "123"},
			want: "Adresa de email nu este validă",
		},
		{
			name: "short password",
			body: map[string]string{"name": "Ana", "email": "ana@example.com", "password": "12345"},
			want: "Parola trebuie să aibă cel puțin 6 caractere",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := postJSON(t, newTestBackend(), "/auth/register", tt.body)
			if err == nil {
				t.Fatal("register succeeded; want error")
			}
			if err.Error() != tt.want {
				t.Errorf("error = %q; want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestRegisterSuccess(t *testing.T) {
	data, err := postJSON(t, newTestBackend(), "/auth/register", map[string]string{
		"name":     "Ana Dumitrescu",
		"email":    "ana@example.com",
		"password": "parola123",
	})
	if err != nil {
		t.Fatalf("register error = %v", err)
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		User    struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("unmarshal register response: %v", err)
	}

	if !resp.Success {
		t.Error("success = false; want true")
	}
	if resp.Message != "Cont creat cu succes" {
		t.Errorf("message = %q; want %q", resp.Message, "Cont creat cu succes")
	}
	if resp.User.Name != "Ana Dumitrescu" {
		t.Errorf("user.name = %q", resp.User.Name)
	}
}
