package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
)

func (c *Client) Login(ctx context.Context, email, password string) (domain.Session, error) {
	resp, err := c.request(ctx, "/auth/login", RequestOptions{
		Method: http.MethodPost,
		Body: map[string]string{
			"email":    email,
			"password": password,
		},
	})
	if err != nil {
		return domain.Session{}, err
	}

	var dto loginResponseDTO
	if err := json.Unmarshal(resp.Data, &dto); err != nil {
		return domain.Session{}, fmt.Errorf("failed to decode login response: %w", err)
	}
	return domain.Session{Token: dto.Token, User: dto.User.toDomain()}, nil
}

func (c *Client) Register(ctx context.Context, name, email, password, role string) (domain.RegisterResult, error) {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}
	if role != "" {
		body["role"] = role
	}

	resp, err := c.request(ctx, "/auth/register", RequestOptions{
		Method: http.MethodPost,
		Body:   body,
	})
	if err != nil {
		return domain.RegisterResult{}, err
	}

	var dto registerResponseDTO
	if err := json.Unmarshal(resp.Data, &dto); err != nil {
		return domain.RegisterResult{}, fmt.Errorf("failed to decode register response: %w", err)
	}
	return domain.RegisterResult{
		Success: dto.Success,
		Message: dto.Message,
		User:    dto.User.toDomain(),
	}, nil
}
