package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
)

func (c *Client) GetProfile(ctx context.Context) (domain.User, error) {
	resp, err := c.request(ctx, "/profile", RequestOptions{})
	if err != nil {
		return domain.User{}, err
	}

	var dto userDTO
	if err := json.Unmarshal(resp.Data, &dto); err != nil {
		return domain.User{}, fmt.Errorf("failed to decode profile response: %w", err)
	}
	return dto.toDomain(), nil
}

func (c *Client) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.User, error) {
	resp, err := c.request(ctx, "/profile", RequestOptions{
		Method: http.MethodPut,
		Body: map[string]string{
			"name":          update.Name,
			"phone":         update.Phone,
			"date_of_birth": update.DateOfBirth,
			"description":   update.Description,
		},
	})
	if err != nil {
		return domain.User{}, err
	}

	var dto userDTO
	if err := json.Unmarshal(resp.Data, &dto); err != nil {
		return domain.User{}, fmt.Errorf("failed to decode profile response: %w", err)
	}
	return dto.toDomain(), nil
}

func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	_, err := c.request(ctx, "/profile/change-password", RequestOptions{
		Method: http.MethodPost,
		Body: map[string]string{
			"current_password": currentPassword,
			"new_password":     newPassword,
		},
	})
	return err
}

func (c *Client) DeactivateAccount(ctx context.Context) error {
	_, err := c.request(ctx, "/profile/deactivate", RequestOptions{
		Method: http.MethodPost,
	})
	return err
}
