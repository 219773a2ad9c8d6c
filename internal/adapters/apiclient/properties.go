package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
)

func (c *Client) GetPropertyDetails(ctx context.Context, id int64) (domain.PropertyDetails, error) {
	resp, err := c.request(ctx, fmt.Sprintf("/properties/%d", id), RequestOptions{})
	if err != nil {
		return domain.PropertyDetails{}, err
	}

	// Неизвестный id backend (и mock) отвечает литералом null
	if bytes.Equal(bytes.TrimSpace(resp.Data), []byte("null")) {
		return domain.PropertyDetails{}, domain.ErrNotFound
	}

	var dto propertyDetailsDTO
	if err := json.Unmarshal(resp.Data, &dto); err != nil {
		return domain.PropertyDetails{}, fmt.Errorf("failed to decode property details: %w", err)
	}
	return dto.toDomain(), nil
}

func (c *Client) GetOwnerProperties(ctx context.Context, ownerID int64) ([]domain.PropertyDetails, error) {
	resp, err := c.request(ctx, fmt.Sprintf("/properties/owner/%d", ownerID), RequestOptions{})
	if err != nil {
		return nil, err
	}

	var dtos []propertyDetailsDTO
	if err := json.Unmarshal(resp.Data, &dtos); err != nil {
		return nil, fmt.Errorf("failed to decode owner properties: %w", err)
	}

	result := make([]domain.PropertyDetails, len(dtos))
	for i, dto := range dtos {
		result[i] = dto.toDomain()
	}
	return result, nil
}

func (c *Client) CreateProperty(ctx context.Context, draft domain.PropertyDraft) (domain.PropertyDetails, error) {
	resp, err := c.request(ctx, "/properties", RequestOptions{
		Method: http.MethodPost,
		Body:   draft,
	})
	if err != nil {
		return domain.PropertyDetails{}, err
	}

	var dto propertyDetailsDTO
	if err := json.Unmarshal(resp.Data, &dto); err != nil {
		return domain.PropertyDetails{}, fmt.Errorf("failed to decode created property: %w", err)
	}
	return dto.toDomain(), nil
}
