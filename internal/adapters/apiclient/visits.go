package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
)

func (c *Client) GetAvailableSlots(ctx context.Context, propertyID int64, date string) (domain.DaySchedule, error) {
	resp, err := c.request(ctx, fmt.Sprintf("/visits/available/%d", propertyID), RequestOptions{
		Params: map[string]any{"date": date},
	})
	if err != nil {
		return domain.DaySchedule{}, err
	}

	var dto dayScheduleDTO
	if err := json.Unmarshal(resp.Data, &dto); err != nil {
		return domain.DaySchedule{}, fmt.Errorf("failed to decode schedule response: %w", err)
	}
	return dto.toDomain(), nil
}

func (c *Client) CreateVisit(ctx context.Context, req domain.VisitRequest) (domain.Visit, error) {
	resp, err := c.request(ctx, "/visits", RequestOptions{
		Method: http.MethodPost,
		Body:   req,
	})
	if err != nil {
		return domain.Visit{}, err
	}

	var dto visitDTO
	if err := json.Unmarshal(resp.Data, &dto); err != nil {
		return domain.Visit{}, fmt.Errorf("failed to decode visit response: %w", err)
	}
	return dto.toDomain(), nil
}

func (c *Client) GetMyVisits(ctx context.Context) ([]domain.Visit, error) {
	resp, err := c.request(ctx, "/visits/my-visits", RequestOptions{})
	if err != nil {
		return nil, err
	}

	var dtos []visitDTO
	if err := json.Unmarshal(resp.Data, &dtos); err != nil {
		return nil, fmt.Errorf("failed to decode visits response: %w", err)
	}

	visits := make([]domain.Visit, len(dtos))
	for i, dto := range dtos {
		visits[i] = dto.toDomain()
	}
	return visits, nil
}

func (c *Client) CancelVisit(ctx context.Context, visitID int64) error {
	_, err := c.request(ctx, fmt.Sprintf("/visits/%d", visitID), RequestOptions{
		Method: http.MethodDelete,
	})
	return err
}
