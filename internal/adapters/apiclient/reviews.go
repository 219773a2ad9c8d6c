package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
)

func (c *Client) CreateReview(ctx context.Context, draft domain.ReviewDraft) (domain.Review, error) {
	resp, err := c.request(ctx, "/reviews", RequestOptions{
		Method: http.MethodPost,
		Body:   draft,
	})
	if err != nil {
		return domain.Review{}, err
	}

	var dto reviewDTO
	if err := json.Unmarshal(resp.Data, &dto); err != nil {
		return domain.Review{}, fmt.Errorf("failed to decode review response: %w", err)
	}
	return dto.toDomain(), nil
}

func (c *Client) GetOwnerReviews(ctx context.Context, ownerID int64) (domain.OwnerRating, error) {
	resp, err := c.request(ctx, fmt.Sprintf("/reviews/owner/%d", ownerID), RequestOptions{})
	if err != nil {
		return domain.OwnerRating{}, err
	}

	var dto ownerRatingDTO
	if err := json.Unmarshal(resp.Data, &dto); err != nil {
		return domain.OwnerRating{}, fmt.Errorf("failed to decode owner rating: %w", err)
	}
	return dto.toDomain(), nil
}

func (c *Client) GetPropertyReviews(ctx context.Context, propertyID int64) ([]domain.Review, error) {
	resp, err := c.request(ctx, fmt.Sprintf("/reviews/property/%d", propertyID), RequestOptions{})
	if err != nil {
		return nil, err
	}

	var dtos []reviewDTO
	if err := json.Unmarshal(resp.Data, &dtos); err != nil {
		return nil, fmt.Errorf("failed to decode property reviews: %w", err)
	}

	reviews := make([]domain.Review, len(dtos))
	for i, dto := range dtos {
		reviews[i] = dto.toDomain()
	}
	return reviews, nil
}
