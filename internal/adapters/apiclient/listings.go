package apiclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
)

func (c *Client) GetStats(ctx context.Context) (domain.Stats, error) {
	resp, err := c.request(ctx, "/stats", RequestOptions{})
	if err != nil {
		return domain.Stats{}, err
	}

	var dto statsDTO
	if err := json.Unmarshal(resp.Data, &dto); err != nil {
		return domain.Stats{}, fmt.Errorf("failed to decode stats response: %w", err)
	}
	return dto.toDomain(), nil
}

func (c *Client) GetListings(ctx context.Context, filters domain.ListingFilters) (domain.ListingsPage, error) {
	params := map[string]any{
		"search":       filters.Search,
		"price":        filters.Price,
		"forSale":      filters.ForSale,
		"forRent":      filters.ForRent,
		"twoPlusRooms": filters.TwoPlusRooms,
	}

	resp, err := c.request(ctx, "/listings", RequestOptions{Params: params})
	if err != nil {
		return domain.ListingsPage{}, err
	}

	var dto listingsPageDTO
	if err := json.Unmarshal(resp.Data, &dto); err != nil {
		return domain.ListingsPage{}, fmt.Errorf("failed to decode listings response: %w", err)
	}

	page := domain.ListingsPage{
		Listings: make([]domain.ListingItem, len(dto.Listings)),
		Total:    dto.Total,
		Origin:   resp.Origin,
	}
	for i, item := range dto.Listings {
		page.Listings[i] = item.toDomain()
	}
	return page, nil
}
