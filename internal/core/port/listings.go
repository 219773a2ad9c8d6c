package port

import (
	"context"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
)

type ListingsPort interface {
	GetStats(ctx context.Context) (domain.Stats, error)
	GetListings(ctx context.Context, filters domain.ListingFilters) (domain.ListingsPage, error)
}
