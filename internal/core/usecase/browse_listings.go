package usecase

import (
	"context"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/contextkeys"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/port"
)

// BrowseListingsUseCase обслуживает главную страницу и страницу поиска
type BrowseListingsUseCase struct {
	listings port.ListingsPort
}

func NewBrowseListingsUseCase(listings port.ListingsPort) *BrowseListingsUseCase {
	return &BrowseListingsUseCase{listings: listings}
}

func (uc *BrowseListingsUseCase) Stats(ctx context.Context) (domain.Stats, error) {
	return uc.listings.GetStats(ctx)
}

func (uc *BrowseListingsUseCase) Search(ctx context.Context, filters domain.ListingFilters) (domain.ListingsPage, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "BrowseListings.Search",
	})

	page, err := uc.listings.GetListings(ctx, filters)
	if err != nil {
		logger.Error("Failed to fetch listings", err, nil)
		return domain.ListingsPage{}, err
	}

	// Подмена живых данных mock-ом больше не молчаливая: помечаем явно
	if page.Origin == domain.OriginFallback {
		logger.Warn("Showing fallback listings, backend unavailable", port.Fields{
			"total": page.Total,
		})
	}

	return page, nil
}
