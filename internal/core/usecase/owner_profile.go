package usecase

import (
	"context"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/contextkeys"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/port"
)

// OwnerView - страница владельца: рейтинг с отзывами и его объявления
type OwnerView struct {
	Rating     domain.OwnerRating
	Properties []domain.PropertyDetails
}

type OwnerProfileUseCase struct {
	properties port.PropertiesPort
	reviews    port.ReviewsPort
}

func NewOwnerProfileUseCase(properties port.PropertiesPort, reviews port.ReviewsPort) *OwnerProfileUseCase {
	return &OwnerProfileUseCase{
		properties: properties,
		reviews:    reviews,
	}
}

func (uc *OwnerProfileUseCase) Execute(ctx context.Context, ownerID int64) (OwnerView, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "OwnerProfile",
		"owner_id": ownerID,
	})

	rating, err := uc.reviews.GetOwnerReviews(ctx, ownerID)
	if err != nil {
		logger.Error("Failed to fetch owner reviews", err, nil)
		return OwnerView{}, err
	}

	properties, err := uc.properties.GetOwnerProperties(ctx, ownerID)
	if err != nil {
		logger.Error("Failed to fetch owner properties", err, nil)
		return OwnerView{}, err
	}

	return OwnerView{Rating: rating, Properties: properties}, nil
}
