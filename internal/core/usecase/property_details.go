package usecase

import (
	"context"
	"errors"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/contextkeys"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/port"
)

// PropertyView - все, что нужно странице объекта: сам объект и его отзывы
type PropertyView struct {
	Details domain.PropertyDetails
	Reviews []domain.Review
}

type PropertyDetailsUseCase struct {
	properties port.PropertiesPort
	reviews    port.ReviewsPort
}

func NewPropertyDetailsUseCase(properties port.PropertiesPort, reviews port.ReviewsPort) *PropertyDetailsUseCase {
	return &PropertyDetailsUseCase{
		properties: properties,
		reviews:    reviews,
	}
}

func (uc *PropertyDetailsUseCase) Execute(ctx context.Context, propertyID int64) (PropertyView, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "PropertyDetails",
		"property_id": propertyID,
	})

	details, err := uc.properties.GetPropertyDetails(ctx, propertyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Property not found", nil)
		} else {
			logger.Error("Failed to fetch property details", err, nil)
		}
		return PropertyView{}, err
	}

	// Отзывы не критичны для страницы: их отсутствие не прячет сам объект
	reviews, err := uc.reviews.GetPropertyReviews(ctx, propertyID)
	if err != nil {
		logger.Warn("Failed to fetch property reviews", port.Fields{"error": err.Error()})
		reviews = nil
	}

	return PropertyView{Details: details, Reviews: reviews}, nil
}
