package port

import (
	"context"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
)

type PropertiesPort interface {
	// GetPropertyDetails возвращает domain.ErrNotFound для неизвестного id
	GetPropertyDetails(ctx context.Context, id int64) (domain.PropertyDetails, error)
	GetOwnerProperties(ctx context.Context, ownerID int64) ([]domain.PropertyDetails, error)
	CreateProperty(ctx context.Context, draft domain.PropertyDraft) (domain.PropertyDetails, error)
}
