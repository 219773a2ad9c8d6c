package port

import (
	"context"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
)

type ReviewsPort interface {
	CreateReview(ctx context.Context, draft domain.ReviewDraft) (domain.Review, error)
	GetOwnerReviews(ctx context.Context, ownerID int64) (domain.OwnerRating, error)
	GetPropertyReviews(ctx context.Context, propertyID int64) ([]domain.Review, error)
}
