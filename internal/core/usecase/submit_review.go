package usecase

import (
	"context"
	"errors"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/contextkeys"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/port"
)

// SubmitReviewUseCase - публикация отзыва о владельце после визита
type SubmitReviewUseCase struct {
	reviews  port.ReviewsPort
	sessions port.SessionStorePort
}

func NewSubmitReviewUseCase(reviews port.ReviewsPort, sessions port.SessionStorePort) *SubmitReviewUseCase {
	return &SubmitReviewUseCase{
		reviews:  reviews,
		sessions: sessions,
	}
}

func (uc *SubmitReviewUseCase) Execute(ctx context.Context, draft domain.ReviewDraft) (domain.Review, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "SubmitReview",
		"owner_id": draft.OwnerID,
	})

	if !uc.sessions.Current().IsAuthenticated() {
		return domain.Review{}, domain.ErrNotAuthenticated
	}
	if draft.Rating < 1 || draft.Rating > 5 {
		return domain.Review{}, errors.New("Evaluarea trebuie să fie între 1 și 5")
	}

	review, err := uc.reviews.CreateReview(ctx, draft)
	if err != nil {
		logger.Warn("Review rejected", port.Fields{"error": err.Error()})
		return domain.Review{}, err
	}

	logger.Info("Review published", port.Fields{"review_id": review.ID, "rating": review.Rating})
	return review, nil
}
