package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
)

func TestPropertyDetailsWithReviews(t *testing.T) {
	properties := &stubProperties{details: domain.PropertyDetails{ID: 1, Title: "Apartament modern"}}
	reviews := &stubReviews{propertyReviews: []domain.Review{{ID: 901, Rating: 5}}}
	uc := NewPropertyDetailsUseCase(properties, reviews)

	view, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("Execute error = %v", err)
	}
	if view.Details.Title != "Apartament modern" {
		t.Errorf("Title = %q", view.Details.Title)
	}
	if len(view.Reviews) != 1 {
		t.Errorf("got %d reviews; want 1", len(view.Reviews))
	}
}

func TestPropertyDetailsNotFound(t *testing.T) {
	properties := &stubProperties{detailsErr: domain.ErrNotFound}
	uc := NewPropertyDetailsUseCase(properties, &stubReviews{})

	_, err := uc.Execute(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v; want ErrNotFound", err)
	}
}

// Недоступные отзывы не прячут сам объект
func TestPropertyDetailsReviewFailureIsNotFatal(t *testing.T) {
	properties := &stubProperties{details: domain.PropertyDetails{ID: 1}}
	reviews := &stubReviews{propertyErr: errors.New("reviews backend down")}
	uc := NewPropertyDetailsUseCase(properties, reviews)

	view, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("Execute error = %v; review failure must not be fatal", err)
	}
	if view.Reviews != nil {
		t.Errorf("Reviews = %v; want nil on review failure", view.Reviews)
	}
}
