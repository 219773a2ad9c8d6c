package mockbackend

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/adapters/apiclient"
)

type ownerRatingResponse struct {
	OwnerID       int64          `json:"owner_id"`
	AverageRating float64        `json:"average_rating"`
	TotalReviews  int            `json:"total_reviews"`
	Reviews       []reviewRecord `json:"reviews"`
}

func fetchOwnerRating(t *testing.T, b *Backend, ownerID string) ownerRatingResponse {
	t.Helper()

	data, err := b.Respond(context.Background(), "/reviews/owner/"+ownerID, apiclient.RequestOptions{})
	if err != nil {
		t.Fatalf("Respond(owner reviews) error = %v", err)
	}

	var rating ownerRatingResponse
	if err := json.Unmarshal(data, &rating); err != nil {
		t.Fatalf("unmarshal rating: %v", err)
	}
	return rating
}

func TestOwnerReviewsAggregate(t *testing.T) {
	rating := fetchOwnerRating(t, newTestBackend(), "101")

	// Владелец 101 посеян с оценками 5 и 4
	if rating.TotalReviews != 2 {
		t.Fatalf("total_reviews = %d; want 2", rating.TotalReviews)
	}
	if rating.AverageRating != 4.5 {
		t.Errorf("average_rating = %v; want 4.5", rating.AverageRating)
	}
}

func TestOwnerReviewsNoReviews(t *testing.T) {
	rating := fetchOwnerRating(t, newTestBackend(), "106")

	if rating.TotalReviews != 0 {
		t.Errorf("total_reviews = %d; want 0", rating.TotalReviews)
	}
	if rating.AverageRating != 0 {
		t.Errorf("average_rating = %v; want 0", rating.AverageRating)
	}
	if rating.Reviews == nil {
		t.Error("reviews is null; want empty list")
	}
}

func TestCreateReview(t *testing.T) {
	b := newTestBackend()

	data, err := postJSON(t, b, "/reviews", map[string]any{
		"owner_id":    106,
		"property_id": 6,
		"rating":      5,
		"comment":     "Totul a decurs excelent",
	})
	if err != nil {
		t.Fatalf("create review error = %v", err)
	}

	var review reviewRecord
	if err := json.Unmarshal(data, &review); err != nil {
		t.Fatalf("unmarshal review: %v", err)
	}
	if review.PropertyTitle == "" {
		t.Error("property_title is empty; want denormalized title")
	}

	rating := fetchOwnerRating(t, b, "106")
	if rating.TotalReviews != 1 || rating.AverageRating != 5 {
		t.Errorf("rating after create = %+v", rating)
	}
}

func TestCreateReviewRatingBounds(t *testing.T) {
	for _, bad := range []int{0, 6, -1} {
		_, err := postJSON(t, newTestBackend(), "/reviews", map[string]any{
			"owner_id": 101, "property_id": 1, "rating": bad,
		})
		if err == nil || err.Error() != "Evaluarea trebuie să fie între 1 și 5" {
			t.Errorf("rating %d: error = %v; want bounds message", bad, err)
		}
	}
}

func TestPropertyReviews(t *testing.T) {
	data, err := newTestBackend().Respond(context.Background(), "/reviews/property/1", apiclient.RequestOptions{})
	if err != nil {
		t.Fatalf("Respond error = %v", err)
	}

	var reviews []reviewRecord
	if err := json.Unmarshal(data, &reviews); err != nil {
		t.Fatalf("unmarshal reviews: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("got %d reviews; want 2", len(reviews))
	}
	for _, review := range reviews {
		if review.PropertyID != 1 {
			t.Errorf("review %d has property_id %d", review.ID, review.PropertyID)
		}
	}
}
