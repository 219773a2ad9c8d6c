package mockbackend

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func (b *Backend) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OwnerID    int64  `json:"owner_id"`
		PropertyID int64  `json:"property_id"`
		VisitID    int64  `json:"visit_id"`
		Rating     int    `json:"rating"`
		Comment    string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Date de recenzie invalide")
		return
	}

	if req.Rating < 1 || req.Rating > 5 {
		WriteJSONError(w, http.StatusBadRequest, "Evaluarea trebuie să fie între 1 și 5")
		return
	}

	b.mu.Lock()
	review := reviewRecord{
		ID:         b.allocateID(),
		OwnerID:    req.OwnerID,
		BuyerID:    1,
		PropertyID: req.PropertyID,
		VisitID:    req.VisitID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		CreatedAt:  time.Now().UTC(),
		BuyerName:  "Utilizator Demo",
	}
	if property, ok := mockProperties[req.PropertyID]; ok {
		review.PropertyTitle = property.Title
	}
	b.reviews = append(b.reviews, review)
	b.mu.Unlock()

	RespondWithJSON(w, http.StatusOK, review)
}

// handleOwnerReviews возвращает отзывы владельца вместе со средним рейтингом
func (b *Backend) handleOwnerReviews(w http.ResponseWriter, r *http.Request) {
	ownerID, err := strconv.ParseInt(chi.URLParam(r, "ownerID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Identificator de proprietar invalid")
		return
	}

	b.mu.Lock()
	reviews := make([]reviewRecord, 0)
	sum := 0
	for _, review := range b.reviews {
		if review.OwnerID == ownerID {
			reviews = append(reviews, review)
			sum += review.Rating
		}
	}
	b.mu.Unlock()

	average := 0.0
	if len(reviews) > 0 {
		average = float64(sum) / float64(len(reviews))
	}

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"owner_id":       ownerID,
		"average_rating": average,
		"total_reviews":  len(reviews),
		"reviews":        reviews,
	})
}

func (b *Backend) handlePropertyReviews(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.ParseInt(chi.URLParam(r, "propertyID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Identificator de proprietate invalid")
		return
	}

	b.mu.Lock()
	reviews := make([]reviewRecord, 0)
	for _, review := range b.reviews {
		if review.PropertyID == propertyID {
			reviews = append(reviews, review)
		}
	}
	b.mu.Unlock()

	RespondWithJSON(w, http.StatusOK, reviews)
}
