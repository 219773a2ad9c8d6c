package mockbackend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// handleAvailableSlots строит расписание просмотров на дату:
// получасовые интервалы с 09:00 до 15:30, занятые помечаются.
func (b *Backend) handleAvailableSlots(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.ParseInt(chi.URLParam(r, "propertyID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Identificator de proprietate invalid")
		return
	}
	if _, ok := mockProperties[propertyID]; !ok {
		WriteJSONError(w, http.StatusNotFound, "Proprietatea nu a fost găsită")
		return
	}

	date := r.URL.Query().Get("date")

	b.mu.Lock()
	booked := make(map[string]bool)
	for _, visit := range b.visits {
		if visit.PropertyID == propertyID && visit.VisitDate == date && visit.Status == "scheduled" {
			booked[visit.VisitTime] = true
		}
	}
	b.mu.Unlock()

	slots := make([]map[string]any, 0, 14)
	for hour := 9; hour < 16; hour++ {
		for _, minute := range []int{0, 30} {
			timeStr := fmt.Sprintf("%02d:%02d", hour, minute)
			slots = append(slots, map[string]any{
				"time":      timeStr,
				"available": !booked[timeStr],
			})
		}
	}

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"property_id": propertyID,
		"date":        date,
		"slots":       slots,
	})
}

func (b *Backend) handleCreateVisit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PropertyID int64  `json:"property_id"`
		VisitDate  string `json:"visit_date"`
		VisitTime  string `json:"visit_time"`
		Notes      string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Date de vizită invalide")
		return
	}

	property, ok := mockProperties[req.PropertyID]
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Proprietatea nu a fost găsită")
		return
	}
	if req.VisitDate == "" || req.VisitTime == "" {
		WriteJSONError(w, http.StatusBadRequest, "Data și ora vizitei sunt obligatorii")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, visit := range b.visits {
		if visit.PropertyID == req.PropertyID && visit.VisitDate == req.VisitDate &&
			visit.VisitTime == req.VisitTime && visit.Status == "scheduled" {
			WriteJSONError(w, http.StatusBadRequest, "Acest interval orar este deja rezervat")
			return
		}
	}

	visit := &visitRecord{
		ID:              b.allocateID(),
		PropertyID:      req.PropertyID,
		BuyerID:         1,
		VisitDate:       req.VisitDate,
		VisitTime:       req.VisitTime,
		Status:          "scheduled",
		Notes:           req.Notes,
		CreatedAt:       time.Now().UTC(),
		PropertyTitle:   property.Title,
		PropertyAddress: property.Address,
	}
	b.visits[visit.ID] = visit

	RespondWithJSON(w, http.StatusOK, visit)
}

func (b *Backend) handleMyVisits(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	visits := make([]*visitRecord, 0, len(b.visits))
	for id := int64(0); id <= b.nextID; id++ {
		if visit, ok := b.visits[id]; ok {
			visits = append(visits, visit)
		}
	}
	RespondWithJSON(w, http.StatusOK, visits)
}

func (b *Backend) handleCancelVisit(w http.ResponseWriter, r *http.Request) {
	visitID, err := strconv.ParseInt(chi.URLParam(r, "visitID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Identificator de vizită invalid")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	visit, ok := b.visits[visitID]
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Vizita nu a fost găsită")
		return
	}
	visit.Status = "cancelled"

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Vizita a fost anulată",
	})
}
