package mockbackend

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handlePropertyDetails отвечает записью из таблицы или литералом null,
// если объекта с таким id нет (страница сама решает, что показать).
func (b *Backend) handlePropertyDetails(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "propertyID"), 10, 64)
	if err != nil {
		RespondWithJSON(w, http.StatusOK, nil)
		return
	}

	property, ok := mockProperties[id]
	if !ok {
		RespondWithJSON(w, http.StatusOK, nil)
		return
	}
	RespondWithJSON(w, http.StatusOK, property)
}

func (b *Backend) handleOwnerProperties(w http.ResponseWriter, r *http.Request) {
	ownerID, err := strconv.ParseInt(chi.URLParam(r, "ownerID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Identificator de proprietar invalid")
		return
	}

	result := make([]propertyRecord, 0, 2)
	for id := int64(1); id <= int64(len(mockProperties)); id++ {
		if property, ok := mockProperties[id]; ok && property.Owner.ID == ownerID {
			result = append(result, property)
		}
	}
	RespondWithJSON(w, http.StatusOK, result)
}

// handleCreateProperty валидирует объявление по JSON-схеме контракта
// и возвращает синтезированную запись с новым id.
func (b *Backend) handleCreateProperty(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Date de proprietate invalide")
		return
	}

	if err := ValidatePropertyDraft(payload); err != nil {
		WriteJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	b.mu.Lock()
	id := b.allocateID()
	b.mu.Unlock()

	str := func(key string) string {
		s, _ := payload[key].(string)
		return s
	}
	num := func(key string) float64 {
		f, _ := payload[key].(float64)
		return f
	}

	currency := str("price_currency")
	if currency == "" {
		currency = "RON"
	}
	period := str("price_period")
	if period == "" {
		period = "lună"
	}

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"id":           id,
		"title":        str("title"),
		"description":  str("description"),
		"address":      str("address"),
		"location":     str("location"),
		"monthly_cost": formatPrice(num("price"), currency, period, str("type")),
		"type":         str("type"),
		"rooms":        int(num("rooms")),
		"bathrooms":    int(num("bathrooms")),
		"surface":      num("surface"),
		"images":       []any{},
		"owner": map[string]any{
			"id":   1,
			"name": "Utilizator Demo",
		},
	})
}

// formatPrice собирает отображаемую цену в стиле остального набора данных
func formatPrice(price float64, currency, period, dealType string) string {
	formatted := strconv.FormatFloat(price, 'f', -1, 64) + " " + currency
	if dealType != "sale" && period != "" {
		formatted += "/" + period
	}
	return formatted
}
