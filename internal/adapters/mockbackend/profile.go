package mockbackend

import (
	"encoding/json"
	"net/http"
)

func (b *Backend) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, mockProfile)
}

// handleUpdateProfile накладывает присланные поля на демо-профиль
func (b *Backend) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var update struct {
		Name        string `json:"name"`
		Phone       string `json:"phone"`
		DateOfBirth string `json:"date_of_birth"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Date de profil invalide")
		return
	}

	profile := make(map[string]any, len(mockProfile))
	for k, v := range mockProfile {
		profile[k] = v
	}
	if update.Name != "" {
		profile["name"] = update.Name
	}
	if update.Phone != "" {
		profile["phone"] = update.Phone
	}
	if update.DateOfBirth != "" {
		profile["date_of_birth"] = update.DateOfBirth
	}
	if update.Description != "" {
		profile["profile_description"] = update.Description
	}

	RespondWithJSON(w, http.StatusOK, profile)
}

func (b *Backend) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Date invalide")
		return
	}

	if req.CurrentPassword == "" || req.NewPassword == "" {
		WriteJSONError(w, http.StatusBadRequest, "Parola curentă și parola nouă sunt obligatorii")
		return
	}
	if len(req.NewPassword) < 6 {
		WriteJSONError(w, http.StatusBadRequest, "Parola trebuie să aibă cel puțin 6 caractere")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Parola a fost schimbată cu succes",
	})
}

func (b *Backend) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Contul a fost dezactivat",
	})
}
