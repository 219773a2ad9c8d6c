package mockbackend

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Стандартный шаблон адреса электронной почты
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type credentialsDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleLogin проверяет наличие email и пароля и выдает свежий токен.
// Имя пользователя синтезируется из локальной части адреса.
func (b *Backend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds credentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Date de autentificare invalide")
		return
	}

	if creds.Email == "" || creds.Password == "" {
		WriteJSONError(w, http.StatusBadRequest, "Email și parolă sunt obligatorii")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"token": newMockToken(),
		"user": map[string]any{
			"id":    1,
			"name":  strings.SplitN(creds.Email, "@", 2)[0],
			"email": creds.Email,
		},
	})
}

type registrationDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// handleRegister валидирует данные регистрации.
// Порядок проверок фиксирован: обязательные поля, формат email, длина пароля.
func (b *Backend) handleRegister(w http.ResponseWriter, r *http.Request) {
	var userData registrationDTO
	if err := json.NewDecoder(r.Body).Decode(&userData); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Date de înregistrare invalide")
		return
	}

	if userData.Email == "" || userData.Password == "" || userData.Name == "" {
		WriteJSONError(w, http.StatusBadRequest, "Toate câmpurile sunt obligatorii")
		return
	}

	if !emailPattern.MatchString(userData.Email) {
		WriteJSONError(w, http.StatusBadRequest, "Adresa de email nu este validă")
		return
	}

	if len(userData.Password) < 6 {
		WriteJSONError(w, http.StatusBadRequest, "Parola trebuie să aibă cel puțin 6 caractere")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Cont creat cu succes",
		"user": map[string]any{
			"id":    rand.Intn(1000),
			"name":  userData.Name,
			"email": userData.Email,
		},
	})
}

// newMockToken выдает уникальный на каждый вызов токен на основе времени
func newMockToken() string {
	return "mock_jwt_token_" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}
