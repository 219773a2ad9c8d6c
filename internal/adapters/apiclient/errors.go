package apiclient

import (
	"encoding/json"
	"fmt"
	"strings"
)

// errorBody - форма тела ошибки backend-а: {"detail": ...},
// где detail бывает строкой, объектом или списком ошибок валидации.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// validationError - один элемент списка ошибок валидации
type validationError struct {
	Loc []json.RawMessage `json:"loc"`
	Msg string            `json:"msg"`
}

// normalizeErrorBody превращает тело не-2xx ответа в человекочитаемое сообщение.
// Список ошибок валидации склеивается в "<путь поля>: <сообщение>" через запятую,
// объект сериализуется обратно в JSON, строка берется как есть.
func normalizeErrorBody(statusCode int, body []byte) string {
	fallback := fmt.Sprintf("HTTP error! status: %d", statusCode)

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.Detail) == 0 {
		if text := strings.TrimSpace(string(body)); text != "" && !json.Valid(body) {
			return text
		}
		return fallback
	}

	switch parsed.Detail[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(parsed.Detail, &items); err != nil {
			return fallback
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, renderValidationError(item))
		}
		return strings.Join(parts, ", ")
	case '{':
		return string(parsed.Detail)
	case '"':
		var detail string
		if err := json.Unmarshal(parsed.Detail, &detail); err != nil || detail == "" {
			return fallback
		}
		return detail
	default:
		return fallback
	}
}

// renderValidationError форматирует элемент detail-списка как "loc.loc: msg"
func renderValidationError(item json.RawMessage) string {
	var ve validationError
	if err := json.Unmarshal(item, &ve); err == nil && ve.Msg != "" {
		loc := make([]string, 0, len(ve.Loc))
		for _, part := range ve.Loc {
			var s string
			if err := json.Unmarshal(part, &s); err != nil {
				// элементы loc бывают и числами (индексы массива)
				s = string(part)
			}
			loc = append(loc, s)
		}
		field := "field"
		if len(loc) > 0 {
			field = strings.Join(loc, ".")
		}
		return fmt.Sprintf("%s: %s", field, ve.Msg)
	}

	var plain string
	if err := json.Unmarshal(item, &plain); err == nil {
		return plain
	}
	return string(item)
}
