package domain

import "errors"

// ErrNotFound возвращается, когда запрошенная сущность не существует
// (например, /properties/{id} с неизвестным id отвечает null).
var ErrNotFound = errors.New("entity not found")

// ErrNotAuthenticated возвращается, когда операция требует активной сессии
var ErrNotAuthenticated = errors.New("authentication required")
