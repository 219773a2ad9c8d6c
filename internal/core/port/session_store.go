package port

import "github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"

// SessionStorePort - единственный владелец сохраненной сессии (токен + пользователь).
// Раньше эти данные жили в "ambient" локальном хранилище и читались из
// десятка мест; теперь все проходит через один внедряемый объект.
type SessionStorePort interface {
	// Current возвращает текущую сессию; пустая сессия = не авторизован
	Current() domain.Session

	// Set атомарно сохраняет токен и пользователя
	Set(session domain.Session) error

	// Clear удаляет токен и пользователя вместе (logout / деактивация)
	Clear() error

	// Subscribe регистрирует колбэк на каждое изменение сессии.
	// Возвращает функцию отписки.
	Subscribe(fn func(domain.Session)) (unsubscribe func())
}
