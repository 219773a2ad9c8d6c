package sessionstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
)

// Имена файлов повторяют два исторических ключа клиентского хранилища
const (
	tokenFileName = "auth_token"
	userFileName  = "user.json"
)

// FileStore хранит сессию (токен + пользователь) в двух файлах под одним
// каталогом. Все чтения и записи идут через этот объект; подписчики
// получают уведомление при каждом изменении.
type FileStore struct {
	dir string

	mu      sync.RWMutex
	current domain.Session
	subs    map[int]func(domain.Session)
	nextSub int
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session dir: %w", err)
	}

	store := &FileStore{
		dir:  dir,
		subs: make(map[int]func(domain.Session)),
	}

	if err := store.load(); err != nil {
		// Битые файлы сессии не фатальны: чистим оба и стартуем разлогиненными
		_ = store.removeFiles()
		store.current = domain.Session{}
	}

	return store, nil
}

// load восстанавливает сессию с диска; сессия валидна только целиком
func (s *FileStore) load() error {
	tokenBytes, err := os.ReadFile(filepath.Join(s.dir, tokenFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	userBytes, err := os.ReadFile(filepath.Join(s.dir, userFileName))
	if err != nil {
		return err
	}

	var user domain.User
	if err := json.Unmarshal(userBytes, &user); err != nil {
		return err
	}

	s.current = domain.Session{
		Token: strings.TrimSpace(string(tokenBytes)),
		User:  user,
	}
	return nil
}

func (s *FileStore) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set атомарно (с точки зрения читателей) сохраняет токен и пользователя
func (s *FileStore) Set(session domain.Session) error {
	userBytes, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	s.mu.Lock()
	if err := os.WriteFile(filepath.Join(s.dir, tokenFileName), []byte(session.Token), 0o600); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to write token file: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, userFileName), userBytes, 0o600); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to write user file: %w", err)
	}
	s.current = session
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, session)
	return nil
}

// Clear удаляет токен и пользователя вместе (logout, деактивация аккаунта)
func (s *FileStore) Clear() error {
	s.mu.Lock()
	err := s.removeFiles()
	s.current = domain.Session{}
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, domain.Session{})
	return err
}

// Subscribe регистрирует колбэк на изменения сессии и возвращает отписку
func (s *FileStore) Subscribe(fn func(domain.Session)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *FileStore) removeFiles() error {
	var firstErr error
	for _, name := range []string{tokenFileName, userFileName} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// snapshotSubs копирует список подписчиков, чтобы звать их без блокировки
func (s *FileStore) snapshotSubs() []func(domain.Session) {
	subs := make([]func(domain.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []func(domain.Session), session domain.Session) {
	for _, fn := range subs {
		fn(session)
	}
}
