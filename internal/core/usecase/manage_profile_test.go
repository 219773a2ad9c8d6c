package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
)

type stubProfile struct {
	user          domain.User
	updated       domain.User
	updateErr     error
	passwordErr   error
	deactivateErr error
}

func (s *stubProfile) GetProfile(ctx context.Context) (domain.User, error) { return s.user, nil }

func (s *stubProfile) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.User, error) {
	if s.updateErr != nil {
		return domain.User{}, s.updateErr
	}
	return s.updated, nil
}

func (s *stubProfile) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	return s.passwordErr
}

func (s *stubProfile) DeactivateAccount(ctx context.Context) error { return s.deactivateErr }

func TestProfileRequiresAuthentication(t *testing.T) {
	uc := NewManageProfileUseCase(&stubProfile{}, &stubSessionStore{})

	if _, err := uc.Get(context.Background()); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("Get error = %v; want ErrNotAuthenticated", err)
	}
	if _, err := uc.Update(context.Background(), domain.ProfileUpdate{}); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("Update error = %v; want ErrNotAuthenticated", err)
	}
	if err := uc.ChangePassword(context.Background(), "a", "b"); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("ChangePassword error = %v; want ErrNotAuthenticated", err)
	}
	if err := uc.Deactivate(context.Background()); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("Deactivate error = %v; want ErrNotAuthenticated", err)
	}
}

// Обновление профиля синхронизирует копию пользователя в сессии
func TestUpdateProfileRefreshesSession(t *testing.T) {
	store := authenticatedStore(domain.ROLE_BUYER)
	profile := &stubProfile{updated: domain.User{ID: 1, Name: "Ana Maria", Phone: "0722000000"}}
	uc := NewManageProfileUseCase(profile, store)

	user, err := uc.Update(context.Background(), domain.ProfileUpdate{Name: "Ana Maria", Phone: "0722000000"})
	if err != nil {
		t.Fatalf("Update error = %v", err)
	}
	if user.Name != "Ana Maria" {
		t.Errorf("Name = %q", user.Name)
	}
	if store.Current().User.Name != "Ana Maria" {
		t.Errorf("session user = %q; want refreshed name", store.Current().User.Name)
	}
	// Токен при обновлении профиля не меняется
	if store.Current().Token != "mock_jwt_token_1" {
		t.Errorf("session token = %q; must stay intact", store.Current().Token)
	}
}

func TestChangePasswordValidation(t *testing.T) {
	uc := NewManageProfileUseCase(&stubProfile{}, authenticatedStore(domain.ROLE_BUYER))

	tests := []struct {
		name     string
		current  string
		next     string
		want     string
	}{
		{"missing current", "", "parola123", "Parola curentă și parola nouă sunt obligatorii"},
		{"missing new", "vechea", "", "Parola curentă și parola nouă sunt obligatorii"},
		{"too short", "vechea", "12345", "Parola trebuie să aibă cel puțin 6 caractere"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.ChangePassword(context.Background(), tt.current, tt.next)
			if err == nil || err.Error() != tt.want {
				t.Errorf("error = %v; want %q", err, tt.want)
			}
		})
	}

	if err := uc.ChangePassword(context.Background(), "vechea", "parola123"); err != nil {
		t.Errorf("valid change error = %v", err)
	}
}

func TestDeactivateClearsSession(t *testing.T) {
	store := authenticatedStore(domain.ROLE_BUYER)
	uc := NewManageProfileUseCase(&stubProfile{}, store)

	if err := uc.Deactivate(context.Background()); err != nil {
		t.Fatalf("Deactivate error = %v", err)
	}
	if store.Current().IsAuthenticated() {
		t.Error("session survives account deactivation")
	}
}

func TestDeactivateBackendFailureKeepsSession(t *testing.T) {
	store := authenticatedStore(domain.ROLE_BUYER)
	uc := NewManageProfileUseCase(&stubProfile{deactivateErr: errors.New("backend down")}, store)

	if err := uc.Deactivate(context.Background()); err == nil {
		t.Fatal("Deactivate succeeded; want error")
	}
	if !store.Current().IsAuthenticated() {
		t.Error("session was cleared although deactivation failed")
	}
}
