package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/contextkeys"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/port"
)

// ManageProfileUseCase - операции владельца аккаунта над собственным профилем
type ManageProfileUseCase struct {
	profile  port.ProfilePort
	sessions port.SessionStorePort
}

func NewManageProfileUseCase(profile port.ProfilePort, sessions port.SessionStorePort) *ManageProfileUseCase {
	return &ManageProfileUseCase{
		profile:  profile,
		sessions: sessions,
	}
}

func (uc *ManageProfileUseCase) Get(ctx context.Context) (domain.User, error) {
	if !uc.sessions.Current().IsAuthenticated() {
		return domain.User{}, domain.ErrNotAuthenticated
	}
	return uc.profile.GetProfile(ctx)
}

// Update сохраняет изменения и обновляет копию пользователя в сессии
func (uc *ManageProfileUseCase) Update(ctx context.Context, update domain.ProfileUpdate) (domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ManageProfile.Update",
	})

	session := uc.sessions.Current()
	if !session.IsAuthenticated() {
		return domain.User{}, domain.ErrNotAuthenticated
	}

	user, err := uc.profile.UpdateProfile(ctx, update)
	if err != nil {
		logger.Error("Failed to update profile", err, nil)
		return domain.User{}, err
	}

	session.User = user
	if err := uc.sessions.Set(session); err != nil {
		logger.Error("Failed to refresh stored user", err, nil)
		return domain.User{}, fmt.Errorf("could not refresh session: %w", err)
	}

	logger.Info("Profile updated", port.Fields{"user_id": user.ID})
	return user, nil
}

func (uc *ManageProfileUseCase) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	if !uc.sessions.Current().IsAuthenticated() {
		return domain.ErrNotAuthenticated
	}
	if currentPassword == "" || newPassword == "" {
		return errors.New("Parola curentă și parola nouă sunt obligatorii")
	}
	if len(newPassword) < 6 {
		return errors.New("Parola trebuie să aibă cel puțin 6 caractere")
	}
	return uc.profile.ChangePassword(ctx, currentPassword, newPassword)
}

// Deactivate выключает аккаунт и стирает локальную сессию
func (uc *ManageProfileUseCase) Deactivate(ctx context.Context) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ManageProfile.Deactivate",
	})

	if !uc.sessions.Current().IsAuthenticated() {
		return domain.ErrNotAuthenticated
	}

	if err := uc.profile.DeactivateAccount(ctx); err != nil {
		logger.Error("Failed to deactivate account", err, nil)
		return err
	}

	if err := uc.sessions.Clear(); err != nil {
		logger.Error("Failed to clear session after deactivation", err, nil)
		return err
	}

	logger.Info("Account deactivated, session cleared", nil)
	return nil
}
