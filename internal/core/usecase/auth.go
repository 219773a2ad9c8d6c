package usecase

import (
	"context"
	"fmt"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/contextkeys"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/port"
)

// AuthUseCase связывает шлюз аутентификации с хранилищем сессии:
// успешный вход сохраняет токен и пользователя, выход стирает их вместе.
type AuthUseCase struct {
	gateway  port.AuthGatewayPort
	sessions port.SessionStorePort
}

func NewAuthUseCase(gateway port.AuthGatewayPort, sessions port.SessionStorePort) *AuthUseCase {
	return &AuthUseCase{
		gateway:  gateway,
		sessions: sessions,
	}
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (domain.Session, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "Auth.Login",
	})

	session, err := uc.gateway.Login(ctx, email, password)
	if err != nil {
		logger.Warn("Login rejected", port.Fields{"error": err.Error()})
		return domain.Session{}, err
	}

	if err := uc.sessions.Set(session); err != nil {
		logger.Error("Failed to persist session", err, nil)
		return domain.Session{}, fmt.Errorf("could not persist session: %w", err)
	}

	logger.Info("User logged in", port.Fields{"user_id": session.User.ID})
	return session, nil
}

func (uc *AuthUseCase) Register(ctx context.Context, name, email, password, role string) (domain.RegisterResult, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "Auth.Register",
	})

	result, err := uc.gateway.Register(ctx, name, email, password, role)
	if err != nil {
		logger.Warn("Registration rejected", port.Fields{"error": err.Error()})
		return domain.RegisterResult{}, err
	}

	logger.Info("Account registered", port.Fields{"user_id": result.User.ID})
	return result, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "Auth.Logout",
	})

	if err := uc.sessions.Clear(); err != nil {
		logger.Error("Failed to clear session", err, nil)
		return err
	}
	logger.Info("Session cleared", nil)
	return nil
}
