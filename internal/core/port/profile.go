package port

import (
	"context"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
)

type ProfilePort interface {
	GetProfile(ctx context.Context) (domain.User, error)
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.User, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
	DeactivateAccount(ctx context.Context) error
}
