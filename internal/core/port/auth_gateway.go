package port

import (
	"context"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
)

type AuthGatewayPort interface {
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Register(ctx context.Context, name, email, password, role string) (domain.RegisterResult, error)
}
