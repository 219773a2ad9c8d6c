package usecase

import (
	"context"
	"errors"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/contextkeys"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/port"
)

// PublishPropertyUseCase - публикация нового объявления владельцем
type PublishPropertyUseCase struct {
	properties port.PropertiesPort
	sessions   port.SessionStorePort
}

func NewPublishPropertyUseCase(properties port.PropertiesPort, sessions port.SessionStorePort) *PublishPropertyUseCase {
	return &PublishPropertyUseCase{
		properties: properties,
		sessions:   sessions,
	}
}

func (uc *PublishPropertyUseCase) Execute(ctx context.Context, draft domain.PropertyDraft) (domain.PropertyDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "PublishProperty",
	})

	session := uc.sessions.Current()
	if !session.IsAuthenticated() {
		return domain.PropertyDetails{}, domain.ErrNotAuthenticated
	}
	// Публиковать объявления могут только владельцы
	if session.User.Role != "" && session.User.Role != domain.ROLE_OWNER {
		return domain.PropertyDetails{}, errors.New("Doar proprietarii pot publica anunțuri")
	}
	if draft.Type != domain.TYPE_RENT && draft.Type != domain.TYPE_SALE {
		return domain.PropertyDetails{}, errors.New("Tipul anunțului trebuie să fie 'rent' sau 'sale'")
	}

	created, err := uc.properties.CreateProperty(ctx, draft)
	if err != nil {
		logger.Error("Failed to publish property", err, nil)
		return domain.PropertyDetails{}, err
	}

	logger.Info("Property published", port.Fields{"property_id": created.ID})
	return created, nil
}
