package usecase

import (
	"context"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/contextkeys"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/port"
)

// MyVisitsUseCase - список и отмена собственных визитов покупателя
type MyVisitsUseCase struct {
	visits   port.VisitsPort
	sessions port.SessionStorePort
}

func NewMyVisitsUseCase(visits port.VisitsPort, sessions port.SessionStorePort) *MyVisitsUseCase {
	return &MyVisitsUseCase{
		visits:   visits,
		sessions: sessions,
	}
}

func (uc *MyVisitsUseCase) List(ctx context.Context) ([]domain.Visit, error) {
	if !uc.sessions.Current().IsAuthenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	return uc.visits.GetMyVisits(ctx)
}

// Cancel отменяет визит; право отмены проверяет backend (только создатель)
func (uc *MyVisitsUseCase) Cancel(ctx context.Context, visitID int64) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "MyVisits.Cancel",
		"visit_id": visitID,
	})

	if !uc.sessions.Current().IsAuthenticated() {
		return domain.ErrNotAuthenticated
	}

	if err := uc.visits.CancelVisit(ctx, visitID); err != nil {
		logger.Warn("Visit cancellation rejected", port.Fields{"error": err.Error()})
		return err
	}

	logger.Info("Visit cancelled", nil)
	return nil
}
