package usecase

import (
	"context"
	"errors"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/contextkeys"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/port"
)

// ScheduleVisitUseCase - запись покупателя на просмотр объекта
type ScheduleVisitUseCase struct {
	visits   port.VisitsPort
	sessions port.SessionStorePort
}

func NewScheduleVisitUseCase(visits port.VisitsPort, sessions port.SessionStorePort) *ScheduleVisitUseCase {
	return &ScheduleVisitUseCase{
		visits:   visits,
		sessions: sessions,
	}
}

// Slots доступен и неавторизованным: календарь виден всем
func (uc *ScheduleVisitUseCase) Slots(ctx context.Context, propertyID int64, date string) (domain.DaySchedule, error) {
	if date == "" {
		return domain.DaySchedule{}, errors.New("Data vizitei este obligatorie")
	}
	return uc.visits.GetAvailableSlots(ctx, propertyID, date)
}

func (uc *ScheduleVisitUseCase) Book(ctx context.Context, req domain.VisitRequest) (domain.Visit, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "ScheduleVisit.Book",
		"property_id": req.PropertyID,
	})

	if !uc.sessions.Current().IsAuthenticated() {
		return domain.Visit{}, domain.ErrNotAuthenticated
	}
	if req.VisitDate == "" || req.VisitTime == "" {
		return domain.Visit{}, errors.New("Data și ora vizitei sunt obligatorii")
	}

	visit, err := uc.visits.CreateVisit(ctx, req)
	if err != nil {
		logger.Warn("Visit booking rejected", port.Fields{"error": err.Error()})
		return domain.Visit{}, err
	}

	logger.Info("Visit scheduled", port.Fields{"visit_id": visit.ID, "date": visit.VisitDate, "time": visit.VisitTime})
	return visit, nil
}
