package port

import (
	"context"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
)

type VisitsPort interface {
	GetAvailableSlots(ctx context.Context, propertyID int64, date string) (domain.DaySchedule, error)
	CreateVisit(ctx context.Context, req domain.VisitRequest) (domain.Visit, error)
	GetMyVisits(ctx context.Context) ([]domain.Visit, error)
	CancelVisit(ctx context.Context, visitID int64) error
}
