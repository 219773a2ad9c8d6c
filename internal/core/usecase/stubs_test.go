package usecase

import (
	"context"

	"github.com/AlbertUngureanu/TenanSeeMVP/internal/core/domain"
)

// Общие заглушки портов для тестов use case-ов

type stubSessionStore struct {
	session    domain.Session
	setCalls   int
	clearCalls int
	setErr     error
}

func (s *stubSessionStore) Current() domain.Session { return s.session }

func (s *stubSessionStore) Set(session domain.Session) error {
	s.setCalls++
	if s.setErr != nil {
		return s.setErr
	}
	s.session = session
	return nil
}

func (s *stubSessionStore) Clear() error {
	s.clearCalls++
	s.session = domain.Session{}
	return nil
}

func (s *stubSessionStore) Subscribe(fn func(domain.Session)) func() { return func() {} }

func authenticatedStore(role string) *stubSessionStore {
	return &stubSessionStore{session: domain.Session{
		Token: "mock_jwt_token_1",
		User:  domain.User{ID: 1, Name: "Ana", Email: "ana@example.com", Role: role},
	}}
}

type stubAuthGateway struct {
	session        domain.Session
	loginErr       error
	registerResult domain.RegisterResult
	registerErr    error
}

func (s *stubAuthGateway) Login(ctx context.Context, email, password string) (domain.Session, error) {
	if s.loginErr != nil {
		return domain.Session{}, s.loginErr
	}
	return s.session, nil
}

func (s *stubAuthGateway) Register(ctx context.Context, name, email, password, role string) (domain.RegisterResult, error) {
	if s.registerErr != nil {
		return domain.RegisterResult{}, s.registerErr
	}
	return s.registerResult, nil
}

type stubProperties struct {
	details    domain.PropertyDetails
	detailsErr error
	ownerProps []domain.PropertyDetails
	created    domain.PropertyDetails
	createErr  error
	createCall int
}

func (s *stubProperties) GetPropertyDetails(ctx context.Context, id int64) (domain.PropertyDetails, error) {
	if s.detailsErr != nil {
		return domain.PropertyDetails{}, s.detailsErr
	}
	return s.details, nil
}

func (s *stubProperties) GetOwnerProperties(ctx context.Context, ownerID int64) ([]domain.PropertyDetails, error) {
	return s.ownerProps, nil
}

func (s *stubProperties) CreateProperty(ctx context.Context, draft domain.PropertyDraft) (domain.PropertyDetails, error) {
	s.createCall++
	if s.createErr != nil {
		return domain.PropertyDetails{}, s.createErr
	}
	return s.created, nil
}

type stubReviews struct {
	review          domain.Review
	createErr       error
	ownerRating     domain.OwnerRating
	ownerErr        error
	propertyReviews []domain.Review
	propertyErr     error
}

func (s *stubReviews) CreateReview(ctx context.Context, draft domain.ReviewDraft) (domain.Review, error) {
	if s.createErr != nil {
		return domain.Review{}, s.createErr
	}
	return s.review, nil
}

func (s *stubReviews) GetOwnerReviews(ctx context.Context, ownerID int64) (domain.OwnerRating, error) {
	if s.ownerErr != nil {
		return domain.OwnerRating{}, s.ownerErr
	}
	return s.ownerRating, nil
}

func (s *stubReviews) GetPropertyReviews(ctx context.Context, propertyID int64) ([]domain.Review, error) {
	if s.propertyErr != nil {
		return nil, s.propertyErr
	}
	return s.propertyReviews, nil
}

type stubVisits struct {
	schedule   domain.DaySchedule
	visit      domain.Visit
	createErr  error
	myVisits   []domain.Visit
	cancelErr  error
	cancelCall int
}

func (s *stubVisits) GetAvailableSlots(ctx context.Context, propertyID int64, date string) (domain.DaySchedule, error) {
	return s.schedule, nil
}

func (s *stubVisits) CreateVisit(ctx context.Context, req domain.VisitRequest) (domain.Visit, error) {
	if s.createErr != nil {
		return domain.Visit{}, s.createErr
	}
	return s.visit, nil
}

func (s *stubVisits) GetMyVisits(ctx context.Context) ([]domain.Visit, error) {
	return s.myVisits, nil
}

func (s *stubVisits) CancelVisit(ctx context.Context, visitID int64) error {
	s.cancelCall++
	return s.cancelErr
}
