package advocate

import (
	"context"
	"errors"
	"fmt"
	"time"

	advocateRepo "quicklegal/database/repository/advocate"
	"quicklegal/models"

	"github.com/google/uuid"
)

// ErrNotFound marks a lookup of an unknown advocate profile.
var ErrNotFound = errors.New("advocate not found")

// RegisterInput carries a new advocate profile.
type RegisterInput struct {
	UserID          string
	Expertise       []string
	PracticeAreas   []string
	Languages       []string
	ConsultationFee float64
	Availability    []models.AvailabilityWindow
	Bio             string
	Address         string
}

// AdvocateService manages advocate profiles and their weekly availability.
type AdvocateService interface {
	Register(ctx context.Context, input RegisterInput) (*models.Advocate, error)
	GetByID(ctx context.Context, id string) (*models.Advocate, error)
	Search(ctx context.Context, filter advocateRepo.SearchFilter) ([]models.Advocate, int64, error)
	GetAvailability(ctx context.Context, id string) ([]models.AvailabilityWindow, error)
}

// DefaultAdvocateService implements AdvocateService.
type DefaultAdvocateService struct {
	Repo advocateRepo.AdvocateRepository
}

func (s *DefaultAdvocateService) Register(ctx context.Context, input RegisterInput) (*models.Advocate, error) {
	now := time.Now()
	adv := &models.Advocate{
		ID:              uuid.New().String(),
		UserID:          input.UserID,
		Expertise:       input.Expertise,
		PracticeAreas:   input.PracticeAreas,
		Languages:       input.Languages,
		ConsultationFee: input.ConsultationFee,
		Availability:    input.Availability,
		Bio:             input.Bio,
		Address:         input.Address,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Repo.Create(ctx, adv); err != nil {
		return nil, fmt.Errorf("advocate registration failed: %w", err)
	}
	return adv, nil
}

func (s *DefaultAdvocateService) GetByID(ctx context.Context, id string) (*models.Advocate, error) {
	adv, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if adv == nil {
		return nil, ErrNotFound
	}
	return adv, nil
}

func (s *DefaultAdvocateService) Search(ctx context.Context, filter advocateRepo.SearchFilter) ([]models.Advocate, int64, error) {
	return s.Repo.Search(ctx, filter)
}

func (s *DefaultAdvocateService) GetAvailability(ctx context.Context, id string) ([]models.AvailabilityWindow, error) {
	adv, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return adv.Availability, nil
}
