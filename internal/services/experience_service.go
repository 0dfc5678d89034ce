package services

import (
	"context"
	"time"

	"experio/internal/models"
	"experio/internal/repositories/interfaces"
	"experio/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExperienceService interface {
	ListExperiences(ctx context.Context, params *utils.PaginationParams) ([]*models.Experience, int64, error)
	GetExperience(ctx context.Context, id string) (*models.Experience, error)
	// GetExperienceSlots returns the experience's slots from now onward,
	// ordered by start time ascending.
	GetExperienceSlots(ctx context.Context, id string) ([]*models.Slot, error)
}

type experienceService struct {
	experienceRepo interfaces.ExperienceRepository
	slotRepo       interfaces.SlotRepository
	now            func() time.Time
}

func NewExperienceService(experienceRepo interfaces.ExperienceRepository, slotRepo interfaces.SlotRepository) ExperienceService {
	return &experienceService{
		experienceRepo: experienceRepo,
		slotRepo:       slotRepo,
		now:            time.Now,
	}
}

func (s *experienceService) ListExperiences(ctx context.Context, params *utils.PaginationParams) ([]*models.Experience, int64, error) {
	return s.experienceRepo.List(ctx, params)
}

func (s *experienceService) GetExperience(ctx context.Context, id string) (*models.Experience, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.NewNotFoundError("experience")
	}

	return s.experienceRepo.GetByID(ctx, objectID)
}

func (s *experienceService) GetExperienceSlots(ctx context.Context, id string) ([]*models.Slot, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.NewNotFoundError("experience")
	}

	return s.slotRepo.GetUpcomingByExperience(ctx, objectID, s.now())
}
