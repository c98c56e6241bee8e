package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shreyasharma003/fitplanhub/internal/models"
)

type planStore interface {
	Create(ctx context.Context, plan *models.FitnessPlan) error
	GetByID(ctx context.Context, planID int64) (*models.FitnessPlan, error)
	ListByTrainerID(ctx context.Context, trainerID int64) ([]models.FitnessPlan, error)
	Update(ctx context.Context, plan *models.FitnessPlan) error
	Delete(ctx context.Context, planID int64) error
}

type PlanInput struct {
	Title        string
	Description  string
	Price        float64
	DurationDays int
}

type TrainerPlanService struct {
	planRepo    planStore
	trainerRepo trainerReader
}

func NewTrainerPlanService(planRepo planStore, trainerRepo trainerReader) *TrainerPlanService {
	return &TrainerPlanService{planRepo: planRepo, trainerRepo: trainerRepo}
}

func (s *TrainerPlanService) CreatePlan(
	ctx context.Context,
	trainerID int64,
	input PlanInput,
) (*models.FitnessPlan, error) {
	if err := validatePlanInput(&input); err != nil {
		return nil, err
	}

	trainer, err := s.trainerRepo.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}

	plan := &models.FitnessPlan{
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		DurationDays: input.DurationDays,
		TrainerID:    trainer.ID,
		TrainerName:  trainer.FullName,
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *TrainerPlanService) TrainerPlans(ctx context.Context, trainerID int64) ([]models.FitnessPlan, error) {
	return s.planRepo.ListByTrainerID(ctx, trainerID)
}

// UpdatePlan mutates title, description, price and duration. The owner is
// immutable; a mismatch is ErrForbidden.
func (s *TrainerPlanService) UpdatePlan(
	ctx context.Context,
	trainerID, planID int64,
	input PlanInput,
) (*models.FitnessPlan, error) {
	if err := validatePlanInput(&input); err != nil {
		return nil, err
	}

	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if plan.TrainerID != trainerID {
		return nil, ErrForbidden
	}

	plan.Title = input.Title
	plan.Description = input.Description
	plan.Price = input.Price
	plan.DurationDays = input.DurationDays
	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *TrainerPlanService) DeletePlan(ctx context.Context, trainerID, planID int64) error {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPlanNotFound
		}
		return err
	}
	if plan.TrainerID != trainerID {
		return ErrForbidden
	}
	return s.planRepo.Delete(ctx, planID)
}

func validatePlanInput(input *PlanInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if input.Title == "" || input.Description == "" {
		return ErrInvalidInput
	}
	if input.Price < 0 || input.DurationDays < 1 {
		return ErrInvalidInput
	}
	return nil
}
