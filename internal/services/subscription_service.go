package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shreyasharma003/fitplanhub/internal/models"
)

type subscriptionStore interface {
	Create(ctx context.Context, subscription *models.Subscription) error
	Exists(ctx context.Context, userID, planID int64) (bool, error)
	ListPlanIDs(ctx context.Context, userID int64) ([]int64, error)
}

type planReader interface {
	GetByID(ctx context.Context, planID int64) (*models.FitnessPlan, error)
}

type SubscriptionService struct {
	subscriptionRepo subscriptionStore
	userRepo         userReader
	planRepo         planReader
}

func NewSubscriptionService(
	subscriptionRepo subscriptionStore,
	userRepo userReader,
	planRepo planReader,
) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		planRepo:         planRepo,
	}
}

// Subscribe records a simulated purchase. No payment is processed.
func (s *SubscriptionService) Subscribe(ctx context.Context, userID, planID int64) error {
	exists, err := s.subscriptionRepo.Exists(ctx, userID, planID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadySubscribed
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	if _, err := s.planRepo.GetByID(ctx, planID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPlanNotFound
		}
		return err
	}

	subscription := &models.Subscription{UserID: userID, PlanID: planID}
	if err := s.subscriptionRepo.Create(ctx, subscription); err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadySubscribed
		}
		return err
	}
	return nil
}

func (s *SubscriptionService) SubscribedPlanIDs(ctx context.Context, userID int64) ([]int64, error) {
	return s.subscriptionRepo.ListPlanIDs(ctx, userID)
}