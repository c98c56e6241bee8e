package services

import (
	"context"

	"github.com/shreyasharma003/fitplanhub/internal/models"
)

type followLister interface {
	ListTrainerIDs(ctx context.Context, userID int64) ([]int64, error)
}

type subscriptionLister interface {
	ListPlanIDs(ctx context.Context, userID int64) ([]int64, error)
}

type planLister interface {
	ListByTrainerID(ctx context.Context, trainerID int64) ([]models.FitnessPlan, error)
	ListAll(ctx context.Context) ([]models.FitnessPlan, error)
}

// FeedItem is a plan from a followed trainer, flagged when the user already
// bought it.
type FeedItem struct {
	models.FitnessPlan
	Purchased bool
}

type FeedService struct {
	followRepo       followLister
	subscriptionRepo subscriptionLister
	planRepo         planLister
}

func NewFeedService(followRepo followLister, subscriptionRepo subscriptionLister, planRepo planLister) *FeedService {
	return &FeedService{
		followRepo:       followRepo,
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
	}
}

// GetUserFeed concatenates each followed trainer's plans, newest first within
// a trainer, trainers in follow order. No cross-trainer re-sort.
func (s *FeedService) GetUserFeed(ctx context.Context, userID int64) ([]FeedItem, error) {
	trainerIDs, err := s.followRepo.ListTrainerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(trainerIDs) == 0 {
		return []FeedItem{}, nil
	}

	subscribedPlanIDs, err := s.subscriptionRepo.ListPlanIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	purchased := make(map[int64]bool, len(subscribedPlanIDs))
	for _, planID := range subscribedPlanIDs {
		purchased[planID] = true
	}

	feed := make([]FeedItem, 0)
	for _, trainerID := range trainerIDs {
		plans, err := s.planRepo.ListByTrainerID(ctx, trainerID)
		if err != nil {
			return nil, err
		}
		for _, plan := range plans {
			feed = append(feed, FeedItem{FitnessPlan: plan, Purchased: purchased[plan.ID]})
		}
	}
	return feed, nil
}

func (s *FeedService) GetAllPlans(ctx context.Context) ([]models.FitnessPlan, error) {
	return s.planRepo.ListAll(ctx)
}
