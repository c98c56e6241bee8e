package services

import (
	"context"

	"github.com/shreyasharma003/fitplanhub/internal/models"
)

type trainerLister interface {
	List(ctx context.Context) ([]models.Trainer, error)
	Search(ctx context.Context, keyword string) ([]models.Trainer, error)
}

type followChecker interface {
	Exists(ctx context.Context, userID, trainerID int64) (bool, error)
}

// TrainerSummary is the directory projection of a trainer, relative to the
// browsing user.
type TrainerSummary struct {
	TrainerID       int64   `json:"trainer_id"`
	Name            string  `json:"name"`
	Specializations string  `json:"specializations"`
	Experience      int     `json:"experience"`
	Bio             *string `json:"bio,omitempty"`
	IsFollowing     bool    `json:"is_following"`
}

type TrainerDirectoryService struct {
	trainerRepo trainerLister
	followRepo  followChecker
}

func NewTrainerDirectoryService(trainerRepo trainerLister, followRepo followChecker) *TrainerDirectoryService {
	return &TrainerDirectoryService{trainerRepo: trainerRepo, followRepo: followRepo}
}

func (s *TrainerDirectoryService) ListTrainers(ctx context.Context, userID int64) ([]TrainerSummary, error) {
	trainers, err := s.trainerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, trainers, userID)
}

func (s *TrainerDirectoryService) SearchTrainers(
	ctx context.Context,
	keyword string,
	userID int64,
) ([]TrainerSummary, error) {
	trainers, err := s.trainerRepo.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, trainers, userID)
}

func (s *TrainerDirectoryService) summarize(
	ctx context.Context,
	trainers []models.Trainer,
	userID int64,
) ([]TrainerSummary, error) {
	summaries := make([]TrainerSummary, 0, len(trainers))
	for i := range trainers {
		trainer := trainers[i]
		following, err := s.followRepo.Exists(ctx, userID, trainer.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, TrainerSummary{
			TrainerID:       trainer.ID,
			Name:            trainer.FullName,
			Specializations: trainer.Specializations,
			Experience:      trainer.YearsOfExperience,
			Bio:             trainer.Bio,
			IsFollowing:     following,
		})
	}
	return summaries, nil
}
