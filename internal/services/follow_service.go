package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shreyasharma003/fitplanhub/internal/models"
)

type followStore interface {
	Create(ctx context.Context, follow *models.Follow) error
	Delete(ctx context.Context, userID, trainerID int64) (int64, error)
	Exists(ctx context.Context, userID, trainerID int64) (bool, error)
	ListTrainerIDs(ctx context.Context, userID int64) ([]int64, error)
}

type userReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type trainerReader interface {
	GetByID(ctx context.Context, id int64) (*models.Trainer, error)
}

type FollowService struct {
	followRepo  followStore
	userRepo    userReader
	trainerRepo trainerReader
}

func NewFollowService(followRepo followStore, userRepo userReader, trainerRepo trainerReader) *FollowService {
	return &FollowService{
		followRepo:  followRepo,
		userRepo:    userRepo,
		trainerRepo: trainerRepo,
	}
}

func (s *FollowService) Follow(ctx context.Context, userID, trainerID int64) error {
	exists, err := s.followRepo.Exists(ctx, userID, trainerID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyFollowing
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	if _, err := s.trainerRepo.GetByID(ctx, trainerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTrainerNotFound
		}
		return err
	}

	follow := &models.Follow{UserID: userID, TrainerID: trainerID}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, userID, trainerID int64) error {
	deleted, err := s.followRepo.Delete(ctx, userID, trainerID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFollowing
	}
	return nil
}

func (s *FollowService) FollowedTrainerIDs(ctx context.Context, userID int64) ([]int64, error) {
	return s.followRepo.ListTrainerIDs(ctx, userID)
}