package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shreyasharma003/fitplanhub/internal/models"
)

type stubFollowStore struct {
	exists     bool
	createErr  error
	deleted    int64
	trainerIDs []int64
	created    *models.Follow
}

func (s *stubFollowStore) Create(_ context.Context, follow *models.Follow) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = follow
	return nil
}

func (s *stubFollowStore) Delete(_ context.Context, _, _ int64) (int64, error) {
	return s.deleted, nil
}

func (s *stubFollowStore) Exists(_ context.Context, _, _ int64) (bool, error) {
	return s.exists, nil
}

func (s *stubFollowStore) ListTrainerIDs(_ context.Context, _ int64) ([]int64, error) {
	return s.trainerIDs, nil
}

type stubUserReader struct {
	err error
}

func (s *stubUserReader) GetByID(_ context.Context, id int64) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.User{ID: id, Role: models.RoleUser}, nil
}

type stubTrainerReader struct {
	trainer *models.Trainer
	err     error
}

func (s *stubTrainerReader) GetByID(_ context.Context, id int64) (*models.Trainer, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.trainer != nil {
		return s.trainer, nil
	}
	return &models.Trainer{ID: id, FullName: "Alex Trainer", Role: models.RoleTrainer}, nil
}

func TestFollowCreatesEdge(t *testing.T) {
	store := &stubFollowStore{}
	service := NewFollowService(store, &stubUserReader{}, &stubTrainerReader{})

	if err := service.Follow(context.Background(), 1, 2); err != nil {
		t.Fatalf("Follow: %v", err)
	}
	if store.created == nil || store.created.UserID != 1 || store.created.TrainerID != 2 {
		t.Fatalf("unexpected edge: %+v", store.created)
	}
}

func TestFollowTwiceFails(t *testing.T) {
	service := NewFollowService(&stubFollowStore{exists: true}, &stubUserReader{}, &stubTrainerReader{})

	if err := service.Follow(context.Background(), 1, 2); !errors.Is(err, ErrAlreadyFollowing) {
		t.Fatalf("expected ErrAlreadyFollowing, got %v", err)
	}
}

func TestFollowMissingTrainer(t *testing.T) {
	service := NewFollowService(&stubFollowStore{}, &stubUserReader{}, &stubTrainerReader{err: pgx.ErrNoRows})

	if err := service.Follow(context.Background(), 1, 2); !errors.Is(err, ErrTrainerNotFound) {
		t.Fatalf("expected ErrTrainerNotFound, got %v", err)
	}
}

func TestFollowMissingUser(t *testing.T) {
	service := NewFollowService(&stubFollowStore{}, &stubUserReader{err: pgx.ErrNoRows}, &stubTrainerReader{})

	if err := service.Follow(context.Background(), 1, 2); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFollowLosingConstraintRaceMapsToAlreadyFollowing(t *testing.T) {
	store := &stubFollowStore{createErr: &pgconn.PgError{Code: "23505"}}
	service := NewFollowService(store, &stubUserReader{}, &stubTrainerReader{})

	if err := service.Follow(context.Background(), 1, 2); !errors.Is(err, ErrAlreadyFollowing) {
		t.Fatalf("expected ErrAlreadyFollowing on unique violation, got %v", err)
	}
}

func TestUnfollowWithoutEdgeFails(t *testing.T) {
	service := NewFollowService(&stubFollowStore{deleted: 0}, &stubUserReader{}, &stubTrainerReader{})

	if err := service.Unfollow(context.Background(), 1, 2); !errors.Is(err, ErrNotFollowing) {
		t.Fatalf("expected ErrNotFollowing, got %v", err)
	}
}

func TestUnfollowRemovesEdge(t *testing.T) {
	service := NewFollowService(&stubFollowStore{deleted: 1}, &stubUserReader{}, &stubTrainerReader{})

	if err := service.Unfollow(context.Background(), 1, 2); err != nil {
		t.Fatalf("Unfollow: %v", err)
	}
}
