package services

import (
	"context"
	"testing"

	"github.com/shreyasharma003/fitplanhub/internal/models"
)

type stubTrainerLister struct {
	trainers    []models.Trainer
	lastKeyword string
}

func (s *stubTrainerLister) List(_ context.Context) ([]models.Trainer, error) {
	return s.trainers, nil
}

func (s *stubTrainerLister) Search(_ context.Context, keyword string) ([]models.Trainer, error) {
	s.lastKeyword = keyword
	return s.trainers, nil
}

type stubFollowEdges struct {
	followed map[int64]bool
}

func (s *stubFollowEdges) Exists(_ context.Context, _, trainerID int64) (bool, error) {
	return s.followed[trainerID], nil
}

func directoryTrainers() []models.Trainer {
	return []models.Trainer{
		{ID: 1, FullName: "Alex Trainer", Specializations: "strength", YearsOfExperience: 8},
		{ID: 2, FullName: "Sam Coach", Specializations: "yoga", YearsOfExperience: 3},
	}
}

func TestListTrainersAnnotatesFollowedOnes(t *testing.T) {
	service := NewTrainerDirectoryService(
		&stubTrainerLister{trainers: directoryTrainers()},
		&stubFollowEdges{followed: map[int64]bool{2: true}},
	)

	summaries, err := service.ListTrainers(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].IsFollowing {
		t.Errorf("trainer %d should not be marked followed", summaries[0].TrainerID)
	}
	if !summaries[1].IsFollowing {
		t.Errorf("trainer %d should be marked followed", summaries[1].TrainerID)
	}
	if summaries[0].Name != "Alex Trainer" || summaries[0].Experience != 8 {
		t.Errorf("unexpected summary: %+v", summaries[0])
	}
}

func TestSearchTrainersForwardsKeyword(t *testing.T) {
	lister := &stubTrainerLister{trainers: directoryTrainers()[:1]}
	service := NewTrainerDirectoryService(lister, &stubFollowEdges{})

	summaries, err := service.SearchTrainers(context.Background(), "strength", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lister.lastKeyword != "strength" {
		t.Fatalf("expected keyword forwarded, got %q", lister.lastKeyword)
	}
	if len(summaries) != 1 || summaries[0].TrainerID != 1 {
		t.Fatalf("unexpected summaries: %+v", summaries)
	}
}

func TestListTrainersEmptyDirectory(t *testing.T) {
	service := NewTrainerDirectoryService(&stubTrainerLister{}, &stubFollowEdges{})

	summaries, err := service.ListTrainers(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summaries == nil || len(summaries) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", summaries)
	}
}
