package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shreyasharma003/fitplanhub/internal/models"
)

type stubSubscriptionStore struct {
	exists    bool
	createErr error
	planIDs   []int64
	created   *models.Subscription
}

func (s *stubSubscriptionStore) Create(_ context.Context, subscription *models.Subscription) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = subscription
	return nil
}

func (s *stubSubscriptionStore) Exists(_ context.Context, _, _ int64) (bool, error) {
	return s.exists, nil
}

func (s *stubSubscriptionStore) ListPlanIDs(_ context.Context, _ int64) ([]int64, error) {
	return s.planIDs, nil
}

func TestSubscribeCreatesEdge(t *testing.T) {
	store := &stubSubscriptionStore{}
	service := NewSubscriptionService(store, &stubUserReader{}, &stubPlanReader{plan: testPlan()})

	if err := service.Subscribe(context.Background(), 1, 10); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if store.created == nil || store.created.UserID != 1 || store.created.PlanID != 10 {
		t.Fatalf("unexpected edge: %+v", store.created)
	}
}

func TestSubscribeTwiceFails(t *testing.T) {
	service := NewSubscriptionService(
		&stubSubscriptionStore{exists: true},
		&stubUserReader{},
		&stubPlanReader{plan: testPlan()},
	)

	if err := service.Subscribe(context.Background(), 1, 10); !errors.Is(err, ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}
}

func TestSubscribeMissingPlan(t *testing.T) {
	service := NewSubscriptionService(
		&stubSubscriptionStore{},
		&stubUserReader{},
		&stubPlanReader{err: pgx.ErrNoRows},
	)

	if err := service.Subscribe(context.Background(), 1, 10); !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestSubscribeLosingConstraintRaceMapsToAlreadySubscribed(t *testing.T) {
	service := NewSubscriptionService(
		&stubSubscriptionStore{createErr: &pgconn.PgError{Code: "23505"}},
		&stubUserReader{},
		&stubPlanReader{plan: testPlan()},
	)

	if err := service.Subscribe(context.Background(), 1, 10); !errors.Is(err, ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed on unique violation, got %v", err)
	}
}
