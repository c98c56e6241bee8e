package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shreyasharma003/fitplanhub/internal/models"
	"github.com/shreyasharma003/fitplanhub/internal/services"
)

type stubFollowManager struct {
	err        error
	trainerIDs []int64
}

func (s *stubFollowManager) Follow(_ context.Context, _, _ int64) error   { return s.err }
func (s *stubFollowManager) Unfollow(_ context.Context, _, _ int64) error { return s.err }
func (s *stubFollowManager) FollowedTrainerIDs(_ context.Context, _ int64) ([]int64, error) {
	return s.trainerIDs, s.err
}

type stubSubscriptionManager struct {
	err     error
	planIDs []int64
}

func (s *stubSubscriptionManager) Subscribe(_ context.Context, _, _ int64) error { return s.err }
func (s *stubSubscriptionManager) SubscribedPlanIDs(_ context.Context, _ int64) ([]int64, error) {
	return s.planIDs, s.err
}

type stubFeedProvider struct {
	feed  []services.FeedItem
	plans []models.FitnessPlan
	err   error
}

func (s *stubFeedProvider) GetUserFeed(_ context.Context, _ int64) ([]services.FeedItem, error) {
	return s.feed, s.err
}

func (s *stubFeedProvider) GetAllPlans(_ context.Context) ([]models.FitnessPlan, error) {
	return s.plans, s.err
}

type stubTrainerDirectory struct {
	summaries []services.TrainerSummary
	err       error
}

func (s *stubTrainerDirectory) ListTrainers(_ context.Context, _ int64) ([]services.TrainerSummary, error) {
	return s.summaries, s.err
}

func (s *stubTrainerDirectory) SearchTrainers(_ context.Context, _ string, _ int64) ([]services.TrainerSummary, error) {
	return s.summaries, s.err
}

type userTestDeps struct {
	follows       *stubFollowManager
	subscriptions *stubSubscriptionManager
	feed          *stubFeedProvider
	directory     *stubTrainerDirectory
}

func newUserTestApp(deps userTestDeps) *fiber.App {
	if deps.follows == nil {
		deps.follows = &stubFollowManager{}
	}
	if deps.subscriptions == nil {
		deps.subscriptions = &stubSubscriptionManager{}
	}
	if deps.feed == nil {
		deps.feed = &stubFeedProvider{}
	}
	if deps.directory == nil {
		deps.directory = &stubTrainerDirectory{}
	}
	handler := NewUserHandler(deps.follows, deps.subscriptions, deps.feed, deps.directory)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("caller_id", int64(7))
		c.Locals("role", models.RoleUser)
		return c.Next()
	})
	app.Post("/api/user/subscribe/:planId", handler.Subscribe)
	app.Post("/api/user/follow/:trainerId", handler.Follow)
	app.Delete("/api/user/unfollow/:trainerId", handler.Unfollow)
	app.Get("/api/user/following", handler.Following)
	app.Get("/api/user/subscriptions", handler.Subscriptions)
	app.Get("/api/user/feed", handler.Feed)
	app.Get("/api/user/trainers/search", handler.SearchTrainers)
	return app
}

func testRequest(t *testing.T, app *fiber.App, method, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestFollowDuplicateIsBadRequest(t *testing.T) {
	app := newUserTestApp(userTestDeps{
		follows: &stubFollowManager{err: services.ErrAlreadyFollowing},
	})

	resp := testRequest(t, app, http.MethodPost, "/api/user/follow/2")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := decodeEnvelope(t, resp)
	if body["message"] != "you are already following this trainer" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestUnfollowWithoutFollowIsBadRequest(t *testing.T) {
	app := newUserTestApp(userTestDeps{
		follows: &stubFollowManager{err: services.ErrNotFollowing},
	})

	resp := testRequest(t, app, http.MethodDelete, "/api/user/unfollow/2")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestSubscribeMissingPlanIsNotFound(t *testing.T) {
	app := newUserTestApp(userTestDeps{
		subscriptions: &stubSubscriptionManager{err: services.ErrPlanNotFound},
	})

	resp := testRequest(t, app, http.MethodPost, "/api/user/subscribe/999")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestSubscribeCreated(t *testing.T) {
	app := newUserTestApp(userTestDeps{})

	resp := testRequest(t, app, http.MethodPost, "/api/user/subscribe/10")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	body := decodeEnvelope(t, resp)
	if body["message"] != "Successfully subscribed to plan" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestFeedEmptyIsEmptyArray(t *testing.T) {
	app := newUserTestApp(userTestDeps{
		feed: &stubFeedProvider{feed: []services.FeedItem{}},
	})

	resp := testRequest(t, app, http.MethodGet, "/api/user/feed")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decodeEnvelope(t, resp)
	items, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("expected data to be an array, got %T", body["data"])
	}
	if len(items) != 0 {
		t.Fatalf("expected empty feed, got %d items", len(items))
	}
}

func TestFeedMarksPurchasedPlans(t *testing.T) {
	app := newUserTestApp(userTestDeps{
		feed: &stubFeedProvider{feed: []services.FeedItem{
			{FitnessPlan: *detailTestPlan(), Purchased: true},
			{FitnessPlan: *detailTestPlan(), Purchased: false},
		}},
	})

	resp := testRequest(t, app, http.MethodGet, "/api/user/feed")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decodeEnvelope(t, resp)
	items, ok := body["data"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("expected 2 feed items, got %v", body["data"])
	}
	first := items[0].(map[string]any)
	second := items[1].(map[string]any)
	if first["purchased"] != true {
		t.Fatalf("expected first item purchased, got %v", first["purchased"])
	}
	if second["purchased"] != false {
		t.Fatalf("expected second item not purchased, got %v", second["purchased"])
	}
	if _, hasDescription := first["description"]; !hasDescription {
		t.Fatal("feed items must carry full plan detail")
	}
}

func TestSearchTrainersRequiresKeyword(t *testing.T) {
	app := newUserTestApp(userTestDeps{})

	resp := testRequest(t, app, http.MethodGet, "/api/user/trainers/search")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	resp = testRequest(t, app, http.MethodGet, "/api/user/trainers/search?keyword=yoga")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
