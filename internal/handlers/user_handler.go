package handlers

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shreyasharma003/fitplanhub/internal/models"
	"github.com/shreyasharma003/fitplanhub/internal/services"
)

type followManager interface {
	Follow(ctx context.Context, userID, trainerID int64) error
	Unfollow(ctx context.Context, userID, trainerID int64) error
	FollowedTrainerIDs(ctx context.Context, userID int64) ([]int64, error)
}

type subscriptionManager interface {
	Subscribe(ctx context.Context, userID, planID int64) error
	SubscribedPlanIDs(ctx context.Context, userID int64) ([]int64, error)
}

type feedProvider interface {
	GetUserFeed(ctx context.Context, userID int64) ([]services.FeedItem, error)
	GetAllPlans(ctx context.Context) ([]models.FitnessPlan, error)
}

type trainerDirectory interface {
	ListTrainers(ctx context.Context, userID int64) ([]services.TrainerSummary, error)
	SearchTrainers(ctx context.Context, keyword string, userID int64) ([]services.TrainerSummary, error)
}

type feedItemResponse struct {
	planFullResponse
	Purchased bool `json:"purchased"`
}

type UserHandler struct {
	followService       followManager
	subscriptionService subscriptionManager
	feedService         feedProvider
	directoryService    trainerDirectory
}

func NewUserHandler(
	followService followManager,
	subscriptionService subscriptionManager,
	feedService feedProvider,
	directoryService trainerDirectory,
) *UserHandler {
	return &UserHandler{
		followService:       followService,
		subscriptionService: subscriptionService,
		feedService:         feedService,
		directoryService:    directoryService,
	}
}

func (h *UserHandler) Subscribe(c *fiber.Ctx) error {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Authentication required")
	}
	planID, err := strconv.ParseInt(c.Params("planId"), 10, 64)
	if err != nil || planID <= 0 {
		return respondError(c, fiber.StatusBadRequest, "Invalid plan id")
	}

	if err := h.subscriptionService.Subscribe(c.Context(), userID, planID); err != nil {
		return mapUserError(c, err)
	}
	return respondMessage(c, fiber.StatusCreated, "Successfully subscribed to plan")
}

func (h *UserHandler) Follow(c *fiber.Ctx) error {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Authentication required")
	}
	trainerID, err := strconv.ParseInt(c.Params("trainerId"), 10, 64)
	if err != nil || trainerID <= 0 {
		return respondError(c, fiber.StatusBadRequest, "Invalid trainer id")
	}

	if err := h.followService.Follow(c.Context(), userID, trainerID); err != nil {
		return mapUserError(c, err)
	}
	return respondMessage(c, fiber.StatusCreated, "Successfully followed trainer")
}

func (h *UserHandler) Unfollow(c *fiber.Ctx) error {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Authentication required")
	}
	trainerID, err := strconv.ParseInt(c.Params("trainerId"), 10, 64)
	if err != nil || trainerID <= 0 {
		return respondError(c, fiber.StatusBadRequest, "Invalid trainer id")
	}

	if err := h.followService.Unfollow(c.Context(), userID, trainerID); err != nil {
		return mapUserError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Successfully unfollowed trainer")
}

func (h *UserHandler) Following(c *fiber.Ctx) error {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Authentication required")
	}

	trainerIDs, err := h.followService.FollowedTrainerIDs(c.Context(), userID)
	if err != nil {
		return mapUserError(c, err)
	}
	return respondData(c, fiber.StatusOK, trainerIDs)
}

func (h *UserHandler) Subscriptions(c *fiber.Ctx) error {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Authentication required")
	}

	planIDs, err := h.subscriptionService.SubscribedPlanIDs(c.Context(), userID)
	if err != nil {
		return mapUserError(c, err)
	}
	return respondData(c, fiber.StatusOK, planIDs)
}

func (h *UserHandler) Feed(c *fiber.Ctx) error {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Authentication required")
	}

	feed, err := h.feedService.GetUserFeed(c.Context(), userID)
	if err != nil {
		return mapUserError(c, err)
	}

	items := make([]feedItemResponse, 0, len(feed))
	for i := range feed {
		items = append(items, feedItemResponse{
			planFullResponse: newPlanFullResponse(&feed[i].FitnessPlan),
			Purchased:        feed[i].Purchased,
		})
	}
	return respondData(c, fiber.StatusOK, items)
}

// BrowsePlans lists every plan on the marketplace, full detail, for the
// logged-in user's browse page.
func (h *UserHandler) BrowsePlans(c *fiber.Ctx) error {
	if _, _, ok := callerIdentity(c); !ok {
		return respondError(c, fiber.StatusUnauthorized, "Authentication required")
	}

	plans, err := h.feedService.GetAllPlans(c.Context())
	if err != nil {
		return mapUserError(c, err)
	}
	return respondData(c, fiber.StatusOK, newPlanFullResponses(plans))
}

func (h *UserHandler) ListTrainers(c *fiber.Ctx) error {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Authentication required")
	}

	trainers, err := h.directoryService.ListTrainers(c.Context(), userID)
	if err != nil {
		return mapUserError(c, err)
	}
	return respondData(c, fiber.StatusOK, trainers)
}

func (h *UserHandler) SearchTrainers(c *fiber.Ctx) error {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Authentication required")
	}
	keyword := strings.TrimSpace(c.Query("keyword"))
	if keyword == "" {
		return respondError(c, fiber.StatusBadRequest, "keyword is required")
	}

	trainers, err := h.directoryService.SearchTrainers(c.Context(), keyword, userID)
	if err != nil {
		return mapUserError(c, err)
	}
	return respondData(c, fiber.StatusOK, trainers)
}

func mapUserError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrAlreadyFollowing),
		errors.Is(err, services.ErrNotFollowing),
		errors.Is(err, services.ErrAlreadySubscribed):
		return respondError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrTrainerNotFound),
		errors.Is(err, services.ErrPlanNotFound):
		return respondError(c, fiber.StatusNotFound, err.Error())
	default:
		log.Printf("user request: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "An error occurred")
	}
}
