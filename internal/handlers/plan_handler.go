package handlers

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shreyasharma003/fitplanhub/internal/models"
	"github.com/shreyasharma003/fitplanhub/internal/services"
)

const createdAtLayout = "2006-01-02 15:04"

type planDetailsProvider interface {
	GetPlanDetails(
		ctx context.Context,
		planID, callerID int64,
		callerRole string,
	) (*models.FitnessPlan, services.PlanAccess, error)
}

// planFullResponse is the projection shown to the owning trainer and to
// subscribers.
type planFullResponse struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"duration_days"`
	TrainerID    int64   `json:"trainer_id"`
	TrainerName  string  `json:"trainer_name"`
	CreatedAt    string  `json:"created_at"`
}

// planPreviewResponse deliberately omits description and duration.
type planPreviewResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	TrainerID   int64   `json:"trainer_id"`
	TrainerName string  `json:"trainer_name"`
}

type PlanHandler struct {
	service planDetailsProvider
}

func NewPlanHandler(service planDetailsProvider) *PlanHandler {
	return &PlanHandler{service: service}
}

// GetPlanDetails serves GET /api/plans/:id. The caller may be anonymous;
// what comes back depends on ownership and subscription state.
func (h *PlanHandler) GetPlanDetails(c *fiber.Ctx) error {
	planID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || planID <= 0 {
		return respondError(c, fiber.StatusBadRequest, "Invalid plan id")
	}

	callerID, callerRole, _ := callerIdentity(c)

	plan, access, err := h.service.GetPlanDetails(c.Context(), planID, callerID, callerRole)
	if err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			return respondError(c, fiber.StatusNotFound, "Plan not found")
		}
		log.Printf("plan details: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "An error occurred")
	}

	var payload any
	if access.Full {
		payload = newPlanFullResponse(plan)
	} else {
		payload = newPlanPreviewResponse(plan)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"subscribed": access.Subscribed,
		"data":       payload,
	})
}

func newPlanFullResponse(plan *models.FitnessPlan) planFullResponse {
	return planFullResponse{
		ID:           plan.ID,
		Title:        plan.Title,
		Description:  plan.Description,
		Price:        plan.Price,
		DurationDays: plan.DurationDays,
		TrainerID:    plan.TrainerID,
		TrainerName:  plan.TrainerName,
		CreatedAt:    plan.CreatedAt.Format(createdAtLayout),
	}
}

func newPlanPreviewResponse(plan *models.FitnessPlan) planPreviewResponse {
	return planPreviewResponse{
		ID:          plan.ID,
		Title:       plan.Title,
		Price:       plan.Price,
		TrainerID:   plan.TrainerID,
		TrainerName: plan.TrainerName,
	}
}

func newPlanFullResponses(plans []models.FitnessPlan) []planFullResponse {
	responses := make([]planFullResponse, 0, len(plans))
	for i := range plans {
		responses = append(responses, newPlanFullResponse(&plans[i]))
	}
	return responses
}
