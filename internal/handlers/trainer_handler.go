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

type trainerPlanManager interface {
	CreatePlan(ctx context.Context, trainerID int64, input services.PlanInput) (*models.FitnessPlan, error)
	TrainerPlans(ctx context.Context, trainerID int64) ([]models.FitnessPlan, error)
	UpdatePlan(ctx context.Context, trainerID, planID int64, input services.PlanInput) (*models.FitnessPlan, error)
	DeletePlan(ctx context.Context, trainerID, planID int64) error
}

type fitnessPlanRequest struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Price        *float64 `json:"price" validate:"required,gte=0"`
	DurationDays *int     `json:"duration_days" validate:"required,gte=1"`
}

type TrainerHandler struct {
	service trainerPlanManager
}

func NewTrainerHandler(service trainerPlanManager) *TrainerHandler {
	return &TrainerHandler{service: service}
}

func (h *TrainerHandler) CreatePlan(c *fiber.Ctx) error {
	trainerID, _, ok := callerIdentity(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Authentication required")
	}

	var req fitnessPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if msg := validateStruct(req); msg != "" {
		return respondError(c, fiber.StatusBadRequest, msg)
	}

	plan, err := h.service.CreatePlan(c.Context(), trainerID, services.PlanInput{
		Title:        req.Title,
		Description:  req.Description,
		Price:        *req.Price,
		DurationDays: *req.DurationDays,
	})
	if err != nil {
		return mapTrainerPlanError(c, err)
	}

	return respondMessageData(c, fiber.StatusCreated, "Fitness plan created successfully", newPlanFullResponse(plan))
}

func (h *TrainerHandler) ListPlans(c *fiber.Ctx) error {
	trainerID, _, ok := callerIdentity(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Authentication required")
	}

	plans, err := h.service.TrainerPlans(c.Context(), trainerID)
	if err != nil {
		return mapTrainerPlanError(c, err)
	}
	return respondData(c, fiber.StatusOK, newPlanFullResponses(plans))
}

func (h *TrainerHandler) UpdatePlan(c *fiber.Ctx) error {
	trainerID, _, ok := callerIdentity(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Authentication required")
	}
	planID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || planID <= 0 {
		return respondError(c, fiber.StatusBadRequest, "Invalid plan id")
	}

	var req fitnessPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if msg := validateStruct(req); msg != "" {
		return respondError(c, fiber.StatusBadRequest, msg)
	}

	plan, err := h.service.UpdatePlan(c.Context(), trainerID, planID, services.PlanInput{
		Title:        req.Title,
		Description:  req.Description,
		Price:        *req.Price,
		DurationDays: *req.DurationDays,
	})
	if err != nil {
		return mapTrainerPlanError(c, err)
	}

	return respondMessageData(c, fiber.StatusOK, "Fitness plan updated successfully", newPlanFullResponse(plan))
}

func (h *TrainerHandler) DeletePlan(c *fiber.Ctx) error {
	trainerID, _, ok := callerIdentity(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Authentication required")
	}
	planID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || planID <= 0 {
		return respondError(c, fiber.StatusBadRequest, "Invalid plan id")
	}

	if err := h.service.DeletePlan(c.Context(), trainerID, planID); err != nil {
		return mapTrainerPlanError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Fitness plan deleted successfully")
}

func mapTrainerPlanError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return respondError(c, fiber.StatusBadRequest, "Invalid request")
	case errors.Is(err, services.ErrForbidden):
		return respondError(c, fiber.StatusForbidden, "You can only modify your own plans")
	case errors.Is(err, services.ErrPlanNotFound):
		return respondError(c, fiber.StatusNotFound, "Plan not found")
	case errors.Is(err, services.ErrTrainerNotFound):
		return respondError(c, fiber.StatusNotFound, "Trainer not found")
	default:
		log.Printf("trainer plan request: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to process plan request")
	}
}
