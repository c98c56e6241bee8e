package handlers

import (
	"context"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shreyasharma003/fitplanhub/internal/models"
)

const defaultFeaturedLimit = 6

type planCatalog interface {
	GetAllPlans(ctx context.Context) ([]models.FitnessPlan, error)
}

type PublicHandler struct {
	catalog planCatalog
}

func NewPublicHandler(catalog planCatalog) *PublicHandler {
	return &PublicHandler{catalog: catalog}
}

// FeaturedPlans serves the landing page: the first N plans, no ranking.
func (h *PublicHandler) FeaturedPlans(c *fiber.Ctx) error {
	limit := defaultFeaturedLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return respondError(c, fiber.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	plans, err := h.catalog.GetAllPlans(c.Context())
	if err != nil {
		log.Printf("featured plans: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to fetch plans")
	}
	if len(plans) > limit {
		plans = plans[:limit]
	}

	return respondData(c, fiber.StatusOK, newPlanFullResponses(plans))
}
