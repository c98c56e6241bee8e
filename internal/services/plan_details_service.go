package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shreyasharma003/fitplanhub/internal/models"
)

type subscriptionChecker interface {
	Exists(ctx context.Context, userID, planID int64) (bool, error)
}

// PlanAccess is the visibility decision for one plan and one caller.
type PlanAccess struct {
	Full       bool
	Subscribed bool
}

type PlanDetailsService struct {
	planRepo         planReader
	subscriptionRepo subscriptionChecker
}

func NewPlanDetailsService(planRepo planReader, subscriptionRepo subscriptionChecker) *PlanDetailsService {
	return &PlanDetailsService{planRepo: planRepo, subscriptionRepo: subscriptionRepo}
}

// GetPlanDetails loads the plan and decides what the caller may see.
// callerID 0 means anonymous. The decision is re-evaluated on every request:
// the owning trainer and subscribed users get full detail, everyone else the
// preview.
func (s *PlanDetailsService) GetPlanDetails(
	ctx context.Context,
	planID, callerID int64,
	callerRole string,
) (*models.FitnessPlan, PlanAccess, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, PlanAccess{}, ErrPlanNotFound
		}
		return nil, PlanAccess{}, err
	}

	if callerID == 0 {
		return plan, PlanAccess{}, nil
	}

	if callerRole == models.RoleTrainer && plan.TrainerID == callerID {
		return plan, PlanAccess{Full: true}, nil
	}

	if callerRole == models.RoleUser {
		subscribed, err := s.subscriptionRepo.Exists(ctx, callerID, planID)
		if err != nil {
			return nil, PlanAccess{}, err
		}
		if subscribed {
			return plan, PlanAccess{Full: true, Subscribed: true}, nil
		}
	}

	return plan, PlanAccess{}, nil
}
