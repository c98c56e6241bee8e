package repository

import (
	"context"

	"github.com/shreyasharma003/fitplanhub/internal/models"
)

type SubscriptionRepository struct {
	db DBTX
}

func NewSubscriptionRepository(db DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, subscription *models.Subscription) error {
	query := `
		INSERT INTO subscriptions (user_id, plan_id)
		VALUES ($1, $2)
		RETURNING id, subscribed_at
	`
	return r.db.QueryRow(ctx, query, subscription.UserID, subscription.PlanID).
		Scan(&subscription.ID, &subscription.SubscribedAt)
}

func (r *SubscriptionRepository) Exists(ctx context.Context, userID, planID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM subscriptions WHERE user_id = $1 AND plan_id = $2)`,
		userID,
		planID,
	).Scan(&exists)
	return exists, err
}

func (r *SubscriptionRepository) ListPlanIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT plan_id FROM subscriptions WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	planIDs := make([]int64, 0)
	for rows.Next() {
		var planID int64
		if err := rows.Scan(&planID); err != nil {
			return nil, err
		}
		planIDs = append(planIDs, planID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return planIDs, nil
}
