package repository

import (
	"context"

	"github.com/shreyasharma003/fitplanhub/internal/models"
)

type FitnessPlanRepository struct {
	db DBTX
}

func NewFitnessPlanRepository(db DBTX) *FitnessPlanRepository {
	return &FitnessPlanRepository{db: db}
}

func (r *FitnessPlanRepository) Create(ctx context.Context, plan *models.FitnessPlan) error {
	query := `
		INSERT INTO fitness_plans (title, description, price, duration_days, trainer_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		plan.Title,
		plan.Description,
		plan.Price,
		plan.DurationDays,
		plan.TrainerID,
	).Scan(&plan.ID, &plan.CreatedAt)
}

func (r *FitnessPlanRepository) GetByID(ctx context.Context, planID int64) (*models.FitnessPlan, error) {
	query := `
		SELECT p.id, p.title, p.description, p.price, p.duration_days, p.trainer_id, t.full_name, p.created_at
		FROM fitness_plans p
		JOIN trainers t ON t.id = p.trainer_id
		WHERE p.id = $1
	`
	var plan models.FitnessPlan
	err := r.db.QueryRow(ctx, query, planID).Scan(
		&plan.ID,
		&plan.Title,
		&plan.Description,
		&plan.Price,
		&plan.DurationDays,
		&plan.TrainerID,
		&plan.TrainerName,
		&plan.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *FitnessPlanRepository) ListByTrainerID(ctx context.Context, trainerID int64) ([]models.FitnessPlan, error) {
	query := `
		SELECT p.id, p.title, p.description, p.price, p.duration_days, p.trainer_id, t.full_name, p.created_at
		FROM fitness_plans p
		JOIN trainers t ON t.id = p.trainer_id
		WHERE p.trainer_id = $1
		ORDER BY p.created_at DESC, p.id DESC
	`
	return r.list(ctx, query, trainerID)
}

func (r *FitnessPlanRepository) ListAll(ctx context.Context) ([]models.FitnessPlan, error) {
	query := `
		SELECT p.id, p.title, p.description, p.price, p.duration_days, p.trainer_id, t.full_name, p.created_at
		FROM fitness_plans p
		JOIN trainers t ON t.id = p.trainer_id
		ORDER BY p.id
	`
	return r.list(ctx, query)
}

func (r *FitnessPlanRepository) Update(ctx context.Context, plan *models.FitnessPlan) error {
	query := `
		UPDATE fitness_plans
		SET title = $1, description = $2, price = $3, duration_days = $4
		WHERE id = $5
	`
	_, err := r.db.Exec(ctx, query, plan.Title, plan.Description, plan.Price, plan.DurationDays, plan.ID)
	return err
}

func (r *FitnessPlanRepository) Delete(ctx context.Context, planID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM fitness_plans WHERE id = $1`, planID)
	return err
}

func (r *FitnessPlanRepository) list(ctx context.Context, query string, args ...any) ([]models.FitnessPlan, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]models.FitnessPlan, 0)
	for rows.Next() {
		var plan models.FitnessPlan
		if err := rows.Scan(
			&plan.ID,
			&plan.Title,
			&plan.Description,
			&plan.Price,
			&plan.DurationDays,
			&plan.TrainerID,
			&plan.TrainerName,
			&plan.CreatedAt,
		); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}
