package repository

import (
	"context"

	"github.com/shreyasharma003/fitplanhub/internal/models"
)

type TrainerRepository struct {
	db DBTX
}

func NewTrainerRepository(db DBTX) *TrainerRepository {
	return &TrainerRepository{db: db}
}

func (r *TrainerRepository) Create(ctx context.Context, trainer *models.Trainer) error {
	query := `
		INSERT INTO trainers (full_name, email, password_hash, years_of_experience, specializations, bio, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(
		ctx,
		query,
		trainer.FullName,
		trainer.Email,
		trainer.PasswordHash,
		trainer.YearsOfExperience,
		trainer.Specializations,
		trainer.Bio,
		trainer.Role,
	).Scan(&trainer.ID, &trainer.CreatedAt, &trainer.UpdatedAt)
}

func (r *TrainerRepository) GetByEmail(ctx context.Context, email string) (*models.Trainer, error) {
	query := `
		SELECT id, full_name, email, password_hash, years_of_experience, specializations, bio, role, created_at, updated_at
		FROM trainers
		WHERE email = $1
	`
	return r.scanOne(ctx, query, email)
}

func (r *TrainerRepository) GetByID(ctx context.Context, id int64) (*models.Trainer, error) {
	query := `
		SELECT id, full_name, email, password_hash, years_of_experience, specializations, bio, role, created_at, updated_at
		FROM trainers
		WHERE id = $1
	`
	return r.scanOne(ctx, query, id)
}

func (r *TrainerRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM trainers WHERE email = $1)`, email).
		Scan(&exists)
	return exists, err
}

func (r *TrainerRepository) List(ctx context.Context) ([]models.Trainer, error) {
	query := `
		SELECT id, full_name, email, password_hash, years_of_experience, specializations, bio, role, created_at, updated_at
		FROM trainers
		ORDER BY id
	`
	return r.list(ctx, query)
}

// Search matches the keyword case-insensitively against trainer names and
// specializations.
func (r *TrainerRepository) Search(ctx context.Context, keyword string) ([]models.Trainer, error) {
	query := `
		SELECT id, full_name, email, password_hash, years_of_experience, specializations, bio, role, created_at, updated_at
		FROM trainers
		WHERE full_name ILIKE '%' || $1 || '%' OR specializations ILIKE '%' || $1 || '%'
		ORDER BY id
	`
	return r.list(ctx, query, keyword)
}

func (r *TrainerRepository) scanOne(ctx context.Context, query string, arg any) (*models.Trainer, error) {
	var trainer models.Trainer
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&trainer.ID,
		&trainer.FullName,
		&trainer.Email,
		&trainer.PasswordHash,
		&trainer.YearsOfExperience,
		&trainer.Specializations,
		&trainer.Bio,
		&trainer.Role,
		&trainer.CreatedAt,
		&trainer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &trainer, nil
}

func (r *TrainerRepository) list(ctx context.Context, query string, args ...any) ([]models.Trainer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trainers := make([]models.Trainer, 0)
	for rows.Next() {
		var trainer models.Trainer
		if err := rows.Scan(
			&trainer.ID,
			&trainer.FullName,
			&trainer.Email,
			&trainer.PasswordHash,
			&trainer.YearsOfExperience,
			&trainer.Specializations,
			&trainer.Bio,
			&trainer.Role,
			&trainer.CreatedAt,
			&trainer.UpdatedAt,
		); err != nil {
			return nil, err
		}
		trainers = append(trainers, trainer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return trainers, nil
}
