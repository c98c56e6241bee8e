package repository

import (
	"context"

	"github.com/shreyasharma003/fitplanhub/internal/models"
)

type FollowRepository struct {
	db DBTX
}

func NewFollowRepository(db DBTX) *FollowRepository {
	return &FollowRepository{db: db}
}

func (r *FollowRepository) Create(ctx context.Context, follow *models.Follow) error {
	query := `
		INSERT INTO follows (user_id, trainer_id)
		VALUES ($1, $2)
		RETURNING id, followed_at
	`
	return r.db.QueryRow(ctx, query, follow.UserID, follow.TrainerID).
		Scan(&follow.ID, &follow.FollowedAt)
}

// Delete removes the follow edge and reports how many rows went away, so the
// caller can tell a successful unfollow from a no-op.
func (r *FollowRepository) Delete(ctx context.Context, userID, trainerID int64) (int64, error) {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM follows WHERE user_id = $1 AND trainer_id = $2`,
		userID,
		trainerID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *FollowRepository) Exists(ctx context.Context, userID, trainerID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM follows WHERE user_id = $1 AND trainer_id = $2)`,
		userID,
		trainerID,
	).Scan(&exists)
	return exists, err
}

// ListTrainerIDs returns followed trainer ids in follow-insertion order.
func (r *FollowRepository) ListTrainerIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT trainer_id FROM follows WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trainerIDs := make([]int64, 0)
	for rows.Next() {
		var trainerID int64
		if err := rows.Scan(&trainerID); err != nil {
			return nil, err
		}
		trainerIDs = append(trainerIDs, trainerID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return trainerIDs, nil
}
