package models

import "time"

type Follow struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	TrainerID  int64     `json:"trainer_id"`
	FollowedAt time.Time `json:"followed_at"`
}
