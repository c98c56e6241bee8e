package models

import "time"

const (
	RoleUser    = "USER"
	RoleTrainer = "TRAINER"
)

type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Age          int       `json:"age"`
	Gender       string    `json:"gender"`
	HeightCm     float64   `json:"height_cm"`
	WeightKg     float64   `json:"weight_kg"`
	FitnessGoal  string    `json:"fitness_goal"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
