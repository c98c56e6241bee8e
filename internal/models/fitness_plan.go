package models

import "time"

type FitnessPlan struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	DurationDays int       `json:"duration_days"`
	TrainerID    int64     `json:"trainer_id"`
	TrainerName  string    `json:"trainer_name"`
	CreatedAt    time.Time `json:"created_at"`
}
