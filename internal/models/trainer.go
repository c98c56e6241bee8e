package models

import "time"

type Trainer struct {
	ID                int64     `json:"id"`
	FullName          string    `json:"full_name"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	YearsOfExperience int       `json:"years_of_experience"`
	Specializations   string    `json:"specializations"`
	Bio               *string   `json:"bio,omitempty"`
	Role              string    `json:"role"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
