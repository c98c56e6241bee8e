package models

import "time"

type Subscription struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	PlanID       int64     `json:"plan_id"`
	SubscribedAt time.Time `json:"subscribed_at"`
}
