package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrTrainerNotFound    = errors.New("trainer not found")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrForbidden          = errors.New("forbidden")
	ErrAlreadyFollowing   = errors.New("you are already following this trainer")
	ErrNotFollowing       = errors.New("you are not following this trainer")
	ErrAlreadySubscribed  = errors.New("you are already subscribed to this plan")
	ErrInvalidInput       = errors.New("invalid input")
)

// isUniqueViolation reports whether err is a Postgres unique-constraint error.
// Concurrent duplicate follow/subscribe attempts lose the race at the
// constraint and must surface as the business error, not a 500.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
