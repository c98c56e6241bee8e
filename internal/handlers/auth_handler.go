package handlers

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shreyasharma003/fitplanhub/internal/models"
	"github.com/shreyasharma003/fitplanhub/pkg/utils"
)

type userAccountStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type trainerAccountStore interface {
	Create(ctx context.Context, trainer *models.Trainer) error
	GetByEmail(ctx context.Context, email string) (*models.Trainer, error)
	GetByID(ctx context.Context, id int64) (*models.Trainer, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type AuthHandler struct {
	userRepo    userAccountStore
	trainerRepo trainerAccountStore
	jwtSecret   string
	jwtExpiry   time.Duration
}

func NewAuthHandler(
	userRepo userAccountStore,
	trainerRepo trainerAccountStore,
	jwtSecret string,
	jwtExpiry time.Duration,
) *AuthHandler {
	return &AuthHandler{
		userRepo:    userRepo,
		trainerRepo: trainerRepo,
		jwtSecret:   jwtSecret,
		jwtExpiry:   jwtExpiry,
	}
}

type userSignupRequest struct {
	FullName    string  `json:"full_name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=6"`
	Age         int     `json:"age" validate:"required,gte=13,lte=120"`
	Gender      string  `json:"gender" validate:"required"`
	HeightCm    float64 `json:"height_cm" validate:"required,gte=50,lte=300"`
	WeightKg    float64 `json:"weight_kg" validate:"required,gte=20,lte=500"`
	FitnessGoal string  `json:"fitness_goal" validate:"required"`
}

type trainerSignupRequest struct {
	FullName          string  `json:"full_name" validate:"required"`
	Email             string  `json:"email" validate:"required,email"`
	Password          string  `json:"password" validate:"required,min=6"`
	YearsOfExperience *int    `json:"years_of_experience" validate:"required,gte=0,lte=50"`
	Specializations   string  `json:"specializations" validate:"required"`
	Bio               *string `json:"bio"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token    string `json:"token"`
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
}

func (h *AuthHandler) SignupUser(c *fiber.Ctx) error {
	var req userSignupRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if msg := validateStruct(req); msg != "" {
		return respondError(c, fiber.StatusBadRequest, msg)
	}
	req.Email = normalizeEmail(req.Email)

	exists, err := h.userRepo.EmailExists(c.Context(), req.Email)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Failed to check email")
	}
	if exists {
		return respondError(c, fiber.StatusBadRequest, "Email already registered")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        req.Email,
		PasswordHash: hashed,
		Age:          req.Age,
		Gender:       req.Gender,
		HeightCm:     req.HeightCm,
		WeightKg:     req.WeightKg,
		FitnessGoal:  req.FitnessGoal,
		Role:         models.RoleUser,
	}
	if err := h.userRepo.Create(c.Context(), user); err != nil {
		if isUniqueViolation(err) {
			return respondError(c, fiber.StatusBadRequest, "Email already registered")
		}
		log.Printf("create user: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "An error occurred during registration")
	}

	return respondMessageData(c, fiber.StatusCreated, "User registered successfully", fiber.Map{
		"user_id":      user.ID,
		"email":        user.Email,
		"full_name":    user.FullName,
		"fitness_goal": user.FitnessGoal,
	})
}

func (h *AuthHandler) SignupTrainer(c *fiber.Ctx) error {
	var req trainerSignupRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if msg := validateStruct(req); msg != "" {
		return respondError(c, fiber.StatusBadRequest, msg)
	}
	req.Email = normalizeEmail(req.Email)

	exists, err := h.trainerRepo.EmailExists(c.Context(), req.Email)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Failed to check email")
	}
	if exists {
		return respondError(c, fiber.StatusBadRequest, "Email already registered")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	trainer := &models.Trainer{
		FullName:          strings.TrimSpace(req.FullName),
		Email:             req.Email,
		PasswordHash:      hashed,
		YearsOfExperience: *req.YearsOfExperience,
		Specializations:   req.Specializations,
		Bio:               req.Bio,
		Role:              models.RoleTrainer,
	}
	if err := h.trainerRepo.Create(c.Context(), trainer); err != nil {
		if isUniqueViolation(err) {
			return respondError(c, fiber.StatusBadRequest, "Email already registered")
		}
		log.Printf("create trainer: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "An error occurred during registration")
	}

	return respondMessageData(c, fiber.StatusCreated, "Trainer registered successfully", fiber.Map{
		"trainer_id":          trainer.ID,
		"email":               trainer.Email,
		"full_name":           trainer.FullName,
		"specializations":     trainer.Specializations,
		"years_of_experience": trainer.YearsOfExperience,
	})
}

func (h *AuthHandler) LoginUser(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if msg := validateStruct(req); msg != "" {
		return respondError(c, fiber.StatusBadRequest, msg)
	}

	user, err := h.userRepo.GetByEmail(c.Context(), normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return respondError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return respondError(c, fiber.StatusInternalServerError, "An error occurred during login")
	}
	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		return respondError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, h.jwtSecret, h.jwtExpiry)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(loginResponse{
		Token:    token,
		ID:       user.ID,
		Email:    user.Email,
		Role:     user.Role,
		FullName: user.FullName,
	})
}

func (h *AuthHandler) LoginTrainer(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if msg := validateStruct(req); msg != "" {
		return respondError(c, fiber.StatusBadRequest, msg)
	}

	trainer, err := h.trainerRepo.GetByEmail(c.Context(), normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return respondError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return respondError(c, fiber.StatusInternalServerError, "An error occurred during login")
	}
	if !utils.CheckPassword(req.Password, trainer.PasswordHash) {
		return respondError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := utils.GenerateToken(trainer.ID, trainer.Email, trainer.Role, h.jwtSecret, h.jwtExpiry)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(loginResponse{
		Token:    token,
		ID:       trainer.ID,
		Email:    trainer.Email,
		Role:     trainer.Role,
		FullName: trainer.FullName,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	callerID, role, ok := callerIdentity(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "Authentication required")
	}

	if role == models.RoleTrainer {
		trainer, err := h.trainerRepo.GetByID(c.Context(), callerID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return respondError(c, fiber.StatusNotFound, "Trainer not found")
			}
			return respondError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
		}
		return respondData(c, fiber.StatusOK, trainer)
	}

	user, err := h.userRepo.GetByID(c.Context(), callerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return respondError(c, fiber.StatusNotFound, "User not found")
		}
		return respondError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}
	return respondData(c, fiber.StatusOK, user)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
