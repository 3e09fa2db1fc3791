package services

import (
	"context"
	"errors"

	"celobuddy/internal/algorithms"
	"celobuddy/internal/auth"
	"celobuddy/internal/logger"
	"celobuddy/internal/models"
	"celobuddy/internal/repositories"
	"celobuddy/internal/services/dto"
	"celobuddy/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	userRepo       repositories.UserRepository
	profileRepo    repositories.ProfileRepository
	onboardingRepo repositories.OnboardingRepository
	tokens         *auth.TokenManager
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	onboardingRepo repositories.OnboardingRepository,
	tokens *auth.TokenManager,
) AuthService {
	return &AuthServiceImpl{
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		onboardingRepo: onboardingRepo,
		tokens:         tokens,
	}
}

// Register - пользователь, пустой профиль с ролью user и шаг онбординга "profile" одной транзакцией
func (s *AuthServiceImpl) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	user := &models.User{Email: req.Email, PasswordHash: hash}
	if err := s.userRepo.Create(tx, user); err != nil {
		return nil, handleRepoError(err)
	}

	profile := &models.Profile{
		ID:    user.ID,
		Email: user.Email,
		Role:  models.UserRoleUser,
	}
	if err := s.profileRepo.Create(tx, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	state := &models.OnboardingState{UserID: user.ID, Step: string(algorithms.StepProfile)}
	if err := s.onboardingRepo.Save(tx, state); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "User registered", "user_id", user.ID)
	return s.issueToken(user, profile.Role, state.Step)
}

// Login проверяет пароль и выдает access token
func (s *AuthServiceImpl) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.CtxWarn(ctx, "Failed login attempt", "user_id", user.ID)
		return nil, apperrors.ErrInvalidCredentials
	}

	role, err := s.profileRepo.FindRole(db, user.ID)
	if err != nil {
		if !errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		role = models.UserRoleUser
	}

	// Записи шага нет у засеянного админа: считаем онбординг пройденным
	step := string(algorithms.StepComplete)
	state, err := s.onboardingRepo.Find(db, user.ID)
	switch {
	case err == nil:
		step = state.Step
	case !errors.Is(err, repositories.ErrOnboardingNotFound):
		return nil, apperrors.InternalError(err)
	}

	return s.issueToken(user, role, step)
}

func (s *AuthServiceImpl) issueToken(user *models.User, role models.UserRole, step string) (*dto.AuthResponse, error) {
	token, expiresAt, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User: dto.UserResponse{
			ID:             user.ID,
			Email:          user.Email,
			Role:           string(role),
			OnboardingStep: step,
		},
	}, nil
}
