package services

import (
	"context"
	"errors"

	"celobuddy/internal/algorithms"
	"celobuddy/internal/logger"
	"celobuddy/internal/models"
	"celobuddy/internal/repositories"
	"celobuddy/internal/services/dto"
	"celobuddy/pkg/apperrors"

	"gorm.io/gorm"
)

// OnboardingService ведет мастер profile -> needs -> complete.
// Шаг хранится на сервере, переходы проверяет algorithms.Transition.
type OnboardingService interface {
	GetState(ctx context.Context, db *gorm.DB, userID string) (*dto.OnboardingStateResponse, error)
	SubmitProfile(ctx context.Context, db *gorm.DB, userID string, req *dto.OnboardingProfileRequest) (*dto.OnboardingStateResponse, error)
	SubmitNeeds(ctx context.Context, db *gorm.DB, userID string, req *dto.OnboardingNeedsRequest) (*dto.OnboardingStateResponse, error)
	Back(ctx context.Context, db *gorm.DB, userID string) (*dto.OnboardingStateResponse, error)
	Complete(ctx context.Context, db *gorm.DB, userID string) (*dto.OnboardingStateResponse, error)
}

type OnboardingServiceImpl struct {
	onboardingRepo repositories.OnboardingRepository
	profileRepo    repositories.ProfileRepository
	needRepo       repositories.NeedRepository
}

func NewOnboardingService(
	onboardingRepo repositories.OnboardingRepository,
	profileRepo repositories.ProfileRepository,
	needRepo repositories.NeedRepository,
) OnboardingService {
	return &OnboardingServiceImpl{
		onboardingRepo: onboardingRepo,
		profileRepo:    profileRepo,
		needRepo:       needRepo,
	}
}

func (s *OnboardingServiceImpl) GetState(ctx context.Context, db *gorm.DB, userID string) (*dto.OnboardingStateResponse, error) {
	step, err := s.currentStep(db, userID)
	if err != nil {
		return nil, err
	}
	return s.buildState(db, userID, step)
}

// SubmitProfile - шаг 1: валидация записи шага, upsert профиля, переход на needs
func (s *OnboardingServiceImpl) SubmitProfile(ctx context.Context, db *gorm.DB, userID string, req *dto.OnboardingProfileRequest) (*dto.OnboardingStateResponse, error) {
	step := req.Step()
	if errs := step.Validate(); len(errs) > 0 {
		return nil, apperrors.ValidationError(errs)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	next, err := s.advance(tx, userID, algorithms.EventNext, algorithms.StepProfile)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindByID(tx, userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		profile = &models.Profile{ID: userID, Role: models.UserRoleUser}
	}
	step.Apply(profile)

	if err := s.profileRepo.Upsert(tx, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.saveStep(tx, userID, next); err != nil {
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Onboarding profile saved", "user_id", userID)
	return s.buildState(db, userID, next)
}

// SubmitNeeds - шаг 2: по потребности на каждую категорию, все строки в одной транзакции
func (s *OnboardingServiceImpl) SubmitNeeds(ctx context.Context, db *gorm.DB, userID string, req *dto.OnboardingNeedsRequest) (*dto.OnboardingStateResponse, error) {
	step := req.Step()
	if errs := step.Validate(); len(errs) > 0 {
		return nil, apperrors.ValidationError(errs)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	next, err := s.advance(tx, userID, algorithms.EventNext, algorithms.StepNeeds)
	if err != nil {
		return nil, err
	}

	needs := step.Expand(userID)
	if err := s.needRepo.CreateBatch(tx, needs); err != nil {
		logger.CtxWithError(ctx, "Failed to insert onboarding needs", err, "user_id", userID, "count", len(needs))
		return nil, apperrors.InternalError(err)
	}
	if err := s.saveStep(tx, userID, next); err != nil {
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Onboarding needs saved", "user_id", userID, "count", len(needs))
	return s.buildState(db, userID, next)
}

// Back возможен только со второго шага
func (s *OnboardingServiceImpl) Back(ctx context.Context, db *gorm.DB, userID string) (*dto.OnboardingStateResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	prev, err := s.advance(tx, userID, algorithms.EventBack, "")
	if err != nil {
		return nil, err
	}
	if err := s.saveStep(tx, userID, prev); err != nil {
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildState(db, userID, prev)
}

// Complete подтверждает финальный шаг; до него ответ - 400 INVALID_STATUS
func (s *OnboardingServiceImpl) Complete(ctx context.Context, db *gorm.DB, userID string) (*dto.OnboardingStateResponse, error) {
	step, err := s.currentStep(db, userID)
	if err != nil {
		return nil, err
	}
	if !step.Terminal() {
		return nil, apperrors.ErrInvalidWizardTransition.WithDetails(map[string]string{"step": string(step)})
	}

	state, err := s.buildState(db, userID, step)
	if err != nil {
		return nil, err
	}
	if !state.Profile.IsComplete() {
		return nil, apperrors.ErrProfileIncomplete
	}
	return state, nil
}

// advance читает текущий шаг и применяет событие.
// expect - шаг, на котором событие допустимо ("" - любой, решает таблица переходов).
func (s *OnboardingServiceImpl) advance(db *gorm.DB, userID string, event algorithms.WizardEvent, expect algorithms.WizardStep) (algorithms.WizardStep, error) {
	current, err := s.currentStep(db, userID)
	if err != nil {
		return "", err
	}
	if expect != "" && current != expect {
		return "", apperrors.ErrInvalidWizardTransition.WithDetails(map[string]string{
			"step":     string(current),
			"expected": string(expect),
		})
	}

	next, err := algorithms.Transition(current, event)
	if err != nil {
		return "", apperrors.ErrInvalidWizardTransition.WithError(err).WithDetails(map[string]string{"step": string(current)})
	}
	return next, nil
}

// currentStep: без записи шага (засеянный админ) шаг выводится из профиля
func (s *OnboardingServiceImpl) currentStep(db *gorm.DB, userID string) (algorithms.WizardStep, error) {
	state, err := s.onboardingRepo.Find(db, userID)
	if err == nil {
		step := algorithms.WizardStep(state.Step)
		if !step.Valid() {
			return algorithms.StepProfile, nil
		}
		return step, nil
	}
	if !errors.Is(err, repositories.ErrOnboardingNotFound) {
		return "", apperrors.InternalError(err)
	}

	profile, err := s.profileRepo.FindByID(db, userID)
	if err == nil && profile.IsComplete() {
		return algorithms.StepComplete, nil
	}
	return algorithms.StepProfile, nil
}

func (s *OnboardingServiceImpl) saveStep(db *gorm.DB, userID string, step algorithms.WizardStep) error {
	if err := s.onboardingRepo.Save(db, &models.OnboardingState{UserID: userID, Step: string(step)}); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *OnboardingServiceImpl) buildState(db *gorm.DB, userID string, step algorithms.WizardStep) (*dto.OnboardingStateResponse, error) {
	resp := &dto.OnboardingStateResponse{Step: step, Needs: []models.Need{}}

	profile, err := s.profileRepo.FindByID(db, userID)
	switch {
	case err == nil:
		resp.Profile = profile
	case !errors.Is(err, repositories.ErrProfileNotFound):
		return nil, apperrors.InternalError(err)
	}

	needs, err := s.needRepo.FindByUser(db, userID, true)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if needs != nil {
		resp.Needs = needs
	}
	return resp, nil
}
