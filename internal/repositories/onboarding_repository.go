package repositories

import (
	"celobuddy/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OnboardingRepository interface {
	Find(db *gorm.DB, userID string) (*models.OnboardingState, error)
	Save(db *gorm.DB, state *models.OnboardingState) error
}

type OnboardingRepositoryImpl struct{}

func NewOnboardingRepository() OnboardingRepository {
	return &OnboardingRepositoryImpl{}
}

func (r *OnboardingRepositoryImpl) Find(db *gorm.DB, userID string) (*models.OnboardingState, error) {
	var state models.OnboardingState
	if err := db.First(&state, "user_id = ?", userID).Error; err != nil {
		return nil, notFound(err, ErrOnboardingNotFound)
	}
	return &state, nil
}

func (r *OnboardingRepositoryImpl) Save(db *gorm.DB, state *models.OnboardingState) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"step", "updated_at"}),
	}).Create(state).Error
}
