package repositories

import (
	"celobuddy/internal/models"

	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(db *gorm.DB, feedback *models.Feedback) error
	FindByUser(db *gorm.DB, userID string, limit int) ([]models.Feedback, error)
	ListAll(db *gorm.DB) ([]models.Feedback, error)
	Count(db *gorm.DB) (int64, error)
}

type FeedbackRepositoryImpl struct{}

func NewFeedbackRepository() FeedbackRepository {
	return &FeedbackRepositoryImpl{}
}

func (r *FeedbackRepositoryImpl) Create(db *gorm.DB, feedback *models.Feedback) error {
	return db.Create(feedback).Error
}

func (r *FeedbackRepositoryImpl) FindByUser(db *gorm.DB, userID string, limit int) ([]models.Feedback, error) {
	var items []models.Feedback
	query := db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&items).Error
	return items, err
}

func (r *FeedbackRepositoryImpl) ListAll(db *gorm.DB) ([]models.Feedback, error) {
	var items []models.Feedback
	err := db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *FeedbackRepositoryImpl) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Feedback{}).Count(&count).Error
	return count, err
}
